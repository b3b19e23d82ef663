package buildinfo

import (
	"strings"
	"testing"
)

func TestTemplateIncludesBuildInfo(t *testing.T) {
	oldV, oldC, oldD := Version, Commit, Date
	t.Cleanup(func() { Version, Commit, Date = oldV, oldC, oldD })
	Version, Commit, Date = "v0.3.1", "abc123", "2026-01-02T03:04:05Z"

	tmpl := Template()
	for _, want := range []string{"{{.Name}} version v0.3.1", "commit: abc123", "built: 2026-01-02T03:04:05Z"} {
		if !strings.Contains(tmpl, want) {
			t.Errorf("Template() = %q, missing %q", tmpl, want)
		}
	}
	if got := String(); !strings.HasPrefix(got, "version: v0.3.1\n") {
		t.Errorf("String() = %q", got)
	}
}
