package observability

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	p := NoopComputeHooks{}
	p.OnComputeStart(ctx, "treemap", 10)
	p.OnComputeComplete(ctx, "treemap", time.Second, nil)

	c := NoopCacheHooks{}
	c.OnCacheHit(ctx, "layout")
	c.OnCacheMiss(ctx, "stats")
	c.OnCacheSet(ctx, "layout", 1024)
}

func TestGlobalHooksRegistry(t *testing.T) {
	Reset()
	defer Reset()

	if _, ok := Compute().(NoopComputeHooks); !ok {
		t.Error("Compute() should return NoopComputeHooks by default")
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("Cache() should return NoopCacheHooks by default")
	}

	customCompute := &testComputeHooks{}
	SetComputeHooks(customCompute)
	if Compute() != customCompute {
		t.Error("SetComputeHooks should set custom hooks")
	}

	customCache := &testCacheHooks{}
	SetCacheHooks(customCache)
	if Cache() != customCache {
		t.Error("SetCacheHooks should set custom hooks")
	}

	Reset()
	if _, ok := Compute().(NoopComputeHooks); !ok {
		t.Error("Reset() should restore NoopComputeHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()
	defer Reset()

	custom := &testComputeHooks{}
	SetComputeHooks(custom)
	SetComputeHooks(nil)
	if Compute() != custom {
		t.Error("SetComputeHooks(nil) should be ignored")
	}
}

func TestLogHooks(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})
	h := NewLogHooks(logger)
	ctx := context.Background()

	h.OnComputeStart(ctx, "sankey", 4)
	h.OnComputeComplete(ctx, "sankey", time.Millisecond, errors.New("boom"))
	h.OnCacheHit(ctx, "layout")
	h.OnCacheSet(ctx, "stats", 12)

	out := buf.String()
	for _, want := range []string{"compute start", "kind=sankey", "compute failed", "boom", "cache hit", "bytes=12"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}

func TestLogHooks_InfoLevelSilent(t *testing.T) {
	var buf bytes.Buffer
	h := NewLogHooks(log.NewWithOptions(&buf, log.Options{Level: log.InfoLevel}))
	h.OnCacheMiss(context.Background(), "layout")
	if buf.Len() != 0 {
		t.Errorf("debug events should not print at info level: %q", buf.String())
	}
}

type testComputeHooks struct{ NoopComputeHooks }
type testCacheHooks struct{ NoopCacheHooks }
