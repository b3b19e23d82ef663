package cli

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/matzehuels/chartcore/pkg/errors"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfigDefaultMissing(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := loadConfig("")
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.Cache.Backend != BackendFile {
		t.Errorf("Backend = %q, want %q", cfg.Cache.Backend, BackendFile)
	}
}

func TestLoadConfigDefaultLocation(t *testing.T) {
	base := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", base)
	dir := filepath.Join(base, appName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte("[compute]\nwidth = 320\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadConfig("")
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.Compute.Width != 320 {
		t.Errorf("Width = %v, want 320", cfg.Compute.Width)
	}
}

func TestLoadConfigExplicitMissing(t *testing.T) {
	_, err := loadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("err = %v, want FILE_NOT_FOUND", err)
	}
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
[compute]
width = 1024
height = 768
mode = "circular"
seed = 7
bins = 12
mode_precision = 0

[cache]
backend = "redis"
prefix = "team-a"
ttl = "36h"

[cache.redis]
addr = "localhost:6379"
db = 2
`)
	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	c := cfg.Compute
	if c.Width != 1024 || c.Height != 768 || c.Mode != "circular" || c.Seed != 7 || c.Bins != 12 {
		t.Errorf("Compute = %+v", c)
	}
	if c.ModePrecision == nil || *c.ModePrecision != 0 {
		t.Errorf("ModePrecision = %v, want explicit 0", c.ModePrecision)
	}
	if cfg.Cache.Backend != BackendRedis || cfg.Cache.Prefix != "team-a" {
		t.Errorf("Cache = %+v", cfg.Cache)
	}
	if cfg.Cache.TTL.Duration != 36*time.Hour {
		t.Errorf("TTL = %v, want 36h", cfg.Cache.TTL.Duration)
	}
	if cfg.Cache.Redis.Addr != "localhost:6379" || cfg.Cache.Redis.DB != 2 {
		t.Errorf("Redis = %+v", cfg.Cache.Redis)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		code    errors.Code
	}{
		{"syntax", "[compute\nwidth = 1", errors.ErrCodeInvalidFormat},
		{"unknown key", "[compute]\nwidht = 100\n", errors.ErrCodeInvalidFormat},
		{"bad ttl", "[cache]\nttl = \"soon\"\n", errors.ErrCodeInvalidFormat},
		{"redis without addr", "[cache]\nbackend = \"redis\"\n", errors.ErrCodeInvalidInput},
		{"unknown backend", "[cache]\nbackend = \"memcached\"\n", errors.ErrCodeInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := loadConfig(writeConfig(t, tt.content))
			if !errors.Is(err, tt.code) {
				t.Errorf("err = %v, want code %s", err, tt.code)
			}
		})
	}
}

func TestConfigCacheDir(t *testing.T) {
	cfg := defaultConfig()
	cfg.Cache.Dir = "/var/cache/charts"
	if dir, _ := cfg.cacheDir(); dir != "/var/cache/charts" {
		t.Errorf("cacheDir = %q", dir)
	}

	xdg := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", xdg)
	cfg.Cache.Dir = ""
	dir, err := cfg.cacheDir()
	if err != nil {
		t.Fatal(err)
	}
	if dir != filepath.Join(xdg, appName) {
		t.Errorf("cacheDir = %q, want %q", dir, filepath.Join(xdg, appName))
	}
}
