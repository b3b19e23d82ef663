package cli

import (
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/chartcore/pkg/cache"
	"github.com/matzehuels/chartcore/pkg/errors"
	"github.com/matzehuels/chartcore/pkg/pipeline"
)

// Cache backends.
const (
	BackendFile  = "file"
	BackendRedis = "redis"
	BackendNone  = "none"
)

// Config is the on-disk configuration:
//
//	[compute]
//	width = 1024
//	height = 768
//	mode = "circular"
//
//	[cache]
//	backend = "redis"
//	ttl = "24h"
//	[cache.redis]
//	addr = "localhost:6379"
type Config struct {
	Compute pipeline.Options `toml:"compute"`
	Cache   CacheConfig      `toml:"cache"`
}

// CacheConfig selects and configures the cache backend.
type CacheConfig struct {
	Backend string             `toml:"backend"`
	Dir     string             `toml:"dir"`    // file backend; default $XDG_CACHE_HOME/chartcore
	Prefix  string             `toml:"prefix"` // scopes every key
	TTL     duration           `toml:"ttl"`
	Redis   cache.RedisOptions `toml:"redis"`
}

// duration decodes TOML strings such as "36h".
type duration struct{ time.Duration }

func (d *duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

func defaultConfig() *Config {
	return &Config{Cache: CacheConfig{Backend: BackendFile}}
}

// loadConfig reads path, or the default location when path is empty. A
// missing default file yields the default config; a missing explicit file
// is an error.
func loadConfig(path string) (*Config, error) {
	cfg := defaultConfig()
	explicit := path != ""
	if !explicit {
		p, err := defaultConfigPath()
		if err != nil {
			return cfg, nil
		}
		path = p
	}

	md, err := toml.DecodeFile(path, cfg)
	if os.IsNotExist(err) && !explicit {
		return defaultConfig(), nil
	}
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "config %s not found", path)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, errors.New(errors.ErrCodeInvalidFormat, "%s: unknown key %q", path, undecoded[0].String())
	}

	switch cfg.Cache.Backend {
	case "":
		cfg.Cache.Backend = BackendFile
	case BackendFile, BackendNone:
	case BackendRedis:
		if cfg.Cache.Redis.Addr == "" {
			return nil, errors.New(errors.ErrCodeInvalidInput, "%s: cache.redis.addr is required for the redis backend", path)
		}
	default:
		return nil, errors.New(errors.ErrCodeInvalidInput, "%s: unknown cache backend %q (want file, redis or none)", path, cfg.Cache.Backend)
	}
	return cfg, nil
}

// defaultConfigPath returns $XDG_CONFIG_HOME/chartcore/config.toml.
func defaultConfigPath() (string, error) {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, appName, "config.toml"), nil
}

// cacheDir returns the file cache directory.
func (c *Config) cacheDir() (string, error) {
	if c.Cache.Dir != "" {
		return c.Cache.Dir, nil
	}
	return cache.DefaultDir()
}
