package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/chartcore/pkg/cache"
	"github.com/matzehuels/chartcore/pkg/chart"
	"github.com/matzehuels/chartcore/pkg/observability"
)

// Runner encapsulates computation with caching.
//
// The Runner is stateless except for the cache and logger. Multiple
// goroutines can safely use the same Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger

	// TTL overrides the default entry lifetime when positive.
	TTL time.Duration
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Compute validates ds and opts, then returns the cached layout for them or
// computes and caches a new one. Cache failures are logged and never fail
// the call.
func (r *Runner) Compute(ctx context.Context, ds *chart.Dataset, opts Options) (*Result, error) {
	if ds == nil {
		return nil, fmt.Errorf("invalid dataset: nil")
	}
	if err := ds.Validate(); err != nil {
		return nil, fmt.Errorf("invalid dataset: %w", err)
	}
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	start := time.Now()
	runID := uuid.NewString()
	logger := opts.Logger.With("run", runID[:8], "kind", ds.Kind)

	raw, err := json.Marshal(ds)
	if err != nil {
		return nil, fmt.Errorf("hash dataset: %w", err)
	}
	result := &Result{
		DatasetHash: cache.Hash(raw),
		Items:       ds.Len(),
	}

	keyType, key := r.cacheKey(ds.Kind, result.DatasetHash, &opts)

	if !opts.Refresh {
		if l, ok := r.lookup(ctx, logger, keyType, key); ok {
			l.ID = runID
			result.Layout = l
			result.CacheHit = true
			result.Duration = time.Since(start)
			logger.Info("loaded from cache", "items", result.Items, "duration", result.Duration, "cached", true)
			return result, nil
		}
	}

	hooks := observability.Compute()
	hooks.OnComputeStart(ctx, string(ds.Kind), result.Items)
	computeStart := time.Now()
	l, err := computeLayout(ds, &opts)
	hooks.OnComputeComplete(ctx, string(ds.Kind), time.Since(computeStart), err)
	if err != nil {
		return nil, fmt.Errorf("compute %s: %w", ds.Kind, err)
	}
	l.ID = runID
	l.Title = ds.Title
	result.Layout = l

	r.store(ctx, logger, keyType, key, l)

	result.Duration = time.Since(start)
	logger.Info("computed layout", "items", result.Items, "duration", result.Duration, "cached", false)
	return result, nil
}

// cacheKey returns the hook key type and cache key for a computation.
func (r *Runner) cacheKey(kind chart.Kind, datasetHash string, opts *Options) (string, string) {
	if kind.IsStatistical() {
		return "stats", r.Keyer.StatsKey(datasetHash, opts.StatsKeyOpts(kind))
	}
	return "layout", r.Keyer.LayoutKey(datasetHash, opts.LayoutKeyOpts(kind))
}

func (r *Runner) lookup(ctx context.Context, logger *log.Logger, keyType, key string) (*chart.Layout, bool) {
	hooks := observability.Cache()
	data, hit, err := r.Cache.Get(ctx, key)
	if err != nil {
		logger.Debug("cache read failed", "err", err)
		hooks.OnCacheMiss(ctx, keyType)
		return nil, false
	}
	if !hit {
		hooks.OnCacheMiss(ctx, keyType)
		return nil, false
	}
	l, err := chart.UnmarshalLayout(data)
	if err != nil {
		// A stale entry from an older format is recomputed and overwritten.
		logger.Debug("cache entry unreadable", "err", err)
		hooks.OnCacheMiss(ctx, keyType)
		return nil, false
	}
	hooks.OnCacheHit(ctx, keyType)
	return l, true
}

func (r *Runner) store(ctx context.Context, logger *log.Logger, keyType, key string, l *chart.Layout) {
	data, err := chart.MarshalLayout(l)
	if err != nil {
		logger.Debug("cache encode failed", "err", err)
		return
	}
	ttl := cache.LayoutTTL
	switch {
	case r.TTL > 0:
		ttl = r.TTL
	case keyType == "stats":
		ttl = cache.StatsTTL
	}
	if err := r.Cache.Set(ctx, key, data, ttl); err != nil {
		logger.Debug("cache write failed", "err", err)
		return
	}
	observability.Cache().OnCacheSet(ctx, keyType, len(data))
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
