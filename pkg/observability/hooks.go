// Package observability lets callers receive compute and cache events
// without tying the pipeline to a metrics or tracing backend.
//
// Hook implementations are registered once at startup; the pipeline reads
// them through [Compute] and [Cache]. Both default to no-ops.
//
//	func main() {
//	    observability.SetComputeHooks(observability.NewLogHooks(logger))
//	    // ... run application
//	}
//
// Emitting side:
//
//	observability.Compute().OnComputeStart(ctx, "treemap", items)
//	// ... compute ...
//	observability.Compute().OnComputeComplete(ctx, "treemap", time.Since(start), err)
package observability

import (
	"context"
	"sync"
	"time"
)

// ComputeHooks receives events for each layout or statistics computation.
type ComputeHooks interface {
	OnComputeStart(ctx context.Context, kind string, items int)
	OnComputeComplete(ctx context.Context, kind string, duration time.Duration, err error)
}

// CacheHooks receives events from cache lookups and writes.
// keyType is "layout" or "stats".
type CacheHooks interface {
	OnCacheHit(ctx context.Context, keyType string)
	OnCacheMiss(ctx context.Context, keyType string)
	OnCacheSet(ctx context.Context, keyType string, size int)
}

// NoopComputeHooks ignores all events.
type NoopComputeHooks struct{}

func (NoopComputeHooks) OnComputeStart(context.Context, string, int)                     {}
func (NoopComputeHooks) OnComputeComplete(context.Context, string, time.Duration, error) {}

// NoopCacheHooks ignores all events.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

var (
	computeHooks ComputeHooks = NoopComputeHooks{}
	cacheHooks   CacheHooks   = NoopCacheHooks{}
	hooksMu      sync.RWMutex
)

// SetComputeHooks registers compute hooks. A nil value is ignored.
func SetComputeHooks(h ComputeHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		computeHooks = h
	}
}

// SetCacheHooks registers cache hooks. A nil value is ignored.
func SetCacheHooks(h CacheHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		cacheHooks = h
	}
}

// Compute returns the registered compute hooks.
func Compute() ComputeHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return computeHooks
}

// Cache returns the registered cache hooks.
func Cache() CacheHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return cacheHooks
}

// Reset restores the no-op defaults.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	computeHooks = NoopComputeHooks{}
	cacheHooks = NoopCacheHooks{}
}
