package observability

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
)

// LogHooks reports compute and cache events as debug-level log lines.
type LogHooks struct {
	logger *log.Logger
}

// NewLogHooks returns hooks writing to logger.
func NewLogHooks(logger *log.Logger) *LogHooks {
	return &LogHooks{logger: logger}
}

func (h *LogHooks) OnComputeStart(_ context.Context, kind string, items int) {
	h.logger.Debug("compute start", "kind", kind, "items", items)
}

func (h *LogHooks) OnComputeComplete(_ context.Context, kind string, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("compute failed", "kind", kind, "duration", d, "err", err)
		return
	}
	h.logger.Debug("compute done", "kind", kind, "duration", d)
}

func (h *LogHooks) OnCacheHit(_ context.Context, keyType string) {
	h.logger.Debug("cache hit", "type", keyType)
}

func (h *LogHooks) OnCacheMiss(_ context.Context, keyType string) {
	h.logger.Debug("cache miss", "type", keyType)
}

func (h *LogHooks) OnCacheSet(_ context.Context, keyType string, size int) {
	h.logger.Debug("cache set", "type", keyType, "bytes", size)
}

var (
	_ ComputeHooks = (*LogHooks)(nil)
	_ CacheHooks   = (*LogHooks)(nil)
)
