// Package observability lets the binary listen to pipeline and cache events
// without the pipeline importing any logging or metrics backend.
//
// Hooks default to no-ops. The command-line tool registers a logging
// implementation in verbose mode:
//
//	observability.SetPipelineHooks(myHooks)
//	defer observability.Reset()
//
// Pipeline code emits events through the accessors:
//
//	observability.Pipeline().OnExportTopic(ctx, topic, slug, nodes, edges)
package observability

import (
	"context"
	"sync"
	"time"
)

// PipelineHooks receives events from the export and reorder stages.
type PipelineHooks interface {
	// OnExportTopic fires after one topic's graph has been staged.
	OnExportTopic(ctx context.Context, topic, slug string, nodes, edges int)

	// OnExportSkip fires for a topic that produced no graph.
	OnExportSkip(ctx context.Context, topic, reason string)

	// OnExportComplete fires once per export run.
	OnExportComplete(ctx context.Context, exported, skipped int, duration time.Duration, err error)

	// OnReorderComplete fires once per reorder run. bands holds the number
	// of rows that landed in each band.
	OnReorderComplete(ctx context.Context, rows int, bands []int, duration time.Duration, err error)
}

// CacheHooks receives events from cache lookups.
type CacheHooks interface {
	OnCacheHit(ctx context.Context, keyType string)
	OnCacheMiss(ctx context.Context, keyType string)
	OnCacheSet(ctx context.Context, keyType string, size int)
}

// NoopPipelineHooks ignores every event.
type NoopPipelineHooks struct{}

func (NoopPipelineHooks) OnExportTopic(context.Context, string, string, int, int) {}
func (NoopPipelineHooks) OnExportSkip(context.Context, string, string)            {}
func (NoopPipelineHooks) OnExportComplete(context.Context, int, int, time.Duration, error) {
}
func (NoopPipelineHooks) OnReorderComplete(context.Context, int, []int, time.Duration, error) {
}

// NoopCacheHooks ignores every event.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

var (
	pipelineHooks PipelineHooks = NoopPipelineHooks{}
	cacheHooks    CacheHooks    = NoopCacheHooks{}
	hooksMu       sync.RWMutex
)

// SetPipelineHooks registers h. A nil h is ignored.
func SetPipelineHooks(h PipelineHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		pipelineHooks = h
	}
}

// SetCacheHooks registers h. A nil h is ignored.
func SetCacheHooks(h CacheHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		cacheHooks = h
	}
}

// Pipeline returns the registered pipeline hooks.
func Pipeline() PipelineHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return pipelineHooks
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
	pipelineHooks = NoopPipelineHooks{}
	cacheHooks = NoopCacheHooks{}
}
