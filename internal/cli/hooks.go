package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
)

// logHooks reports pipeline and cache events at debug level. It is
// registered by the root command when --verbose is set.
type logHooks struct {
	logger *log.Logger
}

func newLogHooks(l *log.Logger) *logHooks {
	return &logHooks{logger: l}
}

func (h *logHooks) OnExportTopic(_ context.Context, topic, slug string, nodes, edges int) {
	h.logger.Debug("hook: export topic", "topic", truncate(topic, topicWidth), "slug", slug, "nodes", nodes, "edges", edges)
}

func (h *logHooks) OnExportSkip(_ context.Context, topic, reason string) {
	h.logger.Debug("hook: export skip", "topic", truncate(topic, topicWidth), "reason", reason)
}

func (h *logHooks) OnExportComplete(_ context.Context, exported, skipped int, d time.Duration, err error) {
	h.logger.Debug("hook: export complete", "exported", exported, "skipped", skipped, "took", d.Round(time.Millisecond), "err", err)
}

func (h *logHooks) OnReorderComplete(_ context.Context, rows int, bands []int, d time.Duration, err error) {
	h.logger.Debug("hook: reorder complete", "rows", rows, "bands", bands, "took", d.Round(time.Millisecond), "err", err)
}

func (h *logHooks) OnCacheHit(_ context.Context, keyType string) {
	h.logger.Debug("cache hit", "type", keyType)
}

func (h *logHooks) OnCacheMiss(_ context.Context, keyType string) {
	h.logger.Debug("cache miss", "type", keyType)
}

func (h *logHooks) OnCacheSet(_ context.Context, keyType string, size int) {
	h.logger.Debug("cache set", "type", keyType, "bytes", size)
}
