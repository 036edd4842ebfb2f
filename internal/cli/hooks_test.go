package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/benchorder/pkg/observability"
)

func TestLogHooksImplementInterfaces(t *testing.T) {
	var _ observability.PipelineHooks = (*logHooks)(nil)
	var _ observability.CacheHooks = (*logHooks)(nil)
}

func TestLogHooksWriteAtDebug(t *testing.T) {
	var buf bytes.Buffer
	h := newLogHooks(newLogger(&buf, log.DebugLevel))
	ctx := context.Background()

	h.OnExportTopic(ctx, "Topic", "1cbec737f863e492", 3, 2)
	h.OnReorderComplete(ctx, 4, []int{2, 2}, time.Second, nil)
	h.OnCacheHit(ctx, "graphstats")

	out := buf.String()
	for _, want := range []string{"export topic", "1cbec737f863e492", "reorder complete", "cache hit"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}

	buf.Reset()
	quiet := newLogHooks(newLogger(&buf, log.InfoLevel))
	quiet.OnCacheMiss(ctx, "graphstats")
	if buf.Len() != 0 {
		t.Errorf("info-level logger should drop hook output, got %q", buf.String())
	}
}
