package cli

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/benchorder/pkg/observability"
)

// runCaptured executes the root command with an extra subcommand that
// records the logger its context carries.
func runCaptured(t *testing.T, c *CLI, args ...string) *log.Logger {
	t.Helper()
	root := c.RootCommand()
	var got *log.Logger
	root.AddCommand(&cobra.Command{
		Use: "capture",
		RunE: func(cmd *cobra.Command, _ []string) error {
			got = loggerFromContext(cmd.Context())
			return nil
		},
	})
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	root.SetArgs(append(args, "capture"))
	if err := root.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("execute: %v", err)
	}
	return got
}

func TestCommandsSeeCLILogger(t *testing.T) {
	t.Cleanup(observability.Reset)
	c := newTestCLI()

	got := runCaptured(t, c)
	if got != c.Logger {
		t.Errorf("loggerFromContext() = %p, want CLI logger %p", got, c.Logger)
	}
}

func TestVerboseEnablesDebugAndHooks(t *testing.T) {
	t.Cleanup(observability.Reset)
	observability.Reset()
	c := newTestCLI()

	runCaptured(t, c, "-v")

	if lvl := c.Logger.GetLevel(); lvl != log.DebugLevel {
		t.Errorf("level after -v = %v, want debug", lvl)
	}
	if _, ok := observability.Pipeline().(*logHooks); !ok {
		t.Errorf("pipeline hooks = %T, want *logHooks", observability.Pipeline())
	}
	if _, ok := observability.Cache().(*logHooks); !ok {
		t.Errorf("cache hooks = %T, want *logHooks", observability.Cache())
	}
}

func TestQuietKeepsNoopHooks(t *testing.T) {
	t.Cleanup(observability.Reset)
	observability.Reset()
	c := newTestCLI()

	runCaptured(t, c)

	if lvl := c.Logger.GetLevel(); lvl != log.InfoLevel {
		t.Errorf("level without -v = %v, want info", lvl)
	}
	if _, ok := observability.Pipeline().(*logHooks); ok {
		t.Error("pipeline hooks registered without -v")
	}
}

func TestVerboseLogsHookEvents(t *testing.T) {
	t.Cleanup(observability.Reset)
	var buf bytes.Buffer
	c := New(&buf, log.InfoLevel)

	runCaptured(t, c, "--verbose")
	observability.Cache().OnCacheMiss(context.Background(), "graphstats")

	if !strings.Contains(buf.String(), "graphstats") {
		t.Errorf("debug output missing cache key type: %q", buf.String())
	}
}

func TestProgressDone(t *testing.T) {
	var buf bytes.Buffer
	prog := newProgress(newLogger(&buf, log.InfoLevel))
	prog.done("Reorder finished")

	out := buf.String()
	if !strings.Contains(out, "Reorder finished (") || !strings.HasSuffix(strings.TrimSpace(out), "s)") {
		t.Errorf("progress output = %q, want \"Reorder finished (<elapsed>)\"", out)
	}
}

func TestProgressDoneFilteredAtWarn(t *testing.T) {
	var buf bytes.Buffer
	newProgress(newLogger(&buf, log.WarnLevel)).done("Export finished")
	if buf.Len() != 0 {
		t.Errorf("info progress written at warn level: %q", buf.String())
	}
}

func TestLoggerFromContextDefault(t *testing.T) {
	if loggerFromContext(context.Background()) != log.Default() {
		t.Error("bare context should yield the default logger")
	}
}
