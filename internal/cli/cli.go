// Package cli implements the benchorder command-line interface.
package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/benchorder/pkg/buildinfo"
	"github.com/matzehuels/benchorder/pkg/cache"
	"github.com/matzehuels/benchorder/pkg/config"
	"github.com/matzehuels/benchorder/pkg/observability"
	"github.com/matzehuels/benchorder/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "benchorder"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	root       string // project root; "" means the working directory
	configPath string // explicit config file
	verbose    bool
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "benchorder curates the iAgentBench dataset for demos",
		Long: `benchorder publishes each benchmark topic's knowledge graph under an
anonymized slug and reorders the benchmark so rows with demo-sized graphs
come first, shuffled within quality bands for topic diversity.`,
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if c.verbose {
				c.SetLogLevel(LogDebug)
				hooks := newLogHooks(c.Logger)
				observability.SetPipelineHooks(hooks)
				observability.SetCacheHooks(hooks)
			}
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.PersistentFlags().StringVar(&c.root, "root", "", "project root (default: current directory)")
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default: <root>/"+config.FileName+" when present)")
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(c.exportCommand())
	root.AddCommand(c.reorderCommand())
	root.AddCommand(c.statsCommand())
	root.AddCommand(c.previewCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.slugCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Project settings
// =============================================================================

// projectRoot returns the absolute project root.
func (c *CLI) projectRoot() (string, error) {
	root := c.root
	if root == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
		root = wd
	}
	return filepath.Abs(root)
}

// loadConfig discovers the config file and returns the settings together
// with the project root they are relative to.
func (c *CLI) loadConfig() (config.Config, string, error) {
	root, err := c.projectRoot()
	if err != nil {
		return config.Config{}, "", err
	}
	cfg, used, err := config.Discover(root, c.configPath)
	if err != nil {
		return config.Config{}, "", err
	}
	if used != "" {
		c.Logger.Debug("loaded config", "path", used)
	}
	return cfg, root, nil
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner(noCache bool) *pipeline.Runner {
	return pipeline.NewRunner(c.newCache(noCache), nil, c.Logger)
}

// newCache opens the stats cache. Any problem with the cache directory
// degrades to no caching.
func (c *CLI) newCache(noCache bool) cache.Cache {
	if noCache {
		return cache.NewNullCache()
	}
	dir, err := cacheDir()
	if err != nil {
		c.Logger.Debug("cache disabled", "error", err)
		return cache.NewNullCache()
	}
	fc, err := cache.NewFileCache(dir)
	if err != nil {
		c.Logger.Debug("cache disabled", "dir", dir, "error", err)
		return cache.NewNullCache()
	}
	return fc
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/benchorder/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}
