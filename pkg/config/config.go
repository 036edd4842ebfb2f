// Package config holds the project settings shared by every command.
//
// Settings come from three layers, later ones winning: built-in defaults, an
// optional TOML file (benchorder.toml in the project root), and command-line
// flags applied by the caller.
//
//	[paths]
//	dataset    = "assets/data/iAgentBench.json"
//	graphs_dir = "assets/data/graphs"
//	output_dir = "assets/data/reordered"
//
//	[ranking]
//	seed  = 7
//	bands = 4
//
//	[ranking.ideal.nodes]
//	min = 20
//	max = 150
package config

import (
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/benchorder/pkg/errors"
	"github.com/matzehuels/benchorder/pkg/manifest"
	"github.com/matzehuels/benchorder/pkg/rank"
	"github.com/matzehuels/benchorder/pkg/seeds"
)

// FileName is the config file looked up in the project root.
const FileName = "benchorder.toml"

// Defaults.
const (
	DefaultDataset   = "assets/data/iAgentBench.json"
	DefaultGraphsDir = "assets/data/graphs"
	DefaultOutputDir = "assets/data/reordered"
	DefaultSeed      = int64(42)
)

// Config is the full settings tree.
type Config struct {
	Paths   Paths   `toml:"paths"`
	Ranking Ranking `toml:"ranking"`
}

// Paths locates inputs and outputs. Relative paths are relative to the
// project root.
type Paths struct {
	Dataset   string `toml:"dataset"`
	GraphsDir string `toml:"graphs_dir"`
	Manifest  string `toml:"manifest"`   // default: <graphs_dir>/manifest.json
	OutputDir string `toml:"output_dir"` // base of rseed_<seed> directories
	SeedsRoot string `toml:"seeds_root"` // default: derived from ISABENCH_ROOT
}

// Ranking controls scoring and shuffling.
type Ranking struct {
	Seed  int64      `toml:"seed"`
	Bands int        `toml:"bands"`
	Ideal rank.Ideal `toml:"ideal"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Paths: Paths{
			Dataset:   DefaultDataset,
			GraphsDir: DefaultGraphsDir,
			OutputDir: DefaultOutputDir,
		},
		Ranking: Ranking{
			Seed:  DefaultSeed,
			Bands: rank.DefaultBands,
			Ideal: rank.DefaultIdeal,
		},
	}
}

// Load returns the defaults overlaid with the TOML file at path. Unknown
// keys are rejected so typos do not silently fall back to defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "config not found: %s", path)
		}
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		slices.Sort(keys)
		return Config{}, errors.New(errors.ErrCodeInvalidConfig, "%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	return cfg, nil
}

// Discover loads explicit if it is set, otherwise <root>/benchorder.toml when
// that file exists, otherwise the defaults. It returns the file actually
// used, or "" for defaults.
func Discover(root, explicit string) (Config, string, error) {
	if explicit != "" {
		cfg, err := Load(explicit)
		return cfg, explicit, err
	}
	path := filepath.Join(root, FileName)
	if _, err := os.Stat(path); err != nil {
		return Default(), "", nil
	}
	cfg, err := Load(path)
	return cfg, path, err
}

// Validate checks the ranking settings.
func (c Config) Validate() error {
	if c.Ranking.Bands < 1 {
		return errors.New(errors.ErrCodeInvalidConfig, "bands must be at least 1, got %d", c.Ranking.Bands)
	}
	if err := c.Ranking.Ideal.Validate(); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "ideal band")
	}
	return nil
}

// Resolve returns p with every path made absolute against root and the
// derived defaults filled in.
func (p Paths) Resolve(root string) Paths {
	out := Paths{
		Dataset:   resolve(root, p.Dataset),
		GraphsDir: resolve(root, p.GraphsDir),
		OutputDir: resolve(root, p.OutputDir),
		Manifest:  resolve(root, p.Manifest),
		SeedsRoot: resolve(root, p.SeedsRoot),
	}
	if p.Manifest == "" {
		out.Manifest = filepath.Join(out.GraphsDir, manifest.FileName)
	}
	if p.SeedsRoot == "" {
		out.SeedsRoot = seeds.Root(root)
	}
	return out
}

func resolve(root, path string) string {
	if path == "" {
		return ""
	}
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(root, path)
}
