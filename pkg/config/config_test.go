package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/benchorder/pkg/errors"
	"github.com/matzehuels/benchorder/pkg/rank"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, int64(42), cfg.Ranking.Seed)
	assert.Equal(t, 5, cfg.Ranking.Bands)
	assert.Equal(t, rank.DefaultIdeal, cfg.Ranking.Ideal)
	assert.NoError(t, cfg.Validate())
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	writeFile(t, path, `
[paths]
graphs_dir = "graphs"

[ranking]
seed = 7

[ranking.ideal.nodes]
min = 10
max = 200
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "graphs", cfg.Paths.GraphsDir)
	assert.Equal(t, DefaultDataset, cfg.Paths.Dataset)
	assert.Equal(t, int64(7), cfg.Ranking.Seed)
	assert.Equal(t, 5, cfg.Ranking.Bands)
	assert.Equal(t, rank.Range{Min: 10, Max: 200}, cfg.Ranking.Ideal.Nodes)
	assert.Equal(t, rank.DefaultIdeal.Edges, cfg.Ranking.Ideal.Edges)
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "missing.toml"))
	assert.True(t, errors.Is(err, errors.ErrCodeFileNotFound), "got %v", err)

	bad := filepath.Join(dir, "bad.toml")
	writeFile(t, bad, "[ranking\nseed = 1")
	_, err = Load(bad)
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidConfig), "got %v", err)

	unknown := filepath.Join(dir, "unknown.toml")
	writeFile(t, unknown, "[ranking]\nsed = 1\n")
	_, err = Load(unknown)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidConfig))
	assert.Contains(t, err.Error(), "ranking.sed")
}

func TestDiscover(t *testing.T) {
	root := t.TempDir()

	cfg, used, err := Discover(root, "")
	require.NoError(t, err)
	assert.Empty(t, used)
	assert.Equal(t, Default(), cfg)

	writeFile(t, filepath.Join(root, FileName), "[ranking]\nbands = 3\n")
	cfg, used, err = Discover(root, "")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, FileName), used)
	assert.Equal(t, 3, cfg.Ranking.Bands)

	_, _, err = Discover(root, filepath.Join(root, "other.toml"))
	assert.Error(t, err, "an explicit config must exist")
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Ranking.Bands = 0
	assert.True(t, errors.Is(cfg.Validate(), errors.ErrCodeInvalidConfig))

	cfg = Default()
	cfg.Ranking.Ideal.Edges = rank.Range{Min: 300, Max: 40}
	assert.True(t, errors.Is(cfg.Validate(), errors.ErrCodeInvalidConfig))
}

func TestResolve(t *testing.T) {
	t.Setenv("ISABENCH_ROOT", "/data/isa")

	p := Default().Paths.Resolve("/work/demo")
	assert.Equal(t, filepath.Join("/work/demo", "assets", "data", "iAgentBench.json"), p.Dataset)
	assert.Equal(t, filepath.Join("/work/demo", "assets", "data", "graphs"), p.GraphsDir)
	assert.Equal(t, filepath.Join("/work/demo", "assets", "data", "graphs", "manifest.json"), p.Manifest)
	assert.Equal(t, filepath.Join("/work/demo", "assets", "data", "reordered"), p.OutputDir)
	assert.Equal(t, filepath.Join("/data/isa", "output", "2025_seeds"), p.SeedsRoot)

	p = Paths{Dataset: "/abs/data.json", GraphsDir: "g", Manifest: "m.json", SeedsRoot: "runs"}.Resolve("/r")
	assert.Equal(t, "/abs/data.json", p.Dataset)
	assert.Equal(t, "/r/m.json", p.Manifest)
	assert.Equal(t, "/r/runs", p.SeedsRoot)
}
