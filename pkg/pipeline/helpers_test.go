package pipeline

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/benchorder/pkg/graphml"
	"github.com/matzehuels/benchorder/pkg/manifest"
	"github.com/matzehuels/benchorder/pkg/slug"
)

func quietLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{})
}

func write(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

// ring builds a graph with n nodes and e edges, cycling around the nodes.
func ring(n, e int) ([]graphml.Node, []graphml.Edge) {
	nodes := make([]graphml.Node, n)
	for i := range nodes {
		nodes[i] = graphml.Node{ID: fmt.Sprintf("n%d", i)}
	}
	edges := make([]graphml.Edge, e)
	for i := range edges {
		edges[i] = graphml.Edge{Start: fmt.Sprintf("n%d", i%n), End: fmt.Sprintf("n%d", (i+1)%n)}
	}
	return nodes, edges
}

// fixture is a project with exported graphs and a manifest.
type fixture struct {
	root      string
	dataset   string
	graphsDir string
	manifest  string
	outputDir string
}

func newFixture(t *testing.T, rows string, graphs map[string][2]int) fixture {
	t.Helper()
	root := t.TempDir()
	f := fixture{
		root:      root,
		dataset:   filepath.Join(root, "data", "iAgentBench.json"),
		graphsDir: filepath.Join(root, "graphs"),
		manifest:  filepath.Join(root, "graphs", manifest.FileName),
		outputDir: filepath.Join(root, "reordered"),
	}
	write(t, f.dataset, rows)

	m := manifest.New()
	for topic, shape := range graphs {
		s := slug.FromTopic(topic)
		m.Add(topic, s)
		nodes, edges := ring(shape[0], shape[1])
		doc, _, err := graphml.Marshal(nodes, edges)
		require.NoError(t, err)
		write(t, GraphPath(f.graphsDir, s), string(doc))
	}
	data, err := m.Marshal()
	require.NoError(t, err)
	write(t, f.manifest, string(data))
	return f
}

func (f fixture) options(seed int64, bands int) ReorderOptions {
	return ReorderOptions{
		Dataset:   f.dataset,
		Manifest:  f.manifest,
		GraphsDir: f.graphsDir,
		OutputDir: f.outputDir,
		Seed:      seed,
		Bands:     bands,
	}
}
