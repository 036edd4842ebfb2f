package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/benchorder/pkg/config"
	"github.com/matzehuels/benchorder/pkg/pipeline"
)

// pathFlags overrides config paths. Empty values keep the config value.
type pathFlags struct {
	input     string
	manifest  string
	graphsDir string
	outputDir string
	seedsRoot string
}

func (f *pathFlags) registerInput(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.input, "input", "", "dataset file (default: "+config.DefaultDataset+")")
}

func (f *pathFlags) registerGraphs(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.graphsDir, "graphs-dir", "", "graphs directory (default: "+config.DefaultGraphsDir+")")
}

func (f *pathFlags) registerManifest(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.manifest, "manifest", "", "topic→slug manifest (default: <graphs-dir>/manifest.json)")
}

func (f *pathFlags) registerOutput(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.outputDir, "output-dir", "", "base output directory (default: "+config.DefaultOutputDir+")")
}

func (f *pathFlags) registerSeeds(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.seedsRoot, "seeds-root", "", "extraction run tree (default: $ISABENCH_ROOT/output/2025_seeds)")
}

// apply overlays the flags on p.
func (f *pathFlags) apply(p *config.Paths) {
	set := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	set(&p.Dataset, f.input)
	set(&p.Manifest, f.manifest)
	set(&p.GraphsDir, f.graphsDir)
	set(&p.OutputDir, f.outputDir)
	set(&p.SeedsRoot, f.seedsRoot)
}

// rankingFlags overrides config ranking settings. Only flags the user set
// are applied, so config values survive flag defaults.
type rankingFlags struct {
	seed    int64
	bands   int
	nodeMin int
	nodeMax int
	edgeMin int
	edgeMax int
	noCache bool
}

func (f *rankingFlags) register(cmd *cobra.Command) {
	def := config.Default().Ranking
	cmd.Flags().Int64Var(&f.seed, "seed", def.Seed, "shuffle seed")
	cmd.Flags().IntVar(&f.bands, "bands", def.Bands, "number of quality bands")
	cmd.Flags().IntVar(&f.nodeMin, "node-min", def.Ideal.Nodes.Min, "ideal minimum node count")
	cmd.Flags().IntVar(&f.nodeMax, "node-max", def.Ideal.Nodes.Max, "ideal maximum node count")
	cmd.Flags().IntVar(&f.edgeMin, "edge-min", def.Ideal.Edges.Min, "ideal minimum edge count")
	cmd.Flags().IntVar(&f.edgeMax, "edge-max", def.Ideal.Edges.Max, "ideal maximum edge count")
	cmd.Flags().BoolVar(&f.noCache, "no-cache", false, "disable the graph stats cache")
}

// apply overlays the flags the user changed on r.
func (f *rankingFlags) apply(cmd *cobra.Command, r *config.Ranking) {
	changed := cmd.Flags().Changed
	if changed("seed") {
		r.Seed = f.seed
	}
	if changed("bands") {
		r.Bands = f.bands
	}
	if changed("node-min") {
		r.Ideal.Nodes.Min = f.nodeMin
	}
	if changed("node-max") {
		r.Ideal.Nodes.Max = f.nodeMax
	}
	if changed("edge-min") {
		r.Ideal.Edges.Min = f.edgeMin
	}
	if changed("edge-max") {
		r.Ideal.Edges.Max = f.edgeMax
	}
}

// reorderOptions resolves config, path flags and ranking flags into pipeline
// options.
func (c *CLI) reorderOptions(cmd *cobra.Command, paths *pathFlags, ranking *rankingFlags) (pipeline.ReorderOptions, error) {
	cfg, root, err := c.loadConfig()
	if err != nil {
		return pipeline.ReorderOptions{}, err
	}
	paths.apply(&cfg.Paths)
	ranking.apply(cmd, &cfg.Ranking)
	if err := cfg.Validate(); err != nil {
		return pipeline.ReorderOptions{}, err
	}

	p := cfg.Paths.Resolve(root)
	return pipeline.ReorderOptions{
		Dataset:   p.Dataset,
		Manifest:  p.Manifest,
		GraphsDir: p.GraphsDir,
		OutputDir: p.OutputDir,
		Seed:      cfg.Ranking.Seed,
		Bands:     cfg.Ranking.Bands,
		Ideal:     cfg.Ranking.Ideal,
	}, nil
}
