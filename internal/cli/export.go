package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/matzehuels/benchorder/pkg/pipeline"
)

// exportCommand creates the export command.
func (c *CLI) exportCommand() *cobra.Command {
	var paths pathFlags

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Publish each topic's latest knowledge graph under an anonymized slug",
		Long: `Export walks the unique topics of the dataset, picks each topic's latest
complete extraction run and writes <slug>.graphml, <slug>_meta.json and
<slug>_details.json to the graphs directory, followed by manifest.json.

Topics without a complete run are skipped and left out of the manifest.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := c.exportOptions(&paths)
			if err != nil {
				return err
			}
			return c.runExport(cmd.Context(), opts)
		},
	}

	paths.registerInput(cmd)
	paths.registerGraphs(cmd)
	paths.registerSeeds(cmd)

	return cmd
}

func (c *CLI) exportOptions(paths *pathFlags) (pipeline.ExportOptions, error) {
	cfg, root, err := c.loadConfig()
	if err != nil {
		return pipeline.ExportOptions{}, err
	}
	paths.apply(&cfg.Paths)
	p := cfg.Paths.Resolve(root)
	return pipeline.ExportOptions{
		Dataset:   p.Dataset,
		GraphsDir: p.GraphsDir,
		SeedsRoot: p.SeedsRoot,
	}, nil
}

func (c *CLI) runExport(ctx context.Context, opts pipeline.ExportOptions) error {
	runner := c.newRunner(true)
	defer runner.Close()

	c.Logger.Debug("export", "dataset", opts.Dataset, "seeds_root", opts.SeedsRoot, "graphs_dir", opts.GraphsDir)
	prog := newProgress(c.Logger)

	res, err := runner.Export(ctx, opts)
	if err != nil {
		return err
	}
	prog.done("Export finished")

	printSuccess("Exported %d of %d topics", len(res.Exported), res.Topics)
	printFile(res.ManifestPath)
	if n := len(res.Skipped); n > 0 {
		printWarning("Skipped %d topics", n)
		for _, s := range res.Skipped {
			printDetail("%s (%s)", truncate(s.Topic, topicWidth), s.Reason)
		}
	}
	return nil
}
