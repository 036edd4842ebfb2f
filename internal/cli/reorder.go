package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/benchorder/pkg/pipeline"
)

// reorderCommand creates the reorder command.
func (c *CLI) reorderCommand() *cobra.Command {
	var (
		paths   pathFlags
		ranking rankingFlags
	)

	cmd := &cobra.Command{
		Use:   "reorder",
		Short: "Reorder the dataset by graph demo score with a banded shuffle",
		Long: `Reorder scores every row by how close its topic's graph is to the ideal
demo size, splits the scores into quantile bands, shuffles each band with
the seed and renumbers ids 0001..N in the new order.

Output goes to <output-dir>/rseed_<seed>/ together with seed_info.json.
The same seed and inputs always produce the same file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := c.reorderOptions(cmd, &paths, &ranking)
			if err != nil {
				return err
			}
			return c.runReorder(cmd.Context(), opts, ranking.noCache)
		},
	}

	paths.registerInput(cmd)
	paths.registerManifest(cmd)
	paths.registerGraphs(cmd)
	paths.registerOutput(cmd)
	ranking.register(cmd)

	return cmd
}

func (c *CLI) runReorder(ctx context.Context, opts pipeline.ReorderOptions, noCache bool) error {
	runner := c.newRunner(noCache)
	defer runner.Close()

	prog := newProgress(c.Logger)
	res, err := runner.Reorder(ctx, opts)
	if err != nil {
		return err
	}
	prog.done("Reorder finished")

	plan := res.Plan
	printSuccess("Reordered %d rows (%d with a graph) with seed %d", len(plan.Rows), plan.WithGraph(), plan.Options.Seed)
	printFile(res.OutputPath)
	printFile(res.SeedInfoPath)
	printStats(plan.TableInfo)
	printDetail("Bands: %s", formatHistogram(plan.Histogram))
	return nil
}

// formatHistogram renders band sizes as "0:12 1:11 2:12".
func formatHistogram(hist []int) string {
	s := ""
	for i, n := range hist {
		if i > 0 {
			s += " "
		}
		s += fmt.Sprintf("%d:%d", i, n)
	}
	return s
}
