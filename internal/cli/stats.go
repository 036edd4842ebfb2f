package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/benchorder/pkg/pipeline"
)

// statsCommand creates the stats command.
func (c *CLI) statsCommand() *cobra.Command {
	var (
		paths   pathFlags
		ranking rankingFlags
	)

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show graph sizes, demo scores and the band histogram",
		Long: `Stats reads the manifest and every exported graph, scores each topic
against the ideal size and prints one line per topic followed by the number
of rows per band. Nothing is written.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := c.reorderOptions(cmd, &paths, &ranking)
			if err != nil {
				return err
			}
			return c.runStats(cmd.Context(), opts, ranking.noCache)
		},
	}

	paths.registerInput(cmd)
	paths.registerManifest(cmd)
	paths.registerGraphs(cmd)
	ranking.register(cmd)

	return cmd
}

func (c *CLI) runStats(ctx context.Context, opts pipeline.ReorderOptions, noCache bool) error {
	runner := c.newRunner(noCache)
	defer runner.Close()

	plan, _, err := runner.Plan(ctx, opts)
	if err != nil {
		return err
	}

	fmt.Println(renderGraphTable(graphRows(plan)))
	fmt.Println()
	fmt.Println(StyleTitle.Render("Bands"))
	fmt.Print(renderHistogram(plan.Histogram, plan.Thresholds))
	printStats(plan.TableInfo)
	printDetail("Ideal: nodes %s, edges %s", plan.Options.Ideal.Nodes, plan.Options.Ideal.Edges)
	return nil
}
