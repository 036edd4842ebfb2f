package cli

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/matzehuels/benchorder/pkg/pipeline"
)

// previewCommand creates the preview command.
func (c *CLI) previewCommand() *cobra.Command {
	var (
		paths   pathFlags
		ranking rankingFlags
		plain   bool
	)

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Browse the order a reorder run would produce, without writing",
		Long: `Preview computes the same ordering as reorder and shows it in an
interactive table. With --plain, or when stdout is not a terminal, the whole
table is printed instead.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := c.reorderOptions(cmd, &paths, &ranking)
			if err != nil {
				return err
			}
			interactive := !plain && isatty.IsTerminal(os.Stdout.Fd())
			return c.runPreview(cmd.Context(), opts, ranking.noCache, interactive)
		},
	}

	paths.registerInput(cmd)
	paths.registerManifest(cmd)
	paths.registerGraphs(cmd)
	ranking.register(cmd)
	cmd.Flags().BoolVar(&plain, "plain", false, "print the table instead of opening the browser")

	return cmd
}

func (c *CLI) runPreview(ctx context.Context, opts pipeline.ReorderOptions, noCache, interactive bool) error {
	runner := c.newRunner(noCache)
	defer runner.Close()

	plan, _, err := runner.Plan(ctx, opts)
	if err != nil {
		return err
	}
	if len(plan.Rows) == 0 {
		printInfo("Dataset is empty")
		return nil
	}

	if !interactive {
		fmt.Println(renderPlanTable(plan.Rows))
		return nil
	}

	_, err = tea.NewProgram(NewPreviewModel(plan), tea.WithContext(ctx), tea.WithAltScreen()).Run()
	if err != nil && ctx.Err() != nil {
		return ctx.Err()
	}
	return err
}
