package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/benchorder/pkg/slug"
)

// slugCommand creates the slug command.
func (c *CLI) slugCommand() *cobra.Command {
	var withTopic bool

	cmd := &cobra.Command{
		Use:   "slug <topic>...",
		Short: "Print the anonymized identifier of topics",
		Long: `Slug prints the identifier export uses for each topic: the first 16 hex
characters of the SHA-256 of the trimmed topic. One line per argument.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, topic := range args {
				s := slug.FromTopic(topic)
				if withTopic {
					fmt.Fprintf(out, "%s\t%s\n", s, topic)
					continue
				}
				fmt.Fprintln(out, s)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&withTopic, "with-topic", "t", false, "print the topic next to each slug")

	return cmd
}
