package cli

import (
	"io"
	"sort"

	"github.com/spf13/cobra"
)

// completionGenerators maps a shell name to its cobra script generator.
var completionGenerators = map[string]func(root *cobra.Command, w io.Writer) error{
	"bash":       func(root *cobra.Command, w io.Writer) error { return root.GenBashCompletionV2(w, true) },
	"zsh":        func(root *cobra.Command, w io.Writer) error { return root.GenZshCompletion(w) },
	"fish":       func(root *cobra.Command, w io.Writer) error { return root.GenFishCompletion(w, true) },
	"powershell": func(root *cobra.Command, w io.Writer) error { return root.GenPowerShellCompletionWithDesc(w) },
}

func completionShells() []string {
	shells := make([]string, 0, len(completionGenerators))
	for name := range completionGenerators {
		shells = append(shells, name)
	}
	sort.Strings(shells)
	return shells
}

// completionCommand prints a completion script for the requested shell.
func (c *CLI) completionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "completion <shell>",
		Short: "Print a shell completion script",
		Long: `Print a completion script for bash, zsh, fish or powershell on stdout.

Try it in the current shell:
  source <(` + appName + ` completion bash)
  ` + appName + ` completion fish | source

Install it permanently by saving the script where your shell looks for
completions, for example:
  ` + appName + ` completion zsh > "${fpath[1]}/_` + appName + `"
  ` + appName + ` completion fish > ~/.config/fish/completions/` + appName + `.fish`,
		DisableFlagsInUseLine: true,
		ValidArgs:             completionShells(),
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			return completionGenerators[args[0]](cmd.Root(), cmd.OutOrStdout())
		},
	}
}
