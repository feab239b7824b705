package commands

import (
	"github.com/spf13/cobra"

	ex "tableflip.dev/calm/pkg/exercise"
	"tableflip.dev/calm/pkg/runner/patterns"
)

func addPatterns(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "patterns [name]",
		Short: "List the exercises, or the phases of one.",
		Example: `
calm patterns
calm patterns 478
calm patterns --json
`,
		Args: cobra.MaximumNArgs(1),
		ValidArgsFunction: func(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
			if len(args) != 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			return ex.Names(), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			n := patterns.Patterns{
				JSON: output.JSON,
				Out:  cmd.OutOrStdout(),
			}
			if len(args) == 1 {
				n.Name = args[0]
			}
			return output.HandleError(n.Do(cmd.Context()))
		},
	}

	topLevel.AddCommand(cmd)
}
