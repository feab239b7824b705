package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/calm/pkg/runner/info"
)

func addInfo(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Where calm keeps its settings, journal and logs.",
		Example: `
calm info
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			return output.HandleError(withEnv(func(e *env) error {
				n := info.Info{
					Config:   e.Config,
					Storage:  e.Persistence,
					Narrator: e.Narrator,
					Out:      cmd.OutOrStdout(),
				}
				return n.Do(cmd.Context())
			}))
		},
	}

	topLevel.AddCommand(cmd)
}
