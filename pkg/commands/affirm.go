package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/calm/pkg/commands/options"
	"tableflip.dev/calm/pkg/narration"
	"tableflip.dev/calm/pkg/runner/affirm"
)

func addAffirm(topLevel *cobra.Command) {
	so := &options.SpeakOptions{}
	all := false

	cmd := &cobra.Command{
		Use:   "affirm",
		Short: "Show the next affirmation.",
		Example: `
calm affirm
calm affirm --speak
calm affirm --all
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			return output.HandleError(withEnv(func(e *env) error {
				n := affirm.Affirm{
					KV:       e.Persistence,
					All:      all,
					Speak:    so.Speak,
					Narrator: e.Narrator,
					Voice:    narration.VoiceFrom(e.Config.Narration),
					Out:      cmd.OutOrStdout(),
				}
				return n.Do(cmd.Context())
			}))
		},
	}

	options.AddSpeakArgs(cmd, so)
	cmd.Flags().BoolVar(&all, "all", false, "Print every affirmation without moving on.")
	topLevel.AddCommand(cmd)
}
