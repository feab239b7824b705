package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/calm/pkg/commands/options"
	ex "tableflip.dev/calm/pkg/exercise"
	"tableflip.dev/calm/pkg/runner/activity"
	"tableflip.dev/calm/pkg/runner/exercise"
)

func addActivity(topLevel *cobra.Command) {
	so := &options.SpeakOptions{}
	guide := false

	cmd := &cobra.Command{
		Use:   "activity",
		Short: "Movement that helps, with an optional breathing guide.",
		Example: `
calm activity
calm activity --guide
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			n := activity.Activity{Out: cmd.OutOrStdout()}
			if !guide {
				return output.HandleError(n.Do(cmd.Context()))
			}
			return output.HandleError(withEnv(func(e *env) error {
				pattern, err := ex.Lookup("activity")
				if err != nil {
					return err
				}
				n.Guide = &exercise.Exercise{
					Config:   e.Config,
					Pattern:  pattern,
					Narrator: e.Narrator,
					Speak:    so.Speak,
					Out:      cmd.OutOrStdout(),
				}
				return n.Do(cmd.Context())
			}))
		},
	}

	options.AddSpeakArgs(cmd, so)
	cmd.Flags().BoolVarP(&guide, "guide", "g", false, "Follow the suggestions with the breathing guide.")
	topLevel.AddCommand(cmd)
}
