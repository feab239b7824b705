package commands

import (
	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/calm/pkg/commands/options"
	"tableflip.dev/calm/pkg/runner/home"
)

var (
	output = &options.OutputOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "calm",
		Short: base.Wrap80("Breathing, grounding and journaling for when panic hits."),
		Long: base.Wrap80(`calm guides you through breathing and grounding exercises, keeps a
journal that saves itself as you type, and offers affirmations. Run
"calm help-now" for immediate help.`),
		RunE: func(cmd *cobra.Command, args []string) error {
			h := home.Home{Out: cmd.OutOrStdout()}
			return h.Do(cmd.Context())
		},
	}

	options.AddOutputArg(cmd, output)

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addHelpNow(topLevel)
	addExercise(topLevel)
	addJournal(topLevel)
	addAffirm(topLevel)
	addActivity(topLevel)
	addPatterns(topLevel)
	addMoods(topLevel)
	addInfo(topLevel)
	addMCP(topLevel)
	addVersion(topLevel)
	addCompletions(topLevel)
}
