package commands

import (
	"strings"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/calm/pkg/commands/options"
	"tableflip.dev/calm/pkg/runner/journal"
)

func addJournal(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "journal",
		Short: "Write in the journal. The draft saves itself as you type.",
		Example: `
calm journal
calm journal write --mood=calm "The walk helped."
calm journal log --limit=5
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			return output.HandleError(withEnv(func(e *env) error {
				n := journal.Editor{Store: e.Journal}
				return n.Do(cmd.Context())
			}))
		},
	}

	addJournalWrite(cmd)
	addJournalLog(cmd)

	topLevel.AddCommand(cmd)
}

func addJournalWrite(parent *cobra.Command) {
	mo := &options.MoodOptions{}
	wo := &options.WriteOptions{}

	cmd := &cobra.Command{
		Use:   "write [text...]",
		Short: "Save a journal entry without opening the editor.",
		Example: `
calm journal write "Felt the wave pass after ten minutes."
calm journal write --mood=anxious --draft "Thinking about tomorrow"
`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			mood, err := mo.GetMood()
			if err != nil {
				return output.HandleError(err)
			}
			return output.HandleError(withEnv(func(e *env) error {
				n := journal.Write{
					Store: e.Journal,
					Text:  strings.Join(args, " "),
					Mood:  mood,
					Draft: wo.Draft,
					Out:   cmd.OutOrStdout(),
				}
				return n.Do(cmd.Context())
			}))
		},
	}

	options.AddMoodArgs(cmd, mo)
	options.AddWriteArgs(cmd, wo)
	parent.AddCommand(cmd)
}

func addJournalLog(parent *cobra.Command) {
	lo := &options.LogOptions{}
	oo := &options.OnOptions{}

	cmd := &cobra.Command{
		Use:   "log",
		Short: "List saved journal entries.",
		Example: `
calm journal log
calm journal log --month --on=2/1
calm journal log --follow
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			on, err := oo.GetOn()
			if err != nil {
				return output.HandleError(err)
			}
			if on == nil {
				now := time.Now()
				on = &now
			}
			return output.HandleError(withEnv(func(e *env) error {
				n := journal.Log{
					Storage: e.Persistence,
					Limit:   lo.Limit,
					Month:   lo.Month,
					On:      *on,
					JSON:    output.JSON,
					Follow:  lo.Follow,
					Out:     cmd.OutOrStdout(),
				}
				if w, ok := e.Persistence.(journal.Watcher); ok {
					n.Watcher = w
				}
				return n.Do(cmd.Context())
			}))
		},
	}

	options.AddLogArgs(cmd, lo)
	options.AddOnArgs(cmd, oo)
	parent.AddCommand(cmd)
}
