package options

import (
	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/calm/pkg/glyph"
)

// MoodOptions
type MoodOptions struct {
	Mood string
}

func AddMoodArgs(cmd *cobra.Command, o *MoodOptions) {
	cmd.Flags().StringVarP(&o.Mood, "mood", "m", "",
		base.Wrap80("Tag the entry with a mood: happy, sad, angry, calm or anxious. The mood's key (1-5) also works."))
	_ = cmd.RegisterFlagCompletionFunc("mood", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		var names []string
		for _, m := range glyph.Moods() {
			names = append(names, string(m))
		}
		return names, cobra.ShellCompDirectiveNoFileComp
	})
}

func (o *MoodOptions) GetMood() (glyph.Mood, error) {
	return glyph.ParseMood(o.Mood)
}
