package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/calm/pkg/runner/moods"
)

func addMoods(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "moods",
		Short: "The moods a journal entry can carry and their editor keys.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			n := moods.Moods{Out: cmd.OutOrStdout()}
			return n.Do(cmd.Context())
		},
	}

	topLevel.AddCommand(cmd)
}
