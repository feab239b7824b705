package commands

import (
	"fmt"
	"strings"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/calm/pkg/commands/options"
	ex "tableflip.dev/calm/pkg/exercise"
	"tableflip.dev/calm/pkg/runner/exercise"
)

func addExercise(topLevel *cobra.Command) {
	eo := &options.ExerciseOptions{}
	so := &options.SpeakOptions{}

	cmd := &cobra.Command{
		Use:   "exercise [name]",
		Short: "Run a guided exercise.",
		Long: base.Wrap80(fmt.Sprintf(`Run a guided breathing, grounding, relaxation or
visualization exercise. Known exercises: %s. Without a name the configured
default runs.`, strings.Join(ex.Names(), ", "))),
		Example: `
calm exercise box
calm exercise 478 --speak
calm exercise --phases="inhale=4s,exhale=6s" --plain --cycles=3
`,
		Args: cobra.MaximumNArgs(1),
		ValidArgsFunction: func(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
			if len(args) != 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			return ex.Names(), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			name := ""
			if len(args) == 1 {
				name = args[0]
			}
			return runExercise(cmd, name, eo, so)
		},
	}

	options.AddExerciseArgs(cmd, eo)
	options.AddSpeakArgs(cmd, so)
	topLevel.AddCommand(cmd)

	addExerciseShortcut(topLevel, "breathe", "triangle", "Calm breathing: in, hold, out.")
	addExerciseShortcut(topLevel, "ground", "grounding", "The 5-4-3-2-1 senses grounding exercise.")
	addExerciseShortcut(topLevel, "relax", "relaxation", "Progressive muscle relaxation.")
	addExerciseShortcut(topLevel, "visualize", "visualization", "Walk through a calm place in your mind.")
}

func addExerciseShortcut(topLevel *cobra.Command, use, preset, short string) {
	eo := &options.ExerciseOptions{}
	so := &options.SpeakOptions{}

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runExercise(cmd, preset, eo, so)
		},
	}

	options.AddExerciseArgs(cmd, eo)
	options.AddSpeakArgs(cmd, so)
	topLevel.AddCommand(cmd)
}

func addHelpNow(topLevel *cobra.Command) {
	so := &options.SpeakOptions{}

	cmd := &cobra.Command{
		Use:     "help-now",
		Aliases: []string{"sos"},
		Short:   "Start box breathing right away.",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runExercise(cmd, "box", &options.ExerciseOptions{}, so)
		},
	}

	options.AddSpeakArgs(cmd, so)
	topLevel.AddCommand(cmd)
}

func runExercise(cmd *cobra.Command, name string, eo *options.ExerciseOptions, so *options.SpeakOptions) error {
	cmd.SilenceUsage = true
	return output.HandleError(withEnv(func(e *env) error {
		if name == "" {
			name = e.Config.Engine.Pattern
		}
		pattern, err := eo.GetPattern(name)
		if err != nil {
			return err
		}
		n := exercise.Exercise{
			Config:   e.Config,
			Pattern:  pattern,
			Patterns: ex.Presets(),
			Narrator: e.Narrator,
			Speak:    so.Speak,
			Plain:    eo.Plain,
			Cycles:   eo.Cycles,
			Out:      cmd.OutOrStdout(),
		}
		return n.Do(cmd.Context())
	}))
}
