package options

import (
	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/calm/pkg/exercise"
)

// ExerciseOptions
type ExerciseOptions struct {
	Phases string
	Plain  bool
	Cycles int
}

func AddExerciseArgs(cmd *cobra.Command, o *ExerciseOptions) {
	cmd.Flags().StringVar(&o.Phases, "phases", "",
		base.Wrap80(`Run a custom rhythm instead of a named exercise, example: --phases="inhale=4s,hold=7s,exhale=8s".`))
	cmd.Flags().BoolVar(&o.Plain, "plain", false,
		"Print one line per phase instead of the full screen view.")
	cmd.Flags().IntVarP(&o.Cycles, "cycles", "c", 0,
		"Stop plain output after this many cycles. 0 runs until interrupted.")
}

// GetPattern resolves the exercise to run. Custom phases win over name.
func (o *ExerciseOptions) GetPattern(name string) (exercise.Pattern, error) {
	if o.Phases != "" {
		return exercise.ParsePhases(o.Phases)
	}
	return exercise.Lookup(name)
}
