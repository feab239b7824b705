package options

import (
	"github.com/spf13/cobra"
)

// SpeakOptions
type SpeakOptions struct {
	Speak bool
}

func AddSpeakArgs(cmd *cobra.Command, o *SpeakOptions) {
	cmd.Flags().BoolVar(&o.Speak, "speak", false,
		"Read instructions aloud when a speech program is installed.")
}
