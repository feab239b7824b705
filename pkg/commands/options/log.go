package options

import (
	"github.com/spf13/cobra"
)

// LogOptions
type LogOptions struct {
	Limit  int
	Month  bool
	Follow bool
}

func AddLogArgs(cmd *cobra.Command, o *LogOptions) {
	cmd.Flags().IntVarP(&o.Limit, "limit", "n", 0,
		"Show only the most recent entries. 0 shows all.")
	cmd.Flags().BoolVarP(&o.Month, "month", "m", false,
		"Show a month calendar marking days with entries.")
	cmd.Flags().BoolVarP(&o.Follow, "follow", "f", false,
		"Keep running and print entries as they are saved.")
}
