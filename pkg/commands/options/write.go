package options

import (
	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"
)

// WriteOptions
type WriteOptions struct {
	Draft bool
}

func AddWriteArgs(cmd *cobra.Command, o *WriteOptions) {
	cmd.Flags().BoolVar(&o.Draft, "draft", false,
		base.Wrap80("Replace the draft shown in the editor instead of saving an entry."))
}
