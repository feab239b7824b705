package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/calm/pkg/runner/mcp"
)

func addMCP(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Start the Model Context Protocol server on stdio.",
		Long: `Launch an MCP server over stdin and stdout that exposes the exercises,
affirmations and journal to assistant clients.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			return withEnv(func(e *env) error {
				runner := mcp.Runner{
					Service: mcp.NewService(e.Persistence, e.Journal),
					Name:    "calm",
					Version: version,
				}
				return runner.Do(cmd.Context())
			})
		},
	}

	topLevel.AddCommand(cmd)
}
