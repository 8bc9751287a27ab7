package cmd

import (
	"github.com/huangsam/rolodex/internal/mcp"
	"github.com/spf13/cobra"
)

// mcpCmd represents the mcp command.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the rolodex MCP server",
	Long: `Launch an MCP server over stdio so AI agents can manage contacts and
ask for upcoming birthdays via standard tools.`,
	// Logs go to stderr, so stdio stays free for the protocol.
	PreRunE:  sharedSetupWrapper,
	PostRunE: sharedTeardownWrapper,
	RunE: func(_ *cobra.Command, _ []string) error {
		return mcp.StartMCPServer(rootCtx, contactStore, cfg, log)
	},
}
