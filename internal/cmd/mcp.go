package cmd

import (
	"github.com/spf13/cobra"

	"github.com/cybermura-dev/ReadmeForge/internal/mcp"
)

func init() {
	rootCmd.AddCommand(mcpCmd)
}

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server exposing the analyzer",
	Long: `Starts a local MCP server over stdio.

Configure in your MCP client, e.g.:

{
  "mcpServers": {
    "readmeforge": {
      "command": "readmeforge",
      "args": ["mcp"]
    }
  }
}

The server exposes two tools:
- analyze_project: full project inventory as JSON
- generate_readme: analyze and write README.md`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		server := mcp.NewServer(cfg)
		return server.ServeStdio()
	},
}
