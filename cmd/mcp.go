package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/opspanel/internal/history"
	mcpserver "github.com/ziadkadry99/opspanel/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server for AI agent integration",
	Long:  `Starts a Model Context Protocol (MCP) server on stdio, exposing the panel's actions as tools.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		recorder, closeHistory := openRecorder(cfg, history.SourceMCP)
		defer closeHistory()

		mcpserver.Version = Version

		fmt.Fprintf(os.Stderr, "opspanel MCP server started on stdio (api=%s)\n", cfg.BaseURL)

		srv := mcpserver.NewServer(newClient(cfg), recorder)
		return srv.Serve()
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
