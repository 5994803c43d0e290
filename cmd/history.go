package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/opspanel/internal/db"
	"github.com/ziadkadry99/opspanel/internal/history"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recently recorded interactions",
	Long: `Lists interactions recorded by the CLI, the panel and the MCP server,
newest first, with the text each one rendered.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		endpoint, _ := cmd.Flags().GetString("endpoint")
		source, _ := cmd.Flags().GetString("source")
		limit, _ := cmd.Flags().GetInt("limit")
		since, _ := cmd.Flags().GetDuration("since")
		clearAll, _ := cmd.Flags().GetBool("clear")

		database, err := db.Open(cfg.HistoryPath)
		if err != nil {
			return fmt.Errorf("opening history: %w", err)
		}
		defer database.Close()
		store := history.NewStore(database)

		out := cmd.OutOrStdout()
		if clearAll {
			n, err := store.Clear(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "Cleared %d entries\n", n)
			return nil
		}

		filter := history.Filter{
			Endpoint: endpoint,
			Source:   history.Source(source),
			Limit:    limit,
		}
		if since > 0 {
			cutoff := time.Now().Add(-since)
			filter.Since = &cutoff
		}
		entries, err := store.Recent(cmd.Context(), filter)
		if err != nil {
			return err
		}
		if len(entries) == 0 {
			fmt.Fprintln(out, "No history yet.")
			return nil
		}
		for _, e := range entries {
			status := "ok"
			if !e.OK {
				status = "failed"
			}
			fmt.Fprintf(out, "%s  %-5s %-7s %-4s %3d %-6s %s\n",
				e.RecordedAt.Local().Format(time.DateTime), e.Source, e.Endpoint, e.Method,
				e.Status, status, e.Duration.Round(time.Millisecond))
			for _, line := range strings.Split(e.Rendered, "\n") {
				fmt.Fprintf(out, "    %s\n", line)
			}
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().String("endpoint", "", "only show this logical endpoint")
	historyCmd.Flags().String("source", "", "only show entries from cli, panel or mcp")
	historyCmd.Flags().Int("limit", 20, "maximum entries to show")
	historyCmd.Flags().Duration("since", 0, "only show entries newer than this (e.g. 1h)")
	historyCmd.Flags().Bool("clear", false, "delete all recorded entries")
	rootCmd.AddCommand(historyCmd)
}
