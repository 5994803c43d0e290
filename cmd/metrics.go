package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/opspanel/internal/apiclient"
	"github.com/ziadkadry99/opspanel/internal/render"
)

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Show the metrics link, or fetch the exposition with --fetch",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fetch, _ := cmd.Flags().GetBool("fetch")
		if fetch {
			return interact(cmd, render.PendingMetric,
				func(ctx context.Context, c *apiclient.Client) apiclient.Result { return c.Metrics(ctx) },
				func(res apiclient.Result) (string, bool) { return render.Metrics(res), !res.Failed() })
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		link, err := newClient(cfg).MetricsURL()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), link)
		return nil
	},
}

var linksCmd = &cobra.Command{
	Use:   "links",
	Short: "List every configured endpoint URL",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), render.Links(newClient(cfg).Links()))
		return nil
	},
}

func init() {
	metricsCmd.Flags().Bool("fetch", false, "fetch and print the metrics text")
	rootCmd.AddCommand(metricsCmd, linksCmd)
}
