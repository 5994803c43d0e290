package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/opspanel/internal/history"
	"github.com/ziadkadry99/opspanel/internal/panel"
)

var panelCmd = &cobra.Command{
	Use:   "panel",
	Short: "Open the interactive panel",
	Long:  `Opens a full-screen panel with the user and item forms, the trigger buttons and the endpoint links.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		recorder, closeHistory := openRecorder(cfg, history.SourcePanel)
		defer closeHistory()

		return panel.Run(cmd.Context(), newClient(cfg), recorder)
	},
}

func init() {
	rootCmd.AddCommand(panelCmd)
}
