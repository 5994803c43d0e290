package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/opspanel/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize opspanel configuration with an interactive wizard",
	Long:  `Runs an interactive wizard that asks for the API base URL and writes the config file (see --config).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard(cfgFile)
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
