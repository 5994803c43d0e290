package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ziadkadry99/opspanel/internal/config"
)

var (
	cfgFile string
	verbose bool
	baseURL string

	logLevel = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	logger   = zap.NewNop()
)

// errInteractionFailed marks a request whose failure text was already printed.
var errInteractionFailed = errors.New("interaction failed")

var rootCmd = &cobra.Command{
	Use:   "opspanel",
	Short: "Terminal control panel for the ops demo API",
	Long: `opspanel drives a small JSON HTTP API from the terminal: health checks,
item submission, user management, trigger endpoints and metrics. Every
response is rendered as a line of text. Run "opspanel panel" for the
interactive view or "opspanel mcp" to expose the same actions to agents.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		zapCfg := zap.NewProductionConfig()
		if verbose {
			logLevel.SetLevel(zapcore.DebugLevel)
		}
		zapCfg.Level = logLevel
		built, err := zapCfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		logger = built
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

// Execute runs the root command until it finishes or the process is interrupted.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if err != nil && !errors.Is(err, errInteractionFailed) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", config.DefaultConfigFile, "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&baseURL, "base-url", "", "API base URL (overrides config)")
}
