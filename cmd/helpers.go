package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ziadkadry99/opspanel/internal/apiclient"
	"github.com/ziadkadry99/opspanel/internal/config"
	"github.com/ziadkadry99/opspanel/internal/db"
	"github.com/ziadkadry99/opspanel/internal/history"
	"github.com/ziadkadry99/opspanel/internal/progress"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `opspanel init` to create a config file", err)
	}
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if !verbose {
		if lvl, err := zapcore.ParseLevel(string(cfg.LogLevel)); err == nil {
			logLevel.SetLevel(lvl)
		}
	}
	return cfg, nil
}

func newClient(cfg *config.Config) *apiclient.Client {
	return apiclient.New(cfg, apiclient.WithLogger(logger))
}

// openRecorder opens the history database for source. History is best
// effort: when disabled or unavailable the returned recorder is nil, which
// records nothing. The close func is always safe to call.
func openRecorder(cfg *config.Config, source history.Source) (*history.Recorder, func()) {
	if cfg.NoHistory {
		return nil, func() {}
	}
	database, err := db.Open(cfg.HistoryPath)
	if err != nil {
		logger.Warn("history disabled", zap.String("path", cfg.HistoryPath), zap.Error(err))
		return nil, func() {}
	}
	recorder := history.NewRecorder(history.NewStore(database), source, logger)
	return recorder, func() { database.Close() }
}

// view turns a result into the text to print and whether the interaction
// succeeded.
type view func(apiclient.Result) (string, bool)

// interact runs a single request behind a pending indicator, records it,
// and prints the rendered outcome to stdout. A failed interaction returns
// errInteractionFailed after its text has been printed.
func interact(cmd *cobra.Command, pending string, call func(context.Context, *apiclient.Client) apiclient.Result, render view) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	client := newClient(cfg)
	recorder, closeHistory := openRecorder(cfg, history.SourceCLI)
	defer closeHistory()

	ctx := cmd.Context()
	reporter := progress.NewReporter(cmd.ErrOrStderr())
	reporter.Start(pending)
	res := call(ctx, client)
	reporter.Finish()

	text, ok := render(res)
	recorder.Record(ctx, res, text, ok)
	fmt.Fprintln(cmd.OutOrStdout(), text)
	if !ok {
		return errInteractionFailed
	}
	return nil
}

// printInvalid reports a form that failed validation. No request is made.
func printInvalid(cmd *cobra.Command, msg string) error {
	fmt.Fprintln(cmd.OutOrStdout(), msg)
	return errInteractionFailed
}
