package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/manifoldco/promptui"
)

// validateBaseURL is the promptui validator for the base URL field.
func validateBaseURL(input string) error {
	u, err := url.Parse(strings.TrimSpace(input))
	if err != nil {
		return err
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("must be an absolute http(s) URL")
	}
	return nil
}

// validateTimeout is the promptui validator for the timeout field.
func validateTimeout(input string) error {
	d, err := time.ParseDuration(strings.TrimSpace(input))
	if err != nil {
		return err
	}
	if d < 0 {
		return fmt.Errorf("must be non-negative")
	}
	return nil
}

// RunWizard runs an interactive configuration wizard and saves the result
// to path.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to opspanel! Let's point it at your API.")
	fmt.Println()

	cfg := DefaultConfig()

	// 1. Base URL.
	basePrompt := promptui.Prompt{
		Label:    "API base URL",
		Default:  cfg.BaseURL,
		Validate: validateBaseURL,
	}
	baseURL, err := basePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("base url: %w", err)
	}
	cfg.BaseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")

	// 2. Request timeout.
	timeoutPrompt := promptui.Prompt{
		Label:    "Request timeout",
		Default:  cfg.Timeout.String(),
		Validate: validateTimeout,
	}
	timeoutStr, err := timeoutPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("timeout: %w", err)
	}
	cfg.Timeout, _ = time.ParseDuration(strings.TrimSpace(timeoutStr))

	// 3. Log level.
	levelPrompt := promptui.Select{
		Label: "Select log level",
		Items: []string{string(LogWarn), string(LogInfo), string(LogDebug), string(LogError)},
	}
	_, level, err := levelPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	cfg.LogLevel = LogLevel(level)

	// 4. History.
	historyPrompt := promptui.Prompt{
		Label:     "Keep a local history of results",
		IsConfirm: true,
		Default:   "y",
	}
	if _, err := historyPrompt.Run(); err != nil {
		if err != promptui.ErrAbort {
			return nil, fmt.Errorf("history: %w", err)
		}
		cfg.NoHistory = true
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return cfg, nil
}
