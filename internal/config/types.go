package config

import "time"

// Logical endpoint names. Paths are looked up through Config.Endpoints.
const (
	EndpointHealth  = "health"
	EndpointItems   = "items"
	EndpointUser    = "user"
	EndpointUsers   = "users"
	EndpointSet     = "set"
	EndpointFunc1   = "func1"
	EndpointFunc2   = "func2"
	EndpointMetrics = "metrics"
)

// LogLevel is the minimum level written by the CLI logger.
type LogLevel string

const (
	LogDebug LogLevel = "debug"
	LogInfo  LogLevel = "info"
	LogWarn  LogLevel = "warn"
	LogError LogLevel = "error"
)

// Config is the top-level opspanel configuration, corresponding to .opspanel.yml.
type Config struct {
	BaseURL     string            `yaml:"base_url" koanf:"base_url"`
	Endpoints   map[string]string `yaml:"endpoints" koanf:"endpoints"`
	Timeout     time.Duration     `yaml:"timeout" koanf:"timeout"`
	UserAgent   string            `yaml:"user_agent" koanf:"user_agent"`
	LogLevel    LogLevel          `yaml:"log_level" koanf:"log_level"`
	HistoryPath string            `yaml:"history_path" koanf:"history_path"`
	NoHistory   bool              `yaml:"no_history" koanf:"no_history"`
}
