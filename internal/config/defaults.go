package config

import "time"

// DefaultConfigFile is where init writes and the CLI reads by default.
const DefaultConfigFile = ".opspanel.yml"

// DefaultEndpoints maps each logical endpoint to its path on the API.
var DefaultEndpoints = map[string]string{
	EndpointHealth:  "/health",
	EndpointItems:   "/items",
	EndpointUser:    "/api/user",
	EndpointUsers:   "/api/users",
	EndpointSet:     "/api/set",
	EndpointFunc1:   "/api/func1",
	EndpointFunc2:   "/api/func2",
	EndpointMetrics: "/metrics",
}

// EndpointOrder is the display order for link listings.
var EndpointOrder = []string{
	EndpointHealth,
	EndpointItems,
	EndpointUser,
	EndpointUsers,
	EndpointSet,
	EndpointFunc1,
	EndpointFunc2,
	EndpointMetrics,
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	endpoints := make(map[string]string, len(DefaultEndpoints))
	for name, path := range DefaultEndpoints {
		endpoints[name] = path
	}
	return &Config{
		BaseURL:     "http://localhost:8080",
		Endpoints:   endpoints,
		Timeout:     30 * time.Second,
		UserAgent:   "opspanel",
		LogLevel:    LogWarn,
		HistoryPath: ".opspanel/history.db",
	}
}
