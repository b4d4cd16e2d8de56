package scorer

import (
	"os"
	"strconv"
)

// Config holds all configuration for the scoring service client.
type Config struct {
	Endpoint string
	// TimeoutMs bounds a single request when > 0. Zero leaves the
	// transport default in place.
	TimeoutMs int
	LogCalls  bool
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Endpoint:  "http://localhost:5000/calculate_gpa",
		TimeoutMs: 0,
		LogCalls:  false,
	}
}

// LoadConfig reads scorer configuration from environment variables,
// falling back to defaults for any unset values.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("TERMTRACKER_SCORER_ENDPOINT"); v != "" {
		cfg.Endpoint = v
	}
	if v := os.Getenv("TERMTRACKER_SCORER_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.TimeoutMs = n
		}
	}
	if v := os.Getenv("TERMTRACKER_LOG_CALLS"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}

	return cfg
}
