package main

import (
	"encoding/json"
	"fmt"
	"os"
)

// Config holds taskboard startup parameters.
type Config struct {
	// Seed lists task titles added to the board before the UI starts.
	Seed []string `json:"seed,omitempty"`

	// LogLevel is the minimum level written to the log file:
	// "debug", "info", "warn", or "error".
	LogLevel string `json:"log_level,omitempty"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		LogLevel: "info",
	}
}

// Merge applies non-zero values from source into c.
func (c *Config) Merge(source *Config) {
	if len(source.Seed) > 0 {
		c.Seed = source.Seed
	}
	if source.LogLevel != "" {
		c.LogLevel = source.LogLevel
	}
}

// LoadConfig reads a JSON config file, merges it with defaults, and returns
// the resulting Config.
func LoadConfig(filename string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var loaded Config
	if err := json.Unmarshal(data, &loaded); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.Merge(&loaded)
	return &cfg, nil
}
