// Package config provides loading and parsing of console configuration
// files. Configuration covers the policy values of the findings engines:
// listing page size and the SLA approaching-warning window.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Defaults applied when a field is omitted from the configuration file.
const (
	// DefaultPageSize is the findings listing page size.
	DefaultPageSize = 10

	// DefaultApproachingWindowDays is how many days before the due date
	// the sla-approaching event fires.
	DefaultApproachingWindowDays = 3
)

// Config represents a console configuration file.
type Config struct {
	// PageSize is the findings listing page size.
	PageSize int `yaml:"page_size,omitempty"`

	// ApproachingWindowDays is the SLA warning window in days.
	ApproachingWindowDays int `yaml:"approaching_window_days,omitempty"`
}

// Default returns a configuration with every field at its default value.
func Default() Config {
	return Config{
		PageSize:              DefaultPageSize,
		ApproachingWindowDays: DefaultApproachingWindowDays,
	}
}

// Load reads and parses a configuration file, applying defaults for
// omitted fields and validating the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return &cfg, nil
}

// applyDefaults fills omitted fields with their default values.
func (c *Config) applyDefaults() {
	if c.PageSize == 0 {
		c.PageSize = DefaultPageSize
	}
	if c.ApproachingWindowDays == 0 {
		c.ApproachingWindowDays = DefaultApproachingWindowDays
	}
}

// Validate checks that the configuration values are usable.
func (c *Config) Validate() error {
	if c.PageSize < 1 {
		return fmt.Errorf("page_size must be positive, got %d", c.PageSize)
	}
	if c.ApproachingWindowDays < 1 {
		return fmt.Errorf("approaching_window_days must be positive, got %d", c.ApproachingWindowDays)
	}
	return nil
}
