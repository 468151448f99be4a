package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all runtime configuration for a resdash run. CLI flags are
// merged over values loaded from the YAML file.
type Config struct {
	// Listen is the HTTP listen address for the dashboard API.
	Listen string `yaml:"listen"`
	// File is the reservations export to load at startup. Defaults to a
	// reservations.csv next to the process, matching the export drop spot.
	File string `yaml:"file"`
	// TopN bounds the categorical pie charts; everything past it folds
	// into the "Other" slice.
	TopN int `yaml:"top_n"`
	// LogFormat is "text" or "json".
	LogFormat string `yaml:"log_format"`
	// DayFirst prefers D/M/Y over M/D/Y for ambiguous slash dates.
	DayFirst bool `yaml:"day_first"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Listen:    "127.0.0.1:8080",
		File:      "reservations.csv",
		TopN:      12,
		LogFormat: "text",
	}
}

// Normalize fills missing or zero values with defaults so partially-filled
// config files still behave.
func (c *Config) Normalize() {
	d := Default()
	if c.Listen == "" {
		c.Listen = d.Listen
	}
	if c.File == "" {
		c.File = d.File
	}
	if c.TopN == 0 {
		c.TopN = d.TopN
	}
	if c.LogFormat == "" {
		c.LogFormat = d.LogFormat
	}
}

// LoadFromFile reads a YAML config file and merges its values into Config,
// then validates the result.
func (c *Config) LoadFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	c.Normalize()
	return c.Validate()
}

// Validate checks field values and returns an error if the config is invalid.
func (c *Config) Validate() error {
	if c.TopN < 0 {
		return fmt.Errorf("top_n must be positive, got %d", c.TopN)
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("log_format must be \"text\" or \"json\", got %q", c.LogFormat)
	}
	return nil
}
