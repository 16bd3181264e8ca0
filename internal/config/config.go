// SPDX-License-Identifier: MIT

// Package config loads the cubepers CLI configuration.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

var (
	// ErrThreshold indicates a negative or non-finite threshold.
	ErrThreshold = errors.New("config: threshold must be finite and non-negative")
	// ErrLogLevel indicates an unknown log level.
	ErrLogLevel = errors.New("config: unknown log level")
	// ErrLogFormat indicates an unknown log format.
	ErrLogFormat = errors.New("config: unknown log format")
)

// Config holds all run settings.
type Config struct {
	Threshold    float64       `yaml:"threshold"`
	Certificates bool          `yaml:"certificates"`
	OrderCheck   bool          `yaml:"order_check"`
	Outputs      OutputsConfig `yaml:"outputs"`
	Log          LogConfig     `yaml:"log"`
}

// OutputsConfig selects the result files written next to the input.
type OutputsConfig struct {
	Binary bool `yaml:"binary"`
	Text   bool `yaml:"text"`
	CSV    bool `yaml:"csv"`
}

// LogConfig configures the logger.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Load reads the embedded defaults and overlays the file at path, if any.
// Only keys present in the file are overwritten.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if c.Threshold < 0 || math.IsNaN(c.Threshold) || math.IsInf(c.Threshold, 0) {
		return fmt.Errorf("%w: %v", ErrThreshold, c.Threshold)
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: %q", ErrLogLevel, c.Log.Level)
	}
	switch c.Log.Format {
	case "json", "console":
	default:
		return fmt.Errorf("%w: %q", ErrLogFormat, c.Log.Format)
	}
	return nil
}

// Encode writes the configuration as YAML to w.
func (c *Config) Encode(w io.Writer) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	_, err = w.Write(data)
	return err
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
