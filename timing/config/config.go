// Package config holds the simulation harness configuration.
package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// Config controls how a vector run is driven.
type Config struct {
	// FreqMHz is the clock frequency used by the Akita-driven run.
	// Default: 1000 MHz.
	FreqMHz uint64 `json:"freq_mhz"`

	// Clocked runs vectors through the Akita event engine instead of a
	// plain loop. Both produce identical outputs. Default: false.
	Clocked bool `json:"clocked"`

	// StopOnMismatch aborts a run at the first output mismatch.
	// Default: false.
	StopOnMismatch bool `json:"stop_on_mismatch"`

	// LogLevel is one of "debug", "info", "warn", "error".
	// Default: "info".
	LogLevel string `json:"log_level"`
}

var validLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		FreqMHz:        1000,
		Clocked:        false,
		StopOnMismatch: false,
		LogLevel:       "info",
	}
}

// LoadConfig reads a Config from a JSON file. Missing keys keep their
// defaults; unknown keys are an error so a misspelt option is not silently
// ignored.
func LoadConfig(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open %s: %w", path, err)
	}
	defer f.Close()

	dec := json.NewDecoder(f)
	dec.DisallowUnknownFields()

	c := DefaultConfig()
	if err := dec.Decode(c); err != nil {
		return nil, fmt.Errorf("cannot decode %s: %w", path, err)
	}

	return c, nil
}

// SaveConfig stores c as indented JSON at path.
func (c *Config) SaveConfig(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot create %s: %w", path, err)
	}

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(c); err != nil {
		_ = f.Close()
		return fmt.Errorf("cannot encode %s: %w", path, err)
	}

	return f.Close()
}

// Validate checks that all values are usable.
func (c *Config) Validate() error {
	if c.FreqMHz == 0 {
		return fmt.Errorf("freq_mhz must be > 0")
	}
	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("log_level %q is not one of debug, info, warn, error", c.LogLevel)
	}
	return nil
}

// Clone returns a copy of the Config.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}
