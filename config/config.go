// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Config holds one checker run's parameters.
type Config struct {
	Size           int     `toml:"size"`            // N of every N×N matrix
	Scalar         float64 `toml:"scalar"`          // B = Scalar·A
	Workers        int     `toml:"workers"`         // parallel workers, >= 1
	FaultInjection bool    `toml:"fault_injection"` // corrupt even pairs on purpose
	Seed           int64   `toml:"seed"`            // 0 picks a time-based seed
	Verbose        bool    `toml:"verbose"`         // log pipeline progress to stderr
}

// Default returns the baseline configuration every source overrides.
func Default() Config {
	return Config{
		Size:    4,
		Scalar:  2,
		Workers: 1,
	}
}

// Load reads a TOML file on top of Default. Keys absent from the file keep
// their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file '%s': %w", path, err)
	}

	cfg := Default()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse TOML: %w", err)
	}

	return &cfg, nil
}

// Validate enforces size >= 1 and workers >= 1.
func (c *Config) Validate() error {
	if c.Size < 1 {
		return fmt.Errorf("size %d: %w", c.Size, ErrInvalidConfig)
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers %d: %w", c.Workers, ErrInvalidConfig)
	}

	return nil
}
