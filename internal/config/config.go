// SPDX-License-Identifier: EPL-2.0

package config

import (
	"fmt"
	"os"

	"github.com/ik5/audpost/audio"
	"github.com/ik5/audpost/cancellation"
	"github.com/ik5/audpost/syncer"
	"gopkg.in/yaml.v3"
)

// Config represents the complete command line configuration
type Config struct {
	Cancel  CancelConfig  `yaml:"cancel"`
	Sync    SyncConfig    `yaml:"sync"`
	Logging LoggingConfig `yaml:"logging"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// CancelConfig contains noise cancellation parameters
type CancelConfig struct {
	Ratio       float64 `yaml:"ratio"`
	ChunkSize   int     `yaml:"chunk_size"`   // frames
	InvertWidth int     `yaml:"invert_width"` // bytes
	Strict      bool    `yaml:"strict"`

	// Zero inherits the value of the main recording.
	OutputRate  int `yaml:"output_rate"`
	Channels    int `yaml:"channels"`
	SampleWidth int `yaml:"sample_width"` // bytes
}

// SyncConfig contains lag estimation parameters
type SyncConfig struct {
	ChunkSize int `yaml:"chunk_size"` // frames
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// MetricsConfig contains the metrics export configuration
type MetricsConfig struct {
	// Textfile is written after every run when set.
	Textfile string `yaml:"textfile"`
}

// Default returns the configuration used when no file is given
func Default() *Config {
	return &Config{
		Cancel: CancelConfig{
			Ratio:       cancellation.DefaultRatio,
			ChunkSize:   cancellation.DefaultChunkSize,
			InvertWidth: cancellation.DefaultInvertWidth,
		},
		Sync: SyncConfig{
			ChunkSize: syncer.DefaultChunkSize,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads and parses the configuration file. Keys missing from the file
// keep their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	config := Default()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return config, nil
}

// Validate performs validation of every section
func (c *Config) Validate() error {
	if err := c.Cancel.Validate(); err != nil {
		return fmt.Errorf("cancel config: %w", err)
	}

	if err := c.Sync.Validate(); err != nil {
		return fmt.Errorf("sync config: %w", err)
	}

	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("logging config: %w", err)
	}

	return nil
}

// Validate validates noise cancellation configuration
func (c *CancelConfig) Validate() error {
	if c.Ratio < 0 || c.Ratio > 2 {
		return fmt.Errorf("ratio must be between 0 and 2, got %v: %w", c.Ratio, cancellation.ErrInvalidRatio)
	}

	if c.ChunkSize < 1 {
		return fmt.Errorf("chunk_size must be at least 1 frame, got %d", c.ChunkSize)
	}

	if !audio.ValidSampleWidth(c.InvertWidth) {
		return fmt.Errorf("invert_width must be 1, 2 or 4 bytes, got %d", c.InvertWidth)
	}

	if c.SampleWidth != 0 && !audio.ValidSampleWidth(c.SampleWidth) {
		return fmt.Errorf("sample_width must be 0, 1, 2 or 4 bytes, got %d", c.SampleWidth)
	}

	if c.OutputRate < 0 {
		return fmt.Errorf("output_rate cannot be negative, got %d", c.OutputRate)
	}

	if c.Channels < 0 {
		return fmt.Errorf("channels cannot be negative, got %d", c.Channels)
	}

	return nil
}

// Validate validates lag estimation configuration
func (s *SyncConfig) Validate() error {
	if s.ChunkSize < 1 {
		return fmt.Errorf("chunk_size must be at least 1 frame, got %d", s.ChunkSize)
	}

	return nil
}

// Validate validates logging configuration
func (l *LoggingConfig) Validate() error {
	validLevels := map[string]bool{
		"debug": true, "info": true, "warn": true, "error": true,
	}
	if !validLevels[l.Level] {
		return fmt.Errorf("level must be one of [debug, info, warn, error], got '%s'", l.Level)
	}

	validFormats := map[string]bool{"json": true, "text": true}
	if !validFormats[l.Format] {
		return fmt.Errorf("format must be 'json' or 'text', got '%s'", l.Format)
	}

	return nil
}

// Options converts the section into canceller options
func (c *CancelConfig) Options() []cancellation.Option {
	opts := []cancellation.Option{
		cancellation.WithRatio(c.Ratio),
		cancellation.WithChunkSize(c.ChunkSize),
		cancellation.WithInvertWidth(c.InvertWidth),
		cancellation.WithOutput(c.OutputRate, c.Channels, c.SampleWidth),
	}
	if c.Strict {
		opts = append(opts, cancellation.WithCompatibilityCheck())
	}

	return opts
}
