// Package config provides configuration loading and management for
// lifgallery. It handles loading configuration from YAML files and
// provides default values.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration loaded from YAML
type Config struct {
	// View parameters applied to displayed rasters
	View struct {
		// Brightness is the linear gain applied to R, G and B (1.0 = unchanged)
		Brightness float64 `yaml:"brightness"`

		// Contrast is the offset added after the gain (0 = unchanged)
		Contrast float64 `yaml:"contrast"`
	} `yaml:"view"`

	// Zoom bounds for viewport transforms
	Zoom struct {
		// Min is the smallest allowed zoom factor
		Min float64 `yaml:"min"`

		// Max is the largest allowed zoom factor
		Max float64 `yaml:"max"`
	} `yaml:"zoom"`

	// Hierarchy parameters for tree construction
	Hierarchy struct {
		// SynthesizeProjectionSlices appends a projection slice to every
		// multi-slice channel when building the tree
		SynthesizeProjectionSlices bool `yaml:"synthesizeProjectionSlices"`
	} `yaml:"hierarchy"`

	// Processing parameters
	Processing struct {
		// NumCores specifies how many CPU cores to use for pixel loops
		NumCores int `yaml:"numCores"`
	} `yaml:"processing"`
}

// DefaultConfig returns a configuration with default values
func DefaultConfig() *Config {
	cfg := &Config{}

	// Set default view parameters (identity tone)
	cfg.View.Brightness = 1.0
	cfg.View.Contrast = 0.0

	// Set default zoom bounds
	cfg.Zoom.Min = 0.1
	cfg.Zoom.Max = 10.0

	// Set default hierarchy parameters
	cfg.Hierarchy.SynthesizeProjectionSlices = false

	// Set default processing parameters
	cfg.Processing.NumCores = runtime.NumCPU() // Use all available cores by default

	return cfg
}

// LoadConfig loads configuration from a YAML file
// If the file doesn't exist, it returns the default configuration
func LoadConfig(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	// Check if config file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return cfg, nil
	}

	// Read config file
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	// Parse YAML
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	return cfg, nil
}

// SaveConfig saves the configuration to a YAML file
func SaveConfig(cfg *Config, configPath string) error {
	// Create directory if it doesn't exist
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	// Marshal config to YAML
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("error marshaling config: %w", err)
	}

	// Write to file
	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("error writing config file: %w", err)
	}

	return nil
}

// CreateDefaultConfigFile creates a default configuration file at the specified path
func CreateDefaultConfigFile(configPath string) error {
	cfg := DefaultConfig()
	return SaveConfig(cfg, configPath)
}
