package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/menta2k/sprite-packer/pkg/packer"
)

// Config holds the application configuration
type Config struct {
	Source SourceConfig `json:"source"`
	Packer PackerConfig `json:"packer"`
	Output OutputConfig `json:"output"`
}

// SourceConfig holds configuration for image discovery and decoding
type SourceConfig struct {
	InputDir string `json:"input_dir"`
	Workers  int    `json:"workers"`
}

// PackerConfig holds configuration for the shelf packer
type PackerConfig struct {
	MaxWidth       int    `json:"max_width"`
	MaxHeight      int    `json:"max_height"`
	TargetWidth    int    `json:"target_width"`
	TargetHeight   int    `json:"target_height"`
	OversizePolicy string `json:"oversize_policy"`
}

// OutputConfig holds configuration for sheet output
type OutputConfig struct {
	OutputDir   string `json:"output_dir"`
	Format      string `json:"format"`
	Quality     int    `json:"quality"`
	Lossless    bool   `json:"lossless"`
	WriteFrames bool   `json:"write_frames"`
}

// Default returns a configuration with default values
func Default() *Config {
	return &Config{
		Source: SourceConfig{
			InputDir: "",
			Workers:  1,
		},
		Packer: PackerConfig{
			MaxWidth:       2048,
			MaxHeight:      2048,
			OversizePolicy: "abort",
		},
		Output: OutputConfig{
			OutputDir: "./sheets",
			Format:    "png",
			Quality:   90,
		},
	}
}

// Policy maps the configured policy string to the packer's policy type
func (p *PackerConfig) Policy() packer.OversizePolicy {
	if p.OversizePolicy == "skip" {
		return packer.OversizeSkip
	}
	return packer.OversizeAbort
}

// LoadFromFile loads configuration from a JSON file
func LoadFromFile(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &config, nil
}

// SaveToFile saves configuration to a JSON file
func (c *Config) SaveToFile(filename string) error {
	// Create directory if it doesn't exist
	dir := filepath.Dir(filename)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Packer.MaxWidth < 1 || c.Packer.MaxHeight < 1 {
		return fmt.Errorf("packer.max_width and packer.max_height must be positive")
	}

	if c.Packer.TargetWidth < 0 || c.Packer.TargetHeight < 0 {
		return fmt.Errorf("packer.target_width and packer.target_height cannot be negative")
	}

	switch c.Packer.OversizePolicy {
	case "abort", "skip":
	default:
		return fmt.Errorf("packer.oversize_policy must be \"abort\" or \"skip\"")
	}

	if c.Source.Workers < 0 {
		return fmt.Errorf("source.workers cannot be negative")
	}

	switch c.Output.Format {
	case "png", "webp", "jpg", "jpeg":
	default:
		return fmt.Errorf("output.format must be png, webp, jpg or jpeg")
	}

	if c.Output.Quality < 1 || c.Output.Quality > 100 {
		return fmt.Errorf("output.quality must be between 1 and 100")
	}

	return nil
}

// GetConfigPath returns the default configuration file path
func GetConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "./config.json"
	}
	return filepath.Join(home, ".config", "sprite-packer", "config.json")
}
