package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Defaults fixed by the tools; output quality and lossless mode are not
// user-tunable policy, they are pinned here in one place.
const (
	DefaultModelPath = "u2net.onnx"
	DefaultQuality   = 95
)

// ModelPathEnv overrides the default model path when set
const ModelPathEnv = "PRODUCT_BG_MODEL"

// Config holds the application configuration
type Config struct {
	Model  ModelConfig  `json:"model"`
	Output OutputConfig `json:"output"`
}

// ModelConfig holds configuration for the segmentation model
type ModelConfig struct {
	// Path to the U²-Net ONNX model file
	Path string `json:"path"`
}

// OutputConfig holds configuration for WebP output generation
type OutputConfig struct {
	Quality  int  `json:"quality"`
	Lossless bool `json:"lossless"`
}

// Default returns a configuration with default values
func Default() *Config {
	modelPath := os.Getenv(ModelPathEnv)
	if modelPath == "" {
		modelPath = DefaultModelPath
	}

	return &Config{
		Model: ModelConfig{
			Path: modelPath,
		},
		Output: OutputConfig{
			Quality:  DefaultQuality,
			Lossless: false,
		},
	}
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

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Model.Path == "" {
		return fmt.Errorf("model.path cannot be empty")
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
	return filepath.Join(home, ".config", "product-bg", "config.json")
}
