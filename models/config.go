package models

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultBaseURL is the test feed the tool points at out of the box.
const DefaultBaseURL = "https://mapping-test.fra1.digitaloceanspaces.com"

// Config holds runtime configuration for a fetch run. Values come from the
// optional config.yaml, overridden by CLI flags.
type Config struct {
	BaseURL        string `yaml:"base_url"`
	WorkerCount    int    `yaml:"workers"`
	DelaySeconds   int    `yaml:"delay_seconds"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		BaseURL:        DefaultBaseURL,
		WorkerCount:    4,
		DelaySeconds:   300,
		TimeoutSeconds: 30,
	}
}

// LoadConfig reads path and merges it over the defaults. A missing file is
// not an error; a malformed one is.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.WorkerCount <= 0 {
		cfg.WorkerCount = 4
	}
	return cfg, nil
}
