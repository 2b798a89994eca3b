// Package config loads the CLI configuration from a YAML file.
package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Source   SourceConfig `yaml:"source"`
	LogLevel string       `yaml:"log_level" validate:"omitempty,oneof=debug info warn error"`
}

// Where the four CSV extracts live. Exactly one of BaseURL or Dir must
// be set.
type SourceConfig struct {
	BaseURL        string `yaml:"base_url" validate:"omitempty,url"`
	Dir            string `yaml:"dir" validate:"omitempty,dir"`
	TimeoutSeconds int    `yaml:"timeout_seconds" validate:"gte=0"`
}

// Load reads and validates a config file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	v := validator.New()
	if err := v.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	if (cfg.Source.BaseURL == "") == (cfg.Source.Dir == "") {
		return nil, fmt.Errorf("config must set exactly one of source.base_url and source.dir")
	}

	return &cfg, nil
}
