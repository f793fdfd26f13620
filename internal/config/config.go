package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Batch struct {
		MaxFiles  int    `yaml:"max_files"`
		InputDir  string `yaml:"input_dir"`
		OutputDir string `yaml:"output_dir"`
	} `yaml:"batch"`
	Schedule struct {
		Cron string `yaml:"cron"`
	} `yaml:"schedule"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
// A missing file is not an error: flags or env can supply everything.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("PREDICTOR_INPUT_DIR"); v != "" {
		cfg.Batch.InputDir = v
	}
	if v := os.Getenv("PREDICTOR_OUTPUT_DIR"); v != "" {
		cfg.Batch.OutputDir = v
	}
	if v := os.Getenv("PREDICTOR_MAX_FILES"); v != "" {
		var n int
		if _, err := fmt.Sscanf(v, "%d", &n); err == nil {
			cfg.Batch.MaxFiles = n
		}
	}
	if v := os.Getenv("PREDICTOR_CRON"); v != "" {
		cfg.Schedule.Cron = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}

	return cfg, nil
}

// Validate checks that all required fields are set.
func (c *Config) Validate() error {
	if c.Batch.MaxFiles <= 0 {
		return fmt.Errorf("batch.max_files must be positive")
	}
	if c.Batch.InputDir == "" {
		return fmt.Errorf("batch.input_dir is required")
	}
	if c.Batch.OutputDir == "" {
		return fmt.Errorf("batch.output_dir is required")
	}
	return nil
}
