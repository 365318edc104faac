package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds batch-mode configuration.
type Config struct {
	Tickers   []string `yaml:"tickers"`
	Period    string   `yaml:"period"`
	Interval  string   `yaml:"interval"`
	Proxy     string   `yaml:"proxy"`
	CachePath string   `yaml:"cache_path"`
	Schedule  string   `yaml:"schedule"`
	OutputDir string   `yaml:"output_dir"`
}

// Load reads config from a YAML file, then applies environment variable
// overrides. A missing file is an error: batch mode needs the ticker list.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	// Environment variable overrides
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}
	if v := os.Getenv("CACHE_PATH"); v != "" {
		cfg.CachePath = v
	}
	if v := os.Getenv("WATCH_CRON"); v != "" {
		cfg.Schedule = v
	}

	// Defaults
	if cfg.Period == "" {
		cfg.Period = "6mo"
	}
	if cfg.Interval == "" {
		cfg.Interval = "1d"
	}

	return cfg, nil
}

// Validate checks that all required fields are set.
func (c *Config) Validate() error {
	if len(c.Tickers) == 0 {
		return fmt.Errorf("tickers list is required and must not be empty")
	}
	for _, t := range c.Tickers {
		if t == "" {
			return fmt.Errorf("tickers list contains an empty symbol")
		}
	}
	return nil
}
