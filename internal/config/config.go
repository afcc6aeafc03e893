// Package config loads service configuration from the process environment
// plus an optional YAML defaults document. The defaults document carries the
// externally supplied default filter and the agent-platform metadata, which
// this code passes through without interpreting.
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/cx-tal-miterani/flight-data-api/internal/query"
)

// Config is the resolved configuration for one service process.
type Config struct {
	Port        string
	DatabaseURL string
	Defaults    query.Defaults
	Metadata    map[string]any
}

type defaultsFile struct {
	DefaultFilter struct {
		MinSeats *int `yaml:"min_seats"`
		Limit    int  `yaml:"limit"`
	} `yaml:"default_filter"`
	Metadata map[string]any `yaml:"metadata"`
}

// Load resolves configuration from the environment. A .env file is honored
// when present. DATABASE_URL is required; API_PORT falls back to
// defaultPort; DEFAULTS_FILE optionally names the YAML defaults document.
func Load(defaultPort string) (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:        os.Getenv("API_PORT"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
	}
	if cfg.Port == "" {
		cfg.Port = defaultPort
	}
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}

	if path := os.Getenv("DEFAULTS_FILE"); path != "" {
		if err := cfg.loadDefaults(path); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

func (c *Config) loadDefaults(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read defaults file: %w", err)
	}

	var f defaultsFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return fmt.Errorf("failed to unmarshal defaults file: %w", err)
	}

	if f.DefaultFilter.MinSeats != nil && *f.DefaultFilter.MinSeats < 0 {
		return fmt.Errorf("default_filter.min_seats must be non-negative")
	}
	if f.DefaultFilter.Limit < 0 {
		return fmt.Errorf("default_filter.limit must be non-negative")
	}

	c.Defaults = query.Defaults{
		MinSeats: f.DefaultFilter.MinSeats,
		Limit:    f.DefaultFilter.Limit,
	}
	c.Metadata = f.Metadata
	return nil
}
