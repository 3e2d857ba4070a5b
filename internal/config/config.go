// Package config provides YAML-based configuration loading for the fleet console.
package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the top-level console configuration, loaded from fleet.yaml.
type Config struct {
	Server   ServerConfig `yaml:"server"`
	Username string       `yaml:"username"`
	Stats    StatsConfig  `yaml:"stats"`
}

// ServerConfig holds connection settings for the remote fleet service.
type ServerConfig struct {
	BaseURL        string `yaml:"base_url"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

// StatsConfig controls the stats watch mode.
type StatsConfig struct {
	// RefreshCron is a standard 5-field cron expression controlling how
	// often `fleet stats --watch` re-fetches.
	RefreshCron string `yaml:"refresh_cron"`
}

// Load reads a YAML config file from path and returns a validated Config.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse unmarshals YAML bytes into a validated Config.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: parse: %w", err)
	}
	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// applyDefaults fills in derived and default values.
func (c *Config) applyDefaults() {
	if c.Server.TimeoutSeconds == 0 {
		c.Server.TimeoutSeconds = 15
	}
	if c.Stats.RefreshCron == "" {
		c.Stats.RefreshCron = "* * * * *"
	}
	c.Server.BaseURL = strings.TrimRight(c.Server.BaseURL, "/")
}

// validate checks that all required fields are present and consistent.
func (c *Config) validate() error {
	var errs []string
	if c.Server.BaseURL == "" {
		errs = append(errs, "server.base_url is required")
	} else {
		u, err := url.Parse(c.Server.BaseURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			errs = append(errs, fmt.Sprintf("server.base_url %q is not an absolute URL", c.Server.BaseURL))
		}
	}
	if c.Server.TimeoutSeconds < 0 {
		errs = append(errs, "server.timeout_seconds must not be negative")
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}
