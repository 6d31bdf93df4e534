// Package config loads the demo server configuration.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	// ConfigFileName is the default configuration file name.
	ConfigFileName = "reactview.yaml"

	// DefaultAddr is the default listen address for the demo server.
	DefaultAddr = "localhost:3000"
)

// Config is the demo server configuration.
type Config struct {
	// Addr is the HTTP listen address.
	Addr string `yaml:"addr,omitempty"`

	// StaticRendering disables update delivery for mounted instances;
	// invalidations are logged instead.
	StaticRendering bool `yaml:"static_rendering,omitempty"`

	// Metrics toggles the Prometheus /metrics endpoint.
	Metrics bool `yaml:"metrics,omitempty"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level,omitempty"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Addr:     DefaultAddr,
		Metrics:  true,
		LogLevel: "info",
	}
}

// Load reads the configuration from path, falling back to defaults when the
// file does not exist. Environment variable REACTVIEW_ADDR overrides the
// listen address either way.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// Defaults apply.
	case err != nil:
		return nil, fmt.Errorf("read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if addr := os.Getenv("REACTVIEW_ADDR"); addr != "" {
		cfg.Addr = addr
	}
	if cfg.Addr == "" {
		cfg.Addr = DefaultAddr
	}
	return cfg, nil
}
