// Package config holds the knobs of an interpreter run.
package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/pdk/whilst/fault"
)

// DefaultMaxIterations caps how many times a while body may run.
const DefaultMaxIterations = 1000

// Config controls an interpreter run. Keys missing from a YAML file keep
// their defaults.
type Config struct {
	MaxIterations int  `yaml:"max_iterations"`
	Verbose       bool `yaml:"verbose"`
	Color         bool `yaml:"color"`
}

// Default returns the settings used when nothing is configured.
func Default() Config {
	return Config{
		MaxIterations: DefaultMaxIterations,
		Color:         true,
	}
}

// Load reads a YAML config file on top of the defaults.
func Load(path string) (Config, error) {

	cfg := Default()

	content, err := os.ReadFile(path)
	if err != nil {
		return cfg, fault.IOf("cannot read config %s: %s", path, err)
	}

	return cfg, Parse(content, &cfg)
}

// Parse decodes YAML into cfg and validates the result.
func Parse(content []byte, cfg *Config) error {

	if err := yaml.Unmarshal(content, cfg); err != nil {
		return fault.IOf("bad config: %s", err)
	}

	return cfg.Validate()
}

// Validate checks that the settings make sense.
func (c Config) Validate() error {
	if c.MaxIterations <= 0 {
		return fault.IOf("max_iterations must be positive, got %d", c.MaxIterations)
	}
	return nil
}
