package config

import (
	"slices"

	"github.com/kbukum/pipekit/errors"
)

var environments = []string{"development", "staging", "production"}

// BaseConfig contains the identity fields every command needs.
type BaseConfig struct {
	Name        string `yaml:"name" mapstructure:"name"`
	Environment string `yaml:"environment" mapstructure:"environment"`
	Version     string `yaml:"version" mapstructure:"version"`
	Debug       bool   `yaml:"debug" mapstructure:"debug"`
}

// ApplyDefaults applies default values to base configuration.
func (c *BaseConfig) ApplyDefaults() {
	if c.Environment == "" {
		c.Environment = "development"
	}
	if c.Environment == "development" {
		c.Debug = true
	}
}

// Validate validates base configuration.
func (c *BaseConfig) Validate() error {
	if c.Name == "" {
		return errors.MissingField("name")
	}
	if !slices.Contains(environments, c.Environment) {
		return errors.InvalidConfig("base",
			"environment must be one of [development, staging, production] (got: "+c.Environment+")")
	}
	return nil
}
