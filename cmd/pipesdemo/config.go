package main

import (
	"github.com/kbukum/pipekit/config"
	"github.com/kbukum/pipekit/validation"
)

// DemoConfig configures the example runs.
type DemoConfig struct {
	config.ServiceConfig `yaml:",inline" mapstructure:",squash"`

	// Example selects what to run: all, pipe, splitter, pipeline or flow.
	Example   string          `yaml:"example" mapstructure:"example" validate:"oneof=all pipe splitter pipeline flow"`
	Collatz   CollatzConfig   `yaml:"collatz" mapstructure:"collatz"`
	Quadratic QuadraticConfig `yaml:"quadratic" mapstructure:"quadratic"`
	Caesar    CaesarConfig    `yaml:"caesar" mapstructure:"caesar"`
	Scores    [][]float64     `yaml:"scores" mapstructure:"scores" validate:"dive,min=1"`
}

// CollatzConfig drives the pipe example: Steps Collatz steps applied to Start.
type CollatzConfig struct {
	Start int `yaml:"start" mapstructure:"start" validate:"min=1"`
	Steps int `yaml:"steps" mapstructure:"steps" validate:"min=1"`
}

// QuadraticConfig holds the coefficients of a*x^2 + b*x + c = 0.
type QuadraticConfig struct {
	A float64 `yaml:"a" mapstructure:"a"`
	B float64 `yaml:"b" mapstructure:"b"`
	C float64 `yaml:"c" mapstructure:"c"`
}

// CaesarConfig drives the pipeline example.
type CaesarConfig struct {
	Text string `yaml:"text" mapstructure:"text" validate:"required"`
	Key  int    `yaml:"key" mapstructure:"key"`
}

var defaultScores = [][]float64{
	{85, 92, 78, 96, 88},
	{75, 68, 82, 91, 79},
	{95, 85, 93, 87, 91},
	{62, 74, 69, 83, 76},
	{88, 85, 79, 92, 86},
}

// ApplyDefaults fills what flags and files left empty.
func (c *DemoConfig) ApplyDefaults() {
	if c.Name == "" {
		c.Name = serviceName
	}
	c.ServiceConfig.ApplyDefaults()
	if c.Example == "" {
		c.Example = "all"
	}
	if len(c.Scores) == 0 {
		c.Scores = defaultScores
	}
}

// Validate checks the shared sections and the example settings.
func (c *DemoConfig) Validate() error {
	if err := c.ServiceConfig.Validate(); err != nil {
		return err
	}
	if err := validation.Validate(c); err != nil {
		return err
	}
	return validation.New().
		Custom(c.Quadratic.A != 0, "quadratic.a", "must not be zero").
		Range("caesar.key", c.Caesar.Key, -25, 25).
		Validate()
}
