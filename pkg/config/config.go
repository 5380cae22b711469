package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Environment string `yaml:"environment" default:"dev" validate:"required"`
	Logging     struct {
		Level  string `yaml:"level" default:"info" validate:"oneof=debug info warn error fatal panic"`
		Format string `yaml:"format" default:"console" validate:"oneof=console json"`
		Output string `yaml:"output" default:"stdout"`
	} `yaml:"logging"`
	Analytics struct {
		HorizonDays int   `yaml:"horizon_days" default:"7" validate:"gte=1"`
		Workers     int   `yaml:"workers" default:"4" validate:"gte=1"`
		Seed        int64 `yaml:"seed"` // 0 = time-seeded price factor draws
	} `yaml:"analytics"`
	Input struct {
		Path string `yaml:"path"` // .xlsx workbook or .csv sales export
	} `yaml:"input"`
	Report struct {
		Path string `yaml:"path"` // empty writes to stdout
	} `yaml:"report"`
}

var validate = validator.New()

// Load reads and parses a YAML configuration file, fills defaults, and
// validates the result.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := defaults.Set(&c); err != nil {
		return nil, fmt.Errorf("apply defaults: %w", err)
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &c, nil
}

// Default returns a configuration with only defaults applied, for runs
// without a config file.
func Default() (*Config, error) {
	var c Config
	if err := defaults.Set(&c); err != nil {
		return nil, fmt.Errorf("apply defaults: %w", err)
	}
	return &c, nil
}

// LoadWithEnv loads config from YAML and overrides with environment variables.
func LoadWithEnv(path string) (*Config, error) {
	c, err := Load(path)
	if err != nil {
		return nil, err
	}

	if v := os.Getenv("STOCKPULSE_INPUT"); v != "" {
		c.Input.Path = v
	}
	if v := os.Getenv("STOCKPULSE_REPORT"); v != "" {
		c.Report.Path = v
	}
	if v := os.Getenv("STOCKPULSE_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("STOCKPULSE_SEED"); v != "" {
		if seed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Analytics.Seed = seed
		}
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return c, nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	return validate.Struct(c)
}
