package config

import (
	"fmt"

	"github.com/kbukum/apistate/logger"
	"github.com/kbukum/apistate/persist"
	"github.com/kbukum/apistate/storage"
)

// Config contains the configuration an application wires apistate with.
// Projects extend it by embedding it in their own config structs.
//
// Example:
//
//	type AppConfig struct {
//	    config.Config `yaml:",inline" mapstructure:",squash"`
//	    Upstream      string `yaml:"upstream" mapstructure:"upstream"`
//	}
type Config struct {
	Name        string         `yaml:"name" mapstructure:"name" validate:"required"`
	Environment string         `yaml:"environment" mapstructure:"environment" validate:"omitempty,oneof=development staging production"`
	Debug       bool           `yaml:"debug" mapstructure:"debug"`
	Logging     logger.Config  `yaml:"logging" mapstructure:"logging"`
	Storage     storage.Config `yaml:"storage" mapstructure:"storage"`
	Persist     persist.Config `yaml:"persist" mapstructure:"persist"`
}

// ApplyDefaults applies default values to the configuration.
func (c *Config) ApplyDefaults() {
	if c.Environment == "" {
		c.Environment = "development"
	}
	if c.Environment == "development" {
		c.Debug = true
	}
	c.Logging.ApplyDefaults()
	c.Storage.ApplyDefaults()
	c.Persist.ApplyDefaults()
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("config.name is required")
	}
	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("config.logging: %w", err)
	}
	if err := c.Storage.Validate(); err != nil {
		return fmt.Errorf("config.storage: %w", err)
	}
	if err := c.Persist.Validate(); err != nil {
		return fmt.Errorf("config.persist: %w", err)
	}
	return nil
}
