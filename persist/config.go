package persist

import "errors"

// DefaultNamespace is the storage key snapshots are written under.
const DefaultNamespace = "apistate"

// Config holds persistence configuration.
type Config struct {
	// Namespace is the storage key the snapshot is written under.
	Namespace string `mapstructure:"namespace" yaml:"namespace"`
}

// ApplyDefaults fills in zero-valued fields with sensible defaults.
func (c *Config) ApplyDefaults() {
	if c.Namespace == "" {
		c.Namespace = DefaultNamespace
	}
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	if c.Namespace == "" {
		return errors.New("persist: namespace is required")
	}
	return nil
}
