package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix for environment variable overrides, so
// APISTATE_LOGGING_LEVEL overrides logging.level.
const EnvPrefix = "APISTATE"

// Defaulter is implemented by configs that fill in their own defaults.
type Defaulter interface {
	ApplyDefaults()
}

// Validator is implemented by configs that validate themselves beyond
// struct tags.
type Validator interface {
	Validate() error
}

// Load reads configuration from the given YAML file into T, applying .env
// files, environment overrides, defaults, and validation. An empty path
// skips file loading and uses environment variables and defaults only.
func Load[T any](path string) (*T, error) {
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(".env"); err != nil {
			return nil, fmt.Errorf("config: load .env: %w", err)
		}
	}

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	cfg := new(T)
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}

	if d, ok := any(cfg).(Defaulter); ok {
		d.ApplyDefaults()
	}
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("config: invalid: %w", err)
	}
	if val, ok := any(cfg).(Validator); ok {
		if err := val.Validate(); err != nil {
			return nil, fmt.Errorf("config: invalid: %w", err)
		}
	}
	return cfg, nil
}

var validate = validator.New(validator.WithRequiredStructEnabled())
