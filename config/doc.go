// Package config provides configuration loading and validation for
// applications embedding apistate.
//
// It uses Viper to load configuration from YAML files with environment
// overrides (APISTATE_ prefix, underscore-separated paths), godotenv for
// optional .env files, and validator struct tags for field validation.
//
// # Usage
//
//	cfg, err := config.Load[config.Config]("config.yaml")
package config
