// Package config loads dynamap settings from the environment.
//
// Every setting is read from a DYNAMAP_-prefixed variable:
//
//	DYNAMAP_LOG_LEVEL   debug | info | warn | error (default info)
//	DYNAMAP_COMPARISON  ordinal | ordinal-ignore-case | invariant-ignore-case
//	                    (default invariant-ignore-case)
package config

import (
	"fmt"

	"github.com/gabapcia/dynamap/internal/pkg/validator"
	"github.com/gabapcia/dynamap/pkg/defaultdict"
	"github.com/gabapcia/dynamap/pkg/keycmp"

	"github.com/kelseyhightower/envconfig"
)

// envPrefix is prepended to every variable name.
const envPrefix = "DYNAMAP"

// Config holds the application settings.
type Config struct {
	LogLevel   string `envconfig:"LOG_LEVEL" default:"info" validate:"required,oneof=debug info warn error"`
	Comparison string `envconfig:"COMPARISON" default:"invariant-ignore-case" validate:"required,comparison"`
}

// Load reads the configuration from the environment and validates it.
//
// Returns:
//   - The loaded Config.
//   - An error if a variable cannot be parsed, or one wrapping
//     validator.ErrValidationFailed if a value is out of range.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("load environment: %w", err)
	}

	if err := validator.Validate(cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Comparer returns the key comparison strategy named by c.Comparison.
func (c Config) Comparer() (defaultdict.Comparer[string], error) {
	return keycmp.Parse(c.Comparison)
}
