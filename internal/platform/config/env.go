// Package config loads process configuration from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// ParseEnv loads configuration from process environment variables using the
// `env` and `envDefault` struct tags on target.
func ParseEnv(target any) error {
	return parse(target, env.Options{})
}

// ParseEnvMap loads configuration from an explicit variable map instead of
// the process environment. Tests use it to avoid mutating global state.
func ParseEnvMap(target any, vars map[string]string) error {
	if vars == nil {
		vars = map[string]string{}
	}
	return parse(target, env.Options{Environment: vars})
}

func parse(target any, opts env.Options) error {
	if target == nil {
		return fmt.Errorf("parse env: config target is required")
	}
	if err := env.ParseWithOptions(target, opts); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
