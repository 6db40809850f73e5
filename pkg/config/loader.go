package config

import (
	"errors"
	"fmt"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var defaultEnvLoaded sync.Once

// Option adjusts how Load reads the environment.
type Option func(*env.Options)

// WithEnvironment parses from m instead of the process environment.
// Tests use it to avoid touching global state.
func WithEnvironment(m map[string]string) Option {
	return func(o *env.Options) {
		o.Environment = m
	}
}

// WithPrefix prepends prefix to every variable name.
func WithPrefix(prefix string) Option {
	return func(o *env.Options) {
		o.Prefix = prefix
	}
}

// LoadEnv loads one or more .env files into the process environment.
// Variables that are already set are not overridden.
func LoadEnv(paths ...string) error {
	if err := godotenv.Load(paths...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	return nil
}

// Load parses environment variables into v based on its field tags.
//
// The default .env file in the working directory is loaded once per process
// when it exists. Every call parses the environment again and returns a fresh
// value, so two callers never share configuration state.
//
// Example:
//
//	type HTTPConfig struct {
//		Addr string `env:"HTTP_ADDR" envDefault:":8080"`
//	}
//
//	var cfg HTTPConfig
//	if err := config.Load(&cfg); err != nil {
//		// Handle error
//	}
func Load[T any](v *T, opts ...Option) error {
	defaultEnvLoaded.Do(func() {
		// The .env file is optional.
		_ = godotenv.Load()
	})
	if v == nil {
		return ErrNilPointer
	}

	var o env.Options
	for _, opt := range opts {
		opt(&o)
	}

	var fresh T
	if err := env.ParseWithOptions(&fresh, o); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	*v = fresh
	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
// This is useful for configurations that are required for the application to start.
func MustLoad[T any](v *T, opts ...Option) {
	if err := Load(v, opts...); err != nil {
		panic(fmt.Sprintf("Failed to load required configuration: %v", err))
	}
}
