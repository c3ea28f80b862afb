package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Option configures Load.
type Option func(*options)

type options struct {
	files       []string
	environment map[string]string
}

// WithEnvFiles loads the given files instead of the default .env. Unlike the
// default file, listed files must exist.
func WithEnvFiles(files ...string) Option {
	return func(o *options) { o.files = append(o.files, files...) }
}

// WithEnvironment parses from env instead of the process environment and
// skips .env files.
func WithEnvironment(vars map[string]string) Option {
	return func(o *options) {
		if vars == nil {
			vars = map[string]string{}
		}
		o.environment = vars
	}
}

// Load parses the environment into a new T.
func Load[T any](opts ...Option) (T, error) {
	var (
		cfg T
		o   options
	)
	for _, opt := range opts {
		opt(&o)
	}

	if o.environment == nil {
		if len(o.files) == 0 {
			// The default .env file is optional.
			_ = godotenv.Load()
		} else if err := godotenv.Load(o.files...); err != nil {
			return cfg, errors.Join(ErrLoadingEnvFile, err)
		}
	}

	if err := env.ParseWithOptions(&cfg, env.Options{Environment: o.environment}); err != nil {
		return cfg, errors.Join(ErrParsingConfig, err)
	}
	return cfg, nil
}

// MustLoad is like Load but panics on failure.
func MustLoad[T any](opts ...Option) T {
	cfg, err := Load[T](opts...)
	if err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
	return cfg
}
