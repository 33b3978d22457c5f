package config

import (
	"errors"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var defaultEnvLoaded sync.Once

// Option adjusts how environment variables are mapped onto a struct.
type Option func(*env.Options)

// WithPrefix prepends prefix to every env tag of the target struct.
func WithPrefix(prefix string) Option {
	return func(o *env.Options) {
		o.Prefix = prefix
	}
}

// WithEnvironment parses from the given map instead of the process environment.
func WithEnvironment(vars map[string]string) Option {
	return func(o *env.Options) {
		o.Environment = vars
	}
}

// Load parses environment variables into v based on its `env` and
// `envDefault` field tags.
//
// The default .env file in the working directory is loaded once per process
// before the first parse; a missing file is not an error.
//
// Example:
//
//	type Settings struct {
//		ConfirmSuffix string `env:"CONFIRM_SUFFIX" envDefault:"_confirm"`
//	}
//
//	var s Settings
//	err := config.Load(&s, config.WithPrefix("FORMRULES_"))
func Load[T any](v *T, opts ...Option) error {
	defaultEnvLoaded.Do(func() {
		// Ignore errors - the .env file might not exist and that's ok
		_ = godotenv.Load()
	})
	if v == nil {
		return ErrNilPointer
	}

	var o env.Options
	for _, opt := range opts {
		opt(&o)
	}

	if err := env.ParseWithOptions(v, o); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// LoadEnv loads variables from the given .env files into the process
// environment without overriding variables that are already set.
func LoadEnv(paths ...string) error {
	if err := godotenv.Load(paths...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	return nil
}
