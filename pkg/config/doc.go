// Package config loads configuration structs from environment variables.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11`:
// the default `.env` file is read once per process, then `env` / `envDefault`
// struct tags are resolved, optionally under a common prefix.
//
// # Usage
//
//	type Settings struct {
//	    ConfirmSuffix string `env:"CONFIRM_SUFFIX" envDefault:"_confirm"`
//	    ZipSuffix     string `env:"ZIP_SUFFIX" envDefault:"_after"`
//	}
//
//	var s Settings
//	if err := config.Load(&s, config.WithPrefix("FORMRULES_")); err != nil {
//	    // handle error
//	}
//
// Additional .env files can be loaded explicitly with LoadEnv before calling
// Load. Values already present in the environment are never overridden.
//
// # Error Handling
//
// Parsing failures are wrapped with ErrParsingConfig, unreadable .env files
// with ErrLoadingEnvFile. Passing a nil pointer returns ErrNilPointer.
package config
