// Package config loads typed configuration from environment variables.
//
// A `.env` file in the working directory is read once through
// github.com/joho/godotenv (missing files are ignored); additional files can be
// loaded with LoadEnv. Structs are populated by github.com/caarlos0/env/v11
// using `env` and `envDefault` tags, and each (type, prefix) pair is parsed at
// most once per process:
//
//	type Config struct {
//	    Lang      string `env:"LANG" envDefault:"en"`
//	    LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg, config.WithPrefix("FORMCHECK_")); err != nil {
//	    return err
//	}
//
// ResetCache drops cached values; tests use it to reload with a different
// environment.
package config
