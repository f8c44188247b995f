package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/dmitrymomot/fintrack/pkg/config"
	"github.com/dmitrymomot/fintrack/pkg/logger"
)

const envPrefix = "FORMCHECK_"

// appConfig holds settings shared with other fintrack tools.
type appConfig struct {
	Env       string `env:"APP_ENV" envDefault:"development"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`
}

// cliConfig is read from FORMCHECK_ prefixed variables.
type cliConfig struct {
	Lang         string `env:"LANG" envDefault:"en"`
	Translations string `env:"TRANSLATIONS"`
}

func loadConfig() (appConfig, cliConfig, error) {
	var app appConfig
	if err := config.Load(&app); err != nil {
		return appConfig{}, cliConfig{}, err
	}
	var cli cliConfig
	if err := config.Load(&cli, config.WithPrefix(envPrefix)); err != nil {
		return appConfig{}, cliConfig{}, err
	}
	return app, cli, nil
}

// newLogger writes to w. Records go to stderr so stdout only carries the result.
func newLogger(cfg appConfig, w io.Writer) (*slog.Logger, error) {
	format := logger.Format(cfg.LogFormat)
	if format != logger.FormatText && format != logger.FormatJSON {
		return nil, fmt.Errorf("LOG_FORMAT must be %q or %q, got %q", logger.FormatText, logger.FormatJSON, cfg.LogFormat)
	}
	return logger.New(
		logger.WithEnvironment(cfg.Env, "formcheck"),
		logger.WithLevelName(cfg.LogLevel),
		logger.WithFormat(format),
		logger.WithOutput(w),
	), nil
}
