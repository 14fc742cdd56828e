package main

import (
	"fmt"
	"log/slog"

	"github.com/dmitrymomot/textkit/pkg/config"
	"github.com/dmitrymomot/textkit/pkg/logger"
	"github.com/dmitrymomot/textkit/pkg/strutil"
)

// Config holds the CLI settings read from the environment or a .env file.
type Config struct {
	LogLevel   string `env:"TEXTKIT_LOG_LEVEL" envDefault:"warn"`
	LogFormat  string `env:"TEXTKIT_LOG_FORMAT" envDefault:"text"`
	Output     string `env:"TEXTKIT_OUTPUT" envDefault:"text"`
	DateFormat string `env:"TEXTKIT_DATE_FORMAT" envDefault:"mm/dd/yyyy"`
}

func loadConfig() (Config, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	if _, err := strutil.ParseDateLayout(cfg.DateFormat); err != nil {
		return Config{}, fmt.Errorf("TEXTKIT_DATE_FORMAT: %w", err)
	}
	return cfg, nil
}

// logOptions converts the logging settings into logger options.
func (c Config) logOptions() ([]logger.Option, error) {
	level, err := logger.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, err
	}
	format, err := logger.ParseFormat(c.LogFormat)
	if err != nil {
		return nil, err
	}
	return []logger.Option{
		logger.WithLevel(level),
		logger.WithFormat(format),
		logger.WithAttr(slog.String("app", appName)),
		logger.WithContextValue("command", commandKey{}),
	}, nil
}
