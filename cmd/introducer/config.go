package main

import (
	"fmt"
	"log/slog"
	"strings"

	env "github.com/Netflix/go-env"
	"github.com/joho/godotenv"
)

// Config is read from the environment (and an optional .env file).
// Command-line flags override it.
type Config struct {
	Greeting   string `env:"INTRODUCER_GREETING,default=Hello!"`
	Phrasebook string `env:"INTRODUCER_PHRASEBOOK"`
	Pattern    string `env:"INTRODUCER_PATTERN"`
	Style      string `env:"INTRODUCER_STYLE"`
	Discover   bool   `env:"INTRODUCER_DISCOVER,default=true"`
	LogLevel   string `env:"INTRODUCER_LOG_LEVEL,default=info"`
}

func loadConfig() (Config, error) {
	// A missing .env is the normal case.
	_ = godotenv.Load()

	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return Config{}, fmt.Errorf("config error: %w", err)
	}
	return config, nil
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level %q: %w", s, err)
	}
	return level, nil
}
