package main

import (
	"flag"
	"os"
)

// Config holds cmd/qxform's runtime settings: a log level/format pair
// applied to internal/log, plus an optional catalog-seed file path. It is
// populated from flags with an environment-variable fallback, not a
// third-party config framework — the surface here is three scalars.
type Config struct {
	LogLevel  string
	LogFormat string
	SeedFile  string
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// ParseConfig reads flags, falling back to QXFORM_* environment variables,
// then to hard defaults.
func ParseConfig(args []string) (*Config, error) {
	fs := flag.NewFlagSet("qxform", flag.ContinueOnError)
	cfg := &Config{}

	fs.StringVar(&cfg.LogLevel, "log-level", envOr("QXFORM_LOG_LEVEL", "info"), "log level: debug, info, warn, error")
	fs.StringVar(&cfg.LogFormat, "log-format", envOr("QXFORM_LOG_FORMAT", "text"), "log format: text, json")
	fs.StringVar(&cfg.SeedFile, "seed", envOr("QXFORM_SEED_FILE", ""), "optional catalog-seed file (unused by the built-in demo query)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return cfg, nil
}
