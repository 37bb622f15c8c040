// ABOUTME: Application configuration loaded from .env and environment
// ABOUTME: Also owns zerolog initialization for the whole client
package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config holds client configuration. The API base URL is a fixed HTTPS
// origin in production; the default points at a local dev server.
type Config struct {
	APIBaseURL string `envconfig:"API_BASE_URL" default:"http://localhost:8787"`
	DataDir    string `envconfig:"DATA_DIR"`
	LogLevel   string `envconfig:"LOG_LEVEL" default:"info"`
	Debug      bool   `envconfig:"DEBUG" default:"false"`
}

// Load reads .env (when present) and decodes KINDRED_-prefixed settings
// from the environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("kindred", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// InitLogger configures zerolog for text output with no coloring.
func (c *Config) InitLogger() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: "2006-01-02 15:04:05",
		NoColor:    true,
	})
	zerolog.SetGlobalLevel(c.level())
}

func (c *Config) level() zerolog.Level {
	if c.Debug {
		return zerolog.DebugLevel
	}
	switch c.LogLevel {
	case "debug", "DEBUG":
		return zerolog.DebugLevel
	case "warn", "WARN":
		return zerolog.WarnLevel
	case "error", "ERROR":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
