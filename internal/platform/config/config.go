package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Server captures HTTP server level configuration.
type Server struct {
	Addr            string        `env:"NUMEROLOGY_ADDR" envDefault:":8080"`
	LogLevel        string        `env:"NUMEROLOGY_LOG_LEVEL" envDefault:"info"`
	LogFormat       string        `env:"NUMEROLOGY_LOG_FORMAT" envDefault:"text"`
	MeaningsFile    string        `env:"NUMEROLOGY_MEANINGS_FILE"`
	RequestTimeout  time.Duration `env:"NUMEROLOGY_REQUEST_TIMEOUT" envDefault:"5s"`
	ShutdownTimeout time.Duration `env:"NUMEROLOGY_SHUTDOWN_TIMEOUT" envDefault:"10s"`
	MetricsEnabled  bool          `env:"NUMEROLOGY_METRICS_ENABLED" envDefault:"true"`
}

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() (Server, error) {
	var cfg Server
	if err := env.Parse(&cfg); err != nil {
		return Server{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Server{}, err
	}
	return cfg, nil
}

// Validate performs simple sanity checks on the configuration.
func (c Server) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("config: NUMEROLOGY_ADDR must not be empty")
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("config: NUMEROLOGY_LOG_FORMAT must be text or json, got %q", c.LogFormat)
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("config: NUMEROLOGY_REQUEST_TIMEOUT must be positive")
	}
	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("config: NUMEROLOGY_SHUTDOWN_TIMEOUT must be positive")
	}
	return nil
}
