package app

import (
	"io"
	"log"
	"os"
	"time"

	envstruct "code.cloudfoundry.org/go-envstruct"
)

// BasicAuthCreds stores configuration for basic authentication of the
// observation endpoints.
type BasicAuthCreds struct {
	Username string `env:"BASIC_AUTH_USERNAME"`
	Password string `env:"BASIC_AUTH_PASSWORD, noreport"`
}

// Config stores configuration data for the pipemeter.
type Config struct {
	ReportWindow   time.Duration `env:"REPORT_WINDOW"`
	MaxRateBuckets int           `env:"MAX_RATE_BUCKETS"`

	// Port of the observation web server. Zero disables it.
	Port           uint16 `env:"PORT"`
	BasicAuthCreds BasicAuthCreds

	LogWriter io.Writer
}

// LoadConfig loads the Config from the environment and reports the loaded
// values, with noreport fields redacted.
func LoadConfig(opts ...ConfigOption) Config {
	cfg := Config{
		ReportWindow:   time.Second,
		MaxRateBuckets: 60,

		// stdout carries the piped data, so logs go to stderr
		LogWriter: os.Stderr,
	}

	for _, o := range opts {
		o(&cfg)
	}

	if err := envstruct.Load(&cfg); err != nil {
		log.Fatalf("failed to load config from environment: %s", err)
	}

	envstruct.ReportWriter = cfg.LogWriter
	if err := envstruct.WriteReport(&cfg); err != nil {
		log.Fatalf("failed to write config report: %s", err)
	}

	return cfg
}

// ConfigOption is a function that can be passed to LoadConfig to configure
// optional settings.
type ConfigOption func(*Config)

// WithConfigLogWriter overrides where logs and the config report are
// written.
func WithConfigLogWriter(w io.Writer) ConfigOption {
	return func(c *Config) {
		c.LogWriter = w
	}
}
