package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds the runtime settings of the script browser.
type Config struct {
	Root     string   `env:"RRUN_ROOT" envDefault:"scripts"`
	Patterns []string `env:"RRUN_PATTERNS" envDefault:"*.sh" envSeparator:","`
	Shell    string   `env:"RRUN_SHELL"`
	LogFile  string   `env:"RRUN_LOG_FILE"`
	LogLevel string   `env:"RRUN_LOG_LEVEL" envDefault:"info"`
}

// Load parses the configuration from environment variables.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// LoadWithEnvironment parses the configuration from an explicit environment map.
func LoadWithEnvironment(environ map[string]string) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: environ}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Validate reports settings the application cannot start with.
func (c Config) Validate() error {
	if c.Root == "" {
		return fmt.Errorf("script root must not be empty")
	}
	if len(c.Patterns) == 0 {
		return fmt.Errorf("at least one script pattern is required")
	}
	return nil
}
