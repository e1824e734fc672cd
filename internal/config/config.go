// Package config loads ecomarket settings from the environment.
package config

import (
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/pkg/errors"
)

// Config holds the settings shared by the render and serve commands.
type Config struct {
	Addr            string        `env:"ECOMARKET_ADDR" envDefault:":8080"`
	AssetsDir       string        `env:"ECOMARKET_ASSETS_DIR"`
	Title           string        `env:"ECOMARKET_TITLE" envDefault:"Экологический Маркетплейс"`
	Stylesheet      string        `env:"ECOMARKET_STYLESHEET" envDefault:"https://cdn.jsdelivr.net/npm/tailwindcss@2/dist/tailwind.min.css"`
	LogLevel        string        `env:"ECOMARKET_LOG_LEVEL" envDefault:"info"`
	ShutdownTimeout time.Duration `env:"ECOMARKET_SHUTDOWN_TIMEOUT" envDefault:"5s"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return errors.Wrap(err, "parse env")
	}
	return nil
}

// Load returns the Config read from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
