package config

import (
	"errors"
	"fmt"
	"strings"

	libconfig "swapnet/backend/libs/config"
)

// Config defines billing service configuration.
type Config struct {
	HTTP struct {
		Port string `yaml:"port" env:"BILLING_HTTP_PORT"`
	} `yaml:"http"`
	Database struct {
		DSN string `yaml:"dsn" env:"BILLING_POSTGRES_DSN"`
	} `yaml:"database"`
	Pricing struct {
		SwapPrice float64 `yaml:"swapPrice" env:"BILLING_SWAP_PRICE"`
	} `yaml:"pricing"`
}

// Load configuration from file/env.
func Load() (*Config, error) {
	cfg := &Config{}
	cfg.HTTP.Port = "8082"
	cfg.Pricing.SwapPrice = 4.5

	if err := libconfig.LoadConfig(cfg); err != nil {
		return nil, err
	}

	if strings.TrimSpace(cfg.Database.DSN) == "" {
		return nil, errors.New("config: database dsn required")
	}
	if cfg.Pricing.SwapPrice < 0 {
		return nil, errors.New("config: swap price must not be negative")
	}
	return cfg, nil
}

// HTTPAddress returns :port style string.
func (c *Config) HTTPAddress() string {
	port := strings.TrimSpace(c.HTTP.Port)
	if port == "" {
		port = "8082"
	}
	if strings.HasPrefix(port, ":") {
		return port
	}
	return fmt.Sprintf(":%s", port)
}
