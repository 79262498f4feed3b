package config

import (
	"errors"
	"fmt"
	"strings"

	libconfig "swapnet/backend/libs/config"
)

// Config defines station service configuration.
type Config struct {
	HTTP struct {
		Port string `yaml:"port" env:"STATION_HTTP_PORT"`
	} `yaml:"http"`
	Database struct {
		DSN          string `yaml:"dsn" env:"STATION_POSTGRES_DSN"`
		MaxOpenConns int    `yaml:"maxOpenConns" env:"STATION_POSTGRES_MAX_OPEN_CONNS"`
	} `yaml:"database"`
}

// Load reads configuration via shared helper.
func Load() (*Config, error) {
	cfg := &Config{}
	cfg.HTTP.Port = "8084"

	if err := libconfig.LoadConfig(cfg); err != nil {
		return nil, err
	}

	if strings.TrimSpace(cfg.Database.DSN) == "" {
		return nil, errors.New("config: database dsn required")
	}
	return cfg, nil
}

// HTTPAddress returns :port style.
func (c *Config) HTTPAddress() string {
	port := strings.TrimSpace(c.HTTP.Port)
	if port == "" {
		port = "8084"
	}
	if strings.HasPrefix(port, ":") {
		return port
	}
	return fmt.Sprintf(":%s", port)
}
