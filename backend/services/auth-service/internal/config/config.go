package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	libconfig "swapnet/backend/libs/config"
)

// Config represents service configuration loaded from YAML/env.
type Config struct {
	HTTP struct {
		Port string `yaml:"port" env:"AUTH_HTTP_PORT"`
	} `yaml:"http"`
	Database struct {
		DSN string `yaml:"dsn" env:"AUTH_POSTGRES_DSN"`
	} `yaml:"database"`
	JWT struct {
		Secret    string        `yaml:"secret" env:"AUTH_JWT_SECRET"`
		ExpiresIn time.Duration `yaml:"expiresIn" env:"AUTH_JWT_EXPIRES_IN"`
	} `yaml:"jwt"`
	Password struct {
		BcryptCost int `yaml:"bcryptCost" env:"AUTH_BCRYPT_COST"`
	} `yaml:"password"`
}

// Load reads configuration using the shared config loader.
func Load() (*Config, error) {
	cfg := &Config{}
	cfg.HTTP.Port = "8081"
	cfg.JWT.ExpiresIn = time.Hour

	if err := libconfig.LoadConfig(cfg); err != nil {
		return nil, err
	}

	if cfg.Database.DSN == "" {
		return nil, errors.New("config: database DSN is required")
	}
	if cfg.JWT.Secret == "" {
		return nil, errors.New("config: jwt secret is required")
	}
	return cfg, nil
}

// HTTPAddress ensures we always return host:port formatted string.
func (c *Config) HTTPAddress() string {
	port := strings.TrimSpace(c.HTTP.Port)
	if port == "" {
		port = "8081"
	}
	if strings.HasPrefix(port, ":") {
		return port
	}
	return fmt.Sprintf(":%s", port)
}

// JWTExpiration returns the token lifetime.
func (c *Config) JWTExpiration() time.Duration {
	if c.JWT.ExpiresIn <= 0 {
		return time.Hour
	}
	return c.JWT.ExpiresIn
}
