package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	libconfig "swapnet/backend/libs/config"
)

// Config defines gateway configuration.
type Config struct {
	HTTP struct {
		Port string `yaml:"port" env:"API_GATEWAY_HTTP_PORT"`
	} `yaml:"http"`
	JWT struct {
		Secret string `yaml:"secret" env:"API_GATEWAY_JWT_SECRET"`
	} `yaml:"jwt"`
	Services struct {
		AuthURL         string `yaml:"authUrl" env:"AUTH_SERVICE_URL"`
		StationsURL     string `yaml:"stationsUrl" env:"STATIONS_SERVICE_URL"`
		TransactionsURL string `yaml:"transactionsUrl" env:"TRANSACTIONS_SERVICE_URL"`
		PacksURL        string `yaml:"packsUrl" env:"PACKS_SERVICE_URL"`
	} `yaml:"services"`
	HTTPClient struct {
		Timeout time.Duration `yaml:"timeout" env:"API_GATEWAY_HTTP_TIMEOUT"`
	} `yaml:"httpClient"`
	Redis struct {
		Addr     string        `yaml:"addr" env:"API_GATEWAY_REDIS_ADDR"`
		Password string        `yaml:"password" env:"API_GATEWAY_REDIS_PASSWORD"`
		DB       int           `yaml:"db" env:"API_GATEWAY_REDIS_DB"`
		PrefsTTL time.Duration `yaml:"prefsTtl" env:"API_GATEWAY_PREFS_TTL"`
	} `yaml:"redis"`
	Breaker struct {
		MaxRequests      uint32        `yaml:"maxRequests" env:"API_GATEWAY_BREAKER_MAX_REQUESTS"`
		Interval         time.Duration `yaml:"interval" env:"API_GATEWAY_BREAKER_INTERVAL"`
		Timeout          time.Duration `yaml:"timeout" env:"API_GATEWAY_BREAKER_TIMEOUT"`
		FailureThreshold uint32        `yaml:"failureThreshold" env:"API_GATEWAY_BREAKER_FAILURES"`
	} `yaml:"breaker"`
}

// Load configuration via shared helper.
func Load() (*Config, error) {
	cfg := defaults()

	if err := libconfig.LoadConfig(cfg); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func defaults() *Config {
	cfg := &Config{}
	cfg.HTTP.Port = "8080"
	cfg.Services.AuthURL = "http://localhost:8081"
	cfg.Services.StationsURL = "http://localhost:8084"
	cfg.Services.TransactionsURL = "http://localhost:8082"
	cfg.Services.PacksURL = "http://localhost:8082"
	cfg.HTTPClient.Timeout = 5 * time.Second
	cfg.Redis.Addr = "localhost:6379"
	cfg.Redis.PrefsTTL = 90 * 24 * time.Hour
	cfg.Breaker.MaxRequests = 1
	cfg.Breaker.Interval = time.Minute
	cfg.Breaker.Timeout = 30 * time.Second
	cfg.Breaker.FailureThreshold = 5
	return cfg
}

func (c *Config) validate() error {
	if strings.TrimSpace(c.JWT.Secret) == "" {
		return errors.New("config: jwt secret required")
	}
	if strings.TrimSpace(c.Services.StationsURL) == "" {
		return errors.New("config: stations service url required")
	}
	if strings.TrimSpace(c.Redis.Addr) == "" {
		return errors.New("config: redis addr required")
	}
	return nil
}

// HTTPAddress returns :port style.
func (c *Config) HTTPAddress() string {
	port := strings.TrimSpace(c.HTTP.Port)
	if port == "" {
		port = "8080"
	}
	if strings.HasPrefix(port, ":") {
		return port
	}
	return fmt.Sprintf(":%s", port)
}

// HTTPTimeout returns http client timeout.
func (c *Config) HTTPTimeout() time.Duration {
	if c.HTTPClient.Timeout <= 0 {
		return 5 * time.Second
	}
	return c.HTTPClient.Timeout
}
