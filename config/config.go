package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	RateLimit  RateLimitConfig

	// School backend
	Backend BackendConfig
	Cache   CacheConfig

	// Deadline computation
	Deadline DeadlineConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type RateLimitConfig struct {
	RequestsPerMin int
}

type BackendConfig struct {
	URL             string
	AccessToken     string
	Timeout         time.Duration
	BreakerFailures int
	BreakerTimeout  time.Duration
}

type CacheConfig struct {
	Enabled bool
	Size    int
	TTL     time.Duration
}

type DeadlineConfig struct {
	Timezone string
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/app/")

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")
	cfg.RateLimit.RequestsPerMin = v.GetInt("rate_limit.requests_per_min")

	// School backend
	cfg.Backend.URL = strings.TrimRight(v.GetString("backend.url"), "/")
	cfg.Backend.AccessToken = v.GetString("backend.access_token")
	cfg.Backend.Timeout = v.GetDuration("backend.timeout")
	cfg.Backend.BreakerFailures = v.GetInt("backend.breaker_failures")
	cfg.Backend.BreakerTimeout = v.GetDuration("backend.breaker_timeout")
	cfg.Cache.Enabled = v.GetBool("cache.enabled")
	cfg.Cache.Size = v.GetInt("cache.size")
	cfg.Cache.TTL = v.GetDuration("cache.ttl")

	// Deadline computation
	cfg.Deadline.Timezone = v.GetString("deadline.timezone")

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "debug")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)
	v.SetDefault("rate_limit.requests_per_min", 120)

	v.SetDefault("backend.timeout", "10s")
	v.SetDefault("backend.breaker_failures", 5)
	v.SetDefault("backend.breaker_timeout", "30s")
	v.SetDefault("cache.enabled", true)
	v.SetDefault("cache.size", 256)
	v.SetDefault("cache.ttl", "1m")

	v.SetDefault("deadline.timezone", "America/Santiago")
}

func (cfg *Config) validate() error {
	if cfg.Backend.URL == "" {
		return errors.New("backend.url is required")
	}
	if cfg.Backend.Timeout <= 0 {
		return fmt.Errorf("backend.timeout must be positive, got %s", cfg.Backend.Timeout)
	}
	if cfg.Backend.BreakerFailures <= 0 {
		return fmt.Errorf("backend.breaker_failures must be positive, got %d", cfg.Backend.BreakerFailures)
	}
	if cfg.Cache.Enabled && cfg.Cache.Size <= 0 {
		return fmt.Errorf("cache.size must be positive, got %d", cfg.Cache.Size)
	}
	if _, err := time.LoadLocation(cfg.Deadline.Timezone); err != nil {
		return fmt.Errorf("invalid deadline.timezone %q: %w", cfg.Deadline.Timezone, err)
	}
	return nil
}
