// Package config loads application configuration from environment
// variables with typed getters and validation.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration loaded from environment
// variables. The task list itself needs none; everything here concerns
// the HTTP front-end.
type Config struct {
	Server    ServerConfig
	RateLimit RateLimitConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Addr         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	CORSOrigins  []string
}

// RateLimitConfig holds per-client request throttling settings.
type RateLimitConfig struct {
	RequestsPerSecond float64
	Burst             int
}

// Load reads configuration from environment variables. Defaults are safe
// for local development.
func Load() (*Config, error) {
	readTimeout, err := getEnvDuration("TASKLIST_SERVER_READ_TIMEOUT", 10*time.Second)
	if err != nil {
		return nil, fmt.Errorf("config.Load: %w", err)
	}

	writeTimeout, err := getEnvDuration("TASKLIST_SERVER_WRITE_TIMEOUT", 30*time.Second)
	if err != nil {
		return nil, fmt.Errorf("config.Load: %w", err)
	}

	rps, err := getEnvFloat("TASKLIST_RATE_LIMIT_RPS", 100)
	if err != nil {
		return nil, fmt.Errorf("config.Load: %w", err)
	}

	burst, err := getEnvInt("TASKLIST_RATE_LIMIT_BURST", 200)
	if err != nil {
		return nil, fmt.Errorf("config.Load: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Addr:         getEnv("TASKLIST_ADDR", ":8080"),
			ReadTimeout:  readTimeout,
			WriteTimeout: writeTimeout,
			CORSOrigins:  getEnvList("TASKLIST_CORS_ORIGINS", []string{"*"}),
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: rps,
			Burst:             burst,
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config.Load: %w", err)
	}
	return cfg, nil
}

// Validate checks that the loaded values form a runnable configuration.
func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return fmt.Errorf("TASKLIST_ADDR must not be empty")
	}
	if c.Server.ReadTimeout <= 0 {
		return fmt.Errorf("TASKLIST_SERVER_READ_TIMEOUT must be positive, got %s", c.Server.ReadTimeout)
	}
	if c.Server.WriteTimeout <= 0 {
		return fmt.Errorf("TASKLIST_SERVER_WRITE_TIMEOUT must be positive, got %s", c.Server.WriteTimeout)
	}
	if c.RateLimit.RequestsPerSecond <= 0 {
		return fmt.Errorf("TASKLIST_RATE_LIMIT_RPS must be positive, got %g", c.RateLimit.RequestsPerSecond)
	}
	if c.RateLimit.Burst <= 0 {
		return fmt.Errorf("TASKLIST_RATE_LIMIT_BURST must be positive, got %d", c.RateLimit.Burst)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("parsing %s=%q as int: %w", key, v, err)
	}
	return n, nil
}

func getEnvFloat(key string, fallback float64) (float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("parsing %s=%q as float: %w", key, v, err)
	}
	return f, nil
}

func getEnvDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("parsing %s=%q as duration: %w", key, v, err)
	}
	return d, nil
}

func getEnvList(key string, fallback []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	parts := strings.Split(v, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			result = append(result, p)
		}
	}
	return result
}
