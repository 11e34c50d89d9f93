package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all configuration for the application
type Config struct {
	Server     ServerConfig
	CORS       CORSConfig
	Session    SessionConfig
	Logging    LoggingConfig
	Monitoring MonitoringConfig
	Contact    ContactConfig
}

type ServerConfig struct {
	Port         int
	Env          string
	Name         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

type CORSConfig struct {
	AllowedOrigins []string
}

type SessionConfig struct {
	// RedisURL selects the durable session backend. Empty falls back to the
	// in-process store (the session then does not survive a restart).
	RedisURL string
}

type LoggingConfig struct {
	Level  string
	Format string
}

type MonitoringConfig struct {
	PrometheusEnabled bool
	PrometheusPort    int
}

type ContactConfig struct {
	// SubmitDelay simulates remote submission latency on the contact form.
	SubmitDelay time.Duration
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:         getEnvInt("API_PORT", 8080),
			Env:          getEnv("APP_ENV", "development"),
			Name:         getEnv("APP_NAME", "listinghub"),
			ReadTimeout:  time.Duration(getEnvInt("SERVER_READ_TIMEOUT", 15)) * time.Second,
			WriteTimeout: time.Duration(getEnvInt("SERVER_WRITE_TIMEOUT", 15)) * time.Second,
			IdleTimeout:  time.Duration(getEnvInt("SERVER_IDLE_TIMEOUT", 60)) * time.Second,
		},
		CORS: CORSConfig{
			AllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		},
		Session: SessionConfig{
			RedisURL: getEnv("SESSION_REDIS_URL", ""),
		},
		Logging: LoggingConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "console"),
		},
		Monitoring: MonitoringConfig{
			PrometheusEnabled: getEnvBool("PROMETHEUS_ENABLED", false),
			PrometheusPort:    getEnvInt("PROMETHEUS_PORT", 9090),
		},
		Contact: ContactConfig{
			SubmitDelay: time.Duration(getEnvInt("CONTACT_SUBMIT_DELAY_MS", 0)) * time.Millisecond,
		},
	}

	// Validate required configuration
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that required configuration is present
func (c *Config) Validate() error {
	if c.Server.Env == "production" {
		if c.Session.RedisURL == "" {
			return fmt.Errorf("SESSION_REDIS_URL is required in production")
		}
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func splitList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
