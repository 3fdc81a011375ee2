package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config represents the full application configuration surface.
type Config struct {
	Server   ServerConfig
	OrderAPI OrderAPIConfig
	Refresh  RefreshConfig
}

// ServerConfig holds HTTP server related options.
type ServerConfig struct {
	Port  string
	Debug bool
}

// OrderAPIConfig locates the remote order API the portals talk to.
type OrderAPIConfig struct {
	BaseURL string
	Timeout time.Duration
}

// RefreshConfig holds the background inventory refresh schedule.
type RefreshConfig struct {
	CronSchedule string
}

// Load reads environment variables (optionally from the provided file) and
// materializes a Config instance.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("failed loading env file %s: %w", envFile, err)
			}
		}
	} else {
		// Missing .env files are acceptable when configuration comes from the
		// environment directly.
		_ = godotenv.Load()
	}

	timeoutSeconds, err := strconv.Atoi(getenvWithDefault("ORDER_API_TIMEOUT_SECONDS", "15"))
	if err != nil || timeoutSeconds <= 0 {
		return nil, errors.New("ORDER_API_TIMEOUT_SECONDS must be a positive integer")
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:  getenvWithDefault("APP_PORT", "8080"),
			Debug: getenvWithDefault("APP_DEBUG", "false") == "true",
		},
		OrderAPI: OrderAPIConfig{
			BaseURL: os.Getenv("ORDER_API_BASE_URL"),
			Timeout: time.Duration(timeoutSeconds) * time.Second,
		},
		Refresh: RefreshConfig{
			CronSchedule: getenvWithDefault("INVENTORY_REFRESH_CRON", "*/5 * * * *"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate ensures that required configuration fields are populated.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}

	if c.Server.Port == "" {
		return errors.New("APP_PORT must be provided")
	}

	if c.OrderAPI.BaseURL == "" {
		return errors.New("ORDER_API_BASE_URL must be provided")
	}

	if c.OrderAPI.Timeout <= 0 {
		return errors.New("ORDER_API_TIMEOUT_SECONDS must be positive")
	}

	if c.Refresh.CronSchedule == "" {
		return errors.New("INVENTORY_REFRESH_CRON must be provided")
	}

	return nil
}

func getenvWithDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
