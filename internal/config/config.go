package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	App AppConfig
}

// AppConfig holds application configuration
type AppConfig struct {
	CompanyName string
	Env         string
	LogLevel    string
}

func Load() (*Config, error) {
	// .env is optional for this program; real env vars win either way.
	_ = godotenv.Load()

	config := &Config{}

	config.App = AppConfig{
		CompanyName: getEnv("COMPANY_NAME", "TechSolutions"),
		Env:         getEnv("APP_ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.App.CompanyName == "" {
		return fmt.Errorf("COMPANY_NAME must not be empty")
	}
	switch c.App.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid LOG_LEVEL: %s", c.App.LogLevel)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
