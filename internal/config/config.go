package config

import (
	"fmt"
	"os"
)

// Config holds application configuration
type Config struct {
	Port           string
	DataFile       string
	LogLevel       string
	AnthropicKey   string
	AnthropicModel string
	ReloadSchedule string
}

// NewConfig loads configuration from environment variables
func NewConfig() (*Config, error) {
	cfg := &Config{
		Port:           getEnv("PORT", "8080"),
		DataFile:       getEnv("DATA_FILE", "data/financial_snapshot.json"),
		LogLevel:       getEnv("LOG_LEVEL", "INFO"),
		AnthropicKey:   getEnv("ANTHROPIC_API_KEY", ""),
		AnthropicModel: getEnv("ANTHROPIC_MODEL", "claude-sonnet-4-20250514"),
		ReloadSchedule: getEnv("RELOAD_SCHEDULE", ""),
	}

	if cfg.Port == "" {
		return nil, fmt.Errorf("PORT is required")
	}
	if cfg.DataFile == "" {
		return nil, fmt.Errorf("DATA_FILE is required")
	}

	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}
