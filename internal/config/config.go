package config

import (
	"os"
	"strconv"

	"counter/internal/logger"
)

type Config struct {
	// HTTP server
	Host string
	Port int

	// Document store
	DataFile string

	// Logging
	LogLevel      string
	LogFormat     string
	LogTimeFormat string
	LogOutput     string
}

func Load() (*Config, error) {
	port, err := strconv.Atoi(getEnv("COUNTER_PORT", "3000"))
	if err != nil {
		return nil, err
	}

	return &Config{
		Host:          getEnv("COUNTER_HOST", "localhost"),
		Port:          port,
		DataFile:      getEnv("COUNTER_DATA_FILE", "counter.json"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		LogFormat:     getEnv("LOG_FORMAT", "console"),
		LogTimeFormat: getEnv("LOG_TIME_FORMAT", "2006-01-02T15:04:05Z07:00"),
		LogOutput:     getEnv("LOG_OUTPUT", "stdout"),
	}, nil
}

// GetLoggerConfig returns a logger configuration from the main config
func (c *Config) GetLoggerConfig() logger.LogConfig {
	return logger.LogConfig{
		Level:      c.LogLevel,
		Format:     c.LogFormat,
		TimeFormat: c.LogTimeFormat,
		Output:     c.LogOutput,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
