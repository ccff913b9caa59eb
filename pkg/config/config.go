package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration values
type Config struct {
	Port     string
	LogLevel string
	AppEnv   string

	CustomerAPIURL     string
	CustomerAPIToken   string
	CustomerAPITimeout time.Duration
}

// LoadConfig reads configuration from environment variables. The defaults
// point at the customer's sandbox endpoint so the service runs without any
// environment set.
func LoadConfig() *Config {
	return &Config{
		Port:     getEnv("PORT", "8080"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
		AppEnv:   getEnv("APP_ENV", "development"),

		CustomerAPIURL:     getEnv("CUSTOMER_API_URL", "https://contactapi.static.fyi/lead/receive/fake/haerle/"),
		CustomerAPIToken:   getEnv("CUSTOMER_API_TOKEN", "FakeCustomerToken"),
		CustomerAPITimeout: time.Duration(getEnvInt("CUSTOMER_API_TIMEOUT_SECONDS", 5000)) * time.Second,
	}
}

// getEnv retrieves an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt retrieves an environment variable as int or returns a default value.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}
