package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds all application configuration
type Config struct {
	// Server configuration
	ServerAddress string
	Environment   string

	// Graph store configuration
	DgraphAddress  string
	MaxMessageSize int // bytes, applied to gRPC send and receive

	// Layout configuration
	LayoutMaxNodes   int // above this, coordinate placement is skipped
	LayoutIterations int
	LayoutScale      float64

	// Logging
	LogLevel string

	// Feature flags
	EnableCORS bool
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	cfg := &Config{
		ServerAddress: getEnv("SERVER_ADDRESS", ":7000"),
		Environment:   getEnv("ENVIRONMENT", "development"),

		DgraphAddress:  getEnv("DGRAPH_ADDRESS", "alpha:9080"),
		MaxMessageSize: getEnvInt("DGRAPH_MAX_MESSAGE_SIZE", 1024*1024*1024),

		LayoutMaxNodes:   getEnvInt("LAYOUT_MAX_NODES", 1000),
		LayoutIterations: getEnvInt("LAYOUT_ITERATIONS", 100),
		LayoutScale:      getEnvFloat("LAYOUT_SCALE", 5.0),

		LogLevel:   getEnv("LOG_LEVEL", "info"),
		EnableCORS: getEnvBool("ENABLE_CORS", true),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks if all required configuration is present
func (c *Config) Validate() error {
	if c.DgraphAddress == "" {
		return fmt.Errorf("DGRAPH_ADDRESS is required")
	}
	if c.LayoutIterations <= 0 {
		return fmt.Errorf("LAYOUT_ITERATIONS must be positive")
	}
	return nil
}

// IsDevelopment checks if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction checks if running in production mode
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// getEnv gets an environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvBool gets a boolean environment variable with a default value
func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value == "true" || value == "1" || value == "yes"
}

// getEnvInt gets an integer environment variable with a default value
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

// getEnvFloat gets a float environment variable with a default value
func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}
