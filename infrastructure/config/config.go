// Package config provides environment-based configuration
package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration (local HTTP mode only)
	ServerAddress string

	// Environment: development, staging, production
	Environment string

	// AWS configuration
	AWSRegion string

	// DynamoDB tables
	ContractsTable      string
	ContractStatusTable string
	PropertiesTable     string

	// EventBridge
	EventBusName string
	EventSource  string

	// Observability
	ServiceNamespace string
	LogLevel         string
	EnableTracing    bool

	// Lambda runtime detection
	IsLambda bool
}

// Load reads configuration from environment variables
func Load() *Config {
	cfg := &Config{
		ServerAddress: getEnv("SERVER_ADDRESS", ":8080"),
		Environment:   getEnv("ENVIRONMENT", "development"),

		AWSRegion: getEnv("AWS_REGION", "us-west-2"),

		ContractsTable:      getEnv("CONTRACTS_TABLE", "unicorn-contracts"),
		ContractStatusTable: getEnv("CONTRACT_STATUS_TABLE", "unicorn-contract-status"),
		PropertiesTable:     getEnv("PROPERTIES_TABLE", "unicorn-properties-web"),

		EventBusName: getEnv("EVENT_BUS", "UnicornPropertiesBus"),
		EventSource:  getEnv("EVENT_SOURCE", "unicorn.properties"),

		ServiceNamespace: getEnv("SERVICE_NAMESPACE", "UnicornProperties"),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		EnableTracing:    getEnvBool("ENABLE_TRACING", true),

		IsLambda: os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != "",
	}

	return cfg
}

// Validate checks that required configuration is present
func (c *Config) Validate() error {
	if c.Environment == "production" {
		required := map[string]string{
			"CONTRACTS_TABLE":       c.ContractsTable,
			"CONTRACT_STATUS_TABLE": c.ContractStatusTable,
			"PROPERTIES_TABLE":      c.PropertiesTable,
			"EVENT_BUS":             c.EventBusName,
			"SERVICE_NAMESPACE":     c.ServiceNamespace,
		}
		for name, value := range required {
			if value == "" {
				return fmt.Errorf("%s is required in production", name)
			}
		}
	}
	return nil
}

// getEnv gets an environment variable with a fallback default
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvBool gets a boolean environment variable with a fallback default
func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
