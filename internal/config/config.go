package config

import (
	"log/slog"
	"os"
)

// ServerConfig holds all configuration values loaded from environment variables.
type ServerConfig struct {
	ServerHost  string
	ServerPort  string
	RedisURL    string
	PostgresURL string
	Token       string
}

// LoadServerConfig loads configuration from environment variables.
func LoadServerConfig() *ServerConfig {
	return &ServerConfig{
		ServerHost:  getEnvMust("REVERSI_SERVER_HOST"),
		ServerPort:  getEnvMust("REVERSI_SERVER_PORT"),
		RedisURL:    getEnvMust("REVERSI_REDIS_URL"),
		PostgresURL: getEnvMust("REVERSI_POSTGRES_URL"),
		Token:       getEnvMust("REVERSI_SERVER_TOKEN"),
	}
}

// getEnvMust either returns the environment variable or logs a fatal error if it is not set.
func getEnvMust(key string) string {
	value := os.Getenv(key)
	if value == "" {
		slog.Error("Environment variable is not set", "key", key)
		os.Exit(1)
	}
	return value
}
