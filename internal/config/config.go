package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds application configuration values.
type Config struct {
	DatabasePath string
	LogLevel     string
}

// Load reads configuration from environment variables with reasonable defaults.
// A .env file in the working directory is applied first if present.
func Load() Config {
	_ = godotenv.Load()

	path := os.Getenv("PHARMADESK_DB")
	if path == "" {
		path = "pharmacy.db"
	}

	level := os.Getenv("LOG_LEVEL")
	if level == "" {
		level = "info"
	}

	return Config{DatabasePath: path, LogLevel: level}
}
