package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Upload   UploadConfig
	CORS     CORSConfig
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port string
	Host string
	Addr string // Combined host:port for convenience
}

// DatabaseConfig holds database-specific configuration
type DatabaseConfig struct {
	Path string
}

// UploadConfig holds staging configuration for uploaded spreadsheets.
// Staged files are removed right after processing; Retention bounds how long
// leftovers from crashed requests survive before the sweep removes them.
type UploadConfig struct {
	Dir       string
	Retention time.Duration
}

// CORSConfig holds CORS-specific configuration
type CORSConfig struct {
	AllowedOrigins []string
}

// Load reads configuration from environment variables and .env file
func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	_ = godotenv.Load()

	retentionHours, err := strconv.Atoi(getEnv("UPLOAD_RETENTION_HOURS", "24"))
	if err != nil || retentionHours <= 0 {
		return nil, fmt.Errorf("invalid UPLOAD_RETENTION_HOURS: %s", getEnv("UPLOAD_RETENTION_HOURS", "24"))
	}

	config := &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "5001"),
			Host: getEnv("SERVER_HOST", "localhost"),
		},
		Database: DatabaseConfig{
			Path: getEnv("DB_PATH", "./data/transaction_import.db"),
		},
		Upload: UploadConfig{
			Dir:       getEnv("UPLOAD_DIR", "./data/uploads"),
			Retention: time.Duration(retentionHours) * time.Hour,
		},
		CORS: CORSConfig{
			AllowedOrigins: []string{
				"http://localhost:3000",
				"http://localhost",
			},
		},
	}

	// Combine host and port
	config.Server.Addr = fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port)

	return config, nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
