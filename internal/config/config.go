// Package config contains everything related to configuration
package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration.
type Config struct {
	// APIBaseURL is the root of the Voice AI Platform backend API.
	APIBaseURL string
	// APIToken is sent as a bearer token when non-empty.
	APIToken string
	// RequestTimeout bounds each backend request.
	RequestTimeout time.Duration
	// DefaultRangeDays is the reporting window selected on startup.
	DefaultRangeDays int
	// EnvFile is the .env file that was loaded, if any. Watched for changes.
	EnvFile string
}

// Default values
const (
	defaultRequestTimeout = 30 * time.Second
	defaultRangeDays      = 7
)

// Load reads configuration from .env files and environment variables.
func Load() (*Config, error) {
	var envFile string
	for _, path := range getEnvPaths() {
		if _, err := os.Stat(path); err == nil {
			_ = godotenv.Load(path)
			envFile = path
			break
		}
	}

	cfg := &Config{
		APIBaseURL:       getEnvString("VAP_API_BASE_URL", ""),
		APIToken:         getEnvString("VAP_API_TOKEN", ""),
		RequestTimeout:   getEnvDuration("VAP_REQUEST_TIMEOUT", defaultRequestTimeout),
		DefaultRangeDays: getEnvInt("VAP_DEFAULT_RANGE_DAYS", defaultRangeDays),
		EnvFile:          envFile,
	}

	if cfg.APIBaseURL == "" {
		return nil, fmt.Errorf("VAP_API_BASE_URL is required (set via env or .env file)")
	}
	if _, err := url.ParseRequestURI(cfg.APIBaseURL); err != nil {
		return nil, fmt.Errorf("VAP_API_BASE_URL is not a valid URL: %w", err)
	}

	return cfg, nil
}

// getEnvPaths returns a list of paths to check for .env files.
func getEnvPaths() []string {
	var paths []string

	// Current directory
	if cwd, err := os.Getwd(); err == nil {
		paths = append(paths, filepath.Join(cwd, ".env"))
	}

	// Home directory locations
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths,
			filepath.Join(home, ".config", "vapdash", ".env"),
			filepath.Join(home, ".vapdash", ".env"),
		)
	}

	return paths
}

// getEnvString retrieves a string environment variable or returns the default.
func getEnvString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt retrieves an integer environment variable or returns the default.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

// getEnvDuration retrieves a duration environment variable or returns the default.
// Accepts values like "30s", "1m", "500ms".
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
		// Try parsing as seconds if no unit specified
		if secs, err := strconv.Atoi(value); err == nil {
			return time.Duration(secs) * time.Second
		}
	}
	return defaultValue
}
