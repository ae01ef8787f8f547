package config

import (
	"os"
	"path/filepath"
	"time"
)

// Config holds all application configuration
type Config struct {
	APIBaseURL  string
	SessionFile string
	HTTPTimeout time.Duration
}

// Load reads configuration from environment variables
func Load() *Config {
	return &Config{
		APIBaseURL:  getEnv("RACHA_API_URL", "http://localhost:3000"),
		SessionFile: getEnv("RACHA_SESSION_FILE", defaultSessionFile()),
		HTTPTimeout: getDuration("RACHA_HTTP_TIMEOUT", 30*time.Second),
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getDuration retrieves a duration environment variable, falling back to
// the default when unset or unparsable
func getDuration(key string, defaultValue time.Duration) time.Duration {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return d
}

func defaultSessionFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "session.json"
	}
	return filepath.Join(home, ".racha", "session.json")
}
