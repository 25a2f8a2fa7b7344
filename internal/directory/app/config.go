package app

import (
	"os"
	"time"
)

type Config struct {
	DatabaseFile         string        // Optional: path to SQLite database file (default: ./directory.db)
	PepperFile           string        // Optional: path to file containing pepper for password hashing (default: ./pepper)
	SessionTTL           time.Duration // Session lifetime (default: 24h)
	Env                  string        // Environment (dev, staging, prod) (default: dev)
	LogLevel             string        // Log level (debug, info, warn, error) (default: info)
	LogFormat            string        // Log format (json, text) (default: json)
	ShutdownGracePeriod  time.Duration // Graceful shutdown timeout (default: 10s)
	HousekeepingInterval time.Duration // Housekeeping interval (default: 1h)
	SkipSeed             bool          // Skip demo data seeding entirely (default: false)
}

func LoadConfig() Config {
	return Config{
		DatabaseFile:         getEnvOrDefault("DIRECTORY_DATABASE_FILE", "directory.db"),
		PepperFile:           getEnvOrDefault("DIRECTORY_PEPPER_FILE", "pepper"),
		SessionTTL:           getEnvDurationOrDefault("SESSION_TTL", 24*time.Hour),
		Env:                  getEnvOrDefault("ENV", "dev"),
		LogLevel:             getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:            getEnvOrDefault("LOG_FORMAT", "json"),
		ShutdownGracePeriod:  getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
		HousekeepingInterval: getEnvDurationOrDefault("HOUSEKEEPING_INTERVAL", 1*time.Hour),
		SkipSeed:             os.Getenv("DIRECTORY_SKIP_SEED") == "true",
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	return defaultValue
}
