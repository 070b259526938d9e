package app

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Issuer         string // Issuer claim for session tokens
	BootstrapToken string // Optional: token required to perform bootstrap

	SessionTTL          time.Duration // Session token lifetime (default: 12h)
	SigningKeyFile      string        // Optional: path to a PKCS#8 Ed25519 key; ephemeral key when unset
	DatabaseFile        string        // Path to SQLite database file (default: ./rollcall.db)
	PepperFile          string        // Path to the password hashing pepper file (default: ./pepper)
	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 8080)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
}

// LoadConfig reads configuration from the environment. In dev a local
// .env file is loaded first so the service runs without exported vars.
func LoadConfig() Config {
	if getEnvOrDefault("ENV", "dev") == "dev" {
		_ = godotenv.Load()
	}

	cfg := Config{
		Issuer:              getEnvOrDefault("ROLLCALL_ISSUER", "rollcall"),
		BootstrapToken:      os.Getenv("BOOTSTRAP_TOKEN"),
		SessionTTL:          getEnvDurationOrDefault("ROLLCALL_SESSION_TTL", 12*time.Hour),
		SigningKeyFile:      os.Getenv("ROLLCALL_SIGNING_KEY_FILE"),
		DatabaseFile:        getEnvOrDefault("ROLLCALL_DATABASE_FILE", "rollcall.db"),
		PepperFile:          getEnvOrDefault("ROLLCALL_PEPPER_FILE", "pepper"),
		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
	}

	return cfg
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
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
