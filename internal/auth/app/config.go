package app

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseDriver      string        // Optional: sqlite or postgres (default: sqlite)
	DatabaseFile        string        // Optional: path to SQLite database file (default: ./auth.db)
	DatabaseDSN         string        // Required for postgres: pgx connection string
	PepperFile          string        // Optional: path to file containing pepper for password hashing (default: ./pepper)
	EmailKey            string        // Optional: key material for email encryption
	EmailKeyFile        string        // Optional: file holding email key material, wins over EmailKey
	SessionSecret       string        // Optional: session cookie secret, random per process when unset
	SessionName         string        // Optional: session cookie name (default: USERAUTH_SESSION)
	SessionMaxAge       int           // Optional: session cookie lifetime in seconds (default: 1800)
	AccessPolicyFile    string        // Optional: YAML access policy replacing the built-in one
	AdminUserID         string        // Optional: administrator registered at startup
	AdminPassword       string        // Optional: generated and printed once when unset
	AdminName           string        // Optional: administrator display name (default: admin)
	AdminEmail          string        // Optional
	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 8080)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
}

// LoadConfig reads the configuration from the environment after merging
// .env.local and .env from the working directory. Variables already set in
// the environment are never overridden.
func LoadConfig() (Config, error) {
	if err := loadDotEnv(".env.local", ".env"); err != nil {
		return Config{}, err
	}

	cfg := Config{
		DatabaseDriver:      strings.ToLower(getEnvOrDefault("AUTH_DATABASE_DRIVER", "sqlite")),
		DatabaseFile:        getEnvOrDefault("AUTH_DATABASE_FILE", "auth.db"),
		DatabaseDSN:         os.Getenv("AUTH_DATABASE_DSN"),
		PepperFile:          getEnvOrDefault("AUTH_PEPPER_FILE", "pepper"),
		EmailKey:            os.Getenv("AUTH_EMAIL_KEY"),
		EmailKeyFile:        os.Getenv("AUTH_EMAIL_KEY_FILE"),
		SessionName:         os.Getenv("AUTH_SESSION_NAME"),
		SessionMaxAge:       getEnvIntOrDefault("AUTH_SESSION_MAX_AGE", 1800),
		AccessPolicyFile:    os.Getenv("AUTH_ACCESS_POLICY_FILE"),
		AdminUserID:         os.Getenv("AUTH_ADMIN_USER_ID"),
		AdminPassword:       os.Getenv("AUTH_ADMIN_PASSWORD"),
		AdminName:           os.Getenv("AUTH_ADMIN_NAME"),
		AdminEmail:          os.Getenv("AUTH_ADMIN_EMAIL"),
		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
	}

	secret, err := readSecret(os.Getenv("AUTH_SESSION_SECRET_FILE"), os.Getenv("AUTH_SESSION_SECRET"))
	if err != nil {
		return Config{}, err
	}
	cfg.SessionSecret = secret

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports settings that cannot work together.
func (c Config) Validate() error {
	switch c.DatabaseDriver {
	case "sqlite":
	case "postgres":
		if c.DatabaseDSN == "" {
			return errors.New("AUTH_DATABASE_DSN is required for the postgres driver")
		}
	default:
		return errors.New("AUTH_DATABASE_DRIVER must be sqlite or postgres")
	}
	if c.Port <= 0 || c.Port > 65535 {
		return errors.New("PORT out of range")
	}
	return nil
}

func loadDotEnv(files ...string) error {
	for _, f := range files {
		if _, err := os.Stat(f); errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return err
		}
	}
	return nil
}

// readSecret prefers the contents of path over value.
func readSecret(path, value string) (string, error) {
	if path == "" {
		return value, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(b)), nil
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

	// Bare integers are seconds.
	if seconds, err := strconv.Atoi(value); err == nil {
		return time.Duration(seconds) * time.Second
	}

	return defaultValue
}
