package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port             string
	DBPath           string
	SecretKey        string
	LogLevel         string
	Environment      string
	CookieSecure     bool
	ReminderCron     string
	ReminderLeadDays int
}

// Load reads configuration from environment variables, preceded by a .env
// file when one is present. Existing env variables win over .env entries.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:         getEnv("PORT", "8080"),
		DBPath:       getEnv("DB_PATH", filepath.Join("data", "selene.db")),
		SecretKey:    getEnv("SECRET_KEY", ""),
		LogLevel:     strings.ToLower(getEnv("LOG_LEVEL", "info")),
		Environment:  strings.ToLower(getEnv("ENVIRONMENT", "development")),
		ReminderCron: getEnv("REMINDER_CRON", "0 9 * * *"),
	}

	if cfg.SecretKey == "" {
		return nil, fmt.Errorf("SECRET_KEY is not set")
	}

	cookieSecure, err := getEnvBool("COOKIE_SECURE", false)
	if err != nil {
		return nil, err
	}
	cfg.CookieSecure = cookieSecure

	leadDays, err := getEnvInt("REMINDER_LEAD_DAYS", 2)
	if err != nil {
		return nil, err
	}
	if leadDays < 0 {
		return nil, fmt.Errorf("REMINDER_LEAD_DAYS must not be negative")
	}
	cfg.ReminderLeadDays = leadDays

	return cfg, nil
}

func getEnv(key string, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}

func getEnvBool(key string, fallback bool) (bool, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	parsed, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("invalid %s: %w", key, err)
	}
	return parsed, nil
}

func getEnvInt(key string, fallback int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return parsed, nil
}
