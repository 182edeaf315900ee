package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
)

const (
	DataSourceMemory = "memory"
	DataSourceMongo  = "mongo"
)

var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds all configuration for the application
type Config struct {
	Port           string
	DataSource     string
	MongoURI       string
	MongoDB        string
	LogLevel       string
	LogFormat      string
	Locale         string
	Currency       string
	CORSOrigins    []string
	DigestSchedule string
	MetricsEnabled bool
}

// LoadConfig reads .env (if present) and the environment.
func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		logrus.WithError(err).Warn("Failed to load .env file")
	}

	return &Config{
		Port:           getEnvOrDefault("PORT", "8080"),
		DataSource:     strings.ToLower(getEnvOrDefault("DATA_SOURCE", DataSourceMemory)),
		MongoURI:       os.Getenv("MONGO_URI"),
		MongoDB:        getEnvOrDefault("MONGO_DB", "giftwish"),
		LogLevel:       getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:      getEnvOrDefault("LOG_FORMAT", "json"),
		Locale:         getEnvOrDefault("LOCALE", "en-US"),
		Currency:       strings.ToUpper(getEnvOrDefault("CURRENCY", "USD")),
		CORSOrigins:    splitList(getEnvOrDefault("CORS_ORIGINS", "http://localhost:3000")),
		DigestSchedule: lookupEnv("DIGEST_SCHEDULE", "@hourly"),
		MetricsEnabled: getBoolOrDefault("METRICS_ENABLED", true),
	}
}

// Validate checks the settings that would otherwise fail later at startup.
func (c *Config) Validate() error {
	switch c.DataSource {
	case DataSourceMemory:
	case DataSourceMongo:
		if c.MongoURI == "" {
			return fmt.Errorf("%w: MONGO_URI is required when DATA_SOURCE=mongo", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unknown DATA_SOURCE %q", ErrInvalidConfig, c.DataSource)
	}

	if _, err := language.Parse(c.Locale); err != nil {
		return fmt.Errorf("%w: LOCALE %q: %v", ErrInvalidConfig, c.Locale, err)
	}
	if _, err := currency.ParseISO(c.Currency); err != nil {
		return fmt.Errorf("%w: CURRENCY %q: %v", ErrInvalidConfig, c.Currency, err)
	}
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// lookupEnv is like getEnvOrDefault but keeps an explicitly empty value.
func lookupEnv(key, defaultValue string) string {
	if value, ok := os.LookupEnv(key); ok {
		return strings.TrimSpace(value)
	}
	return defaultValue
}

func getBoolOrDefault(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		logrus.WithField("key", key).Warnf("Invalid boolean %q, using default", value)
		return defaultValue
	}
	return b
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
