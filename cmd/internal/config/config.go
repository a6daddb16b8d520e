package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Config holds the configuration values for the application.
type Config struct {
	DatabaseDriver string
	DatabaseURL    string
	Port           string
	LogLevel       log.Lvl
	RateLimit      float64
	CORSOrigins    []string
}

// Load reads the configuration from the environment, after loading the
// optional .env file. Unset variables fall back to their defaults.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}
	return FromEnv()
}

func FromEnv() (*Config, error) {
	driver := strings.ToLower(env("DATABASE_DRIVER", DriverSQLite))
	if driver != DriverSQLite && driver != DriverPostgres {
		return nil, fmt.Errorf("unsupported DATABASE_DRIVER %q", driver)
	}

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		if driver == DriverPostgres {
			return nil, errors.New("DATABASE_URL is required for the postgres driver")
		}
		dbURL = "./patients_appointments.db"
	}

	level, err := parseLevel(env("LOG_LEVEL", "info"))
	if err != nil {
		return nil, err
	}

	rateLimit, err := strconv.ParseFloat(env("RATE_LIMIT", "0"), 64)
	if err != nil || rateLimit < 0 {
		return nil, fmt.Errorf("invalid RATE_LIMIT %q", os.Getenv("RATE_LIMIT"))
	}

	return &Config{
		DatabaseDriver: driver,
		DatabaseURL:    dbURL,
		Port:           env("PORT", "8000"),
		LogLevel:       level,
		RateLimit:      rateLimit,
		CORSOrigins:    splitList(env("CORS_ORIGINS", "*")),
	}, nil
}

func env(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func parseLevel(s string) (log.Lvl, error) {
	switch strings.ToLower(s) {
	case "debug":
		return log.DEBUG, nil
	case "info":
		return log.INFO, nil
	case "warn":
		return log.WARN, nil
	case "error":
		return log.ERROR, nil
	case "off":
		return log.OFF, nil
	}
	return 0, fmt.Errorf("invalid LOG_LEVEL %q", s)
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
