package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/AlibekovAA/users-api/internal/common/constants"
)

var (
	ErrMissingRequiredEnv = errors.New("missing required environment variable")
	ErrUnsupportedDriver  = errors.New("unsupported database driver")
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type APIConfig struct {
	HTTPPort           string
	DatabaseDriver     string
	DatabaseURL        string
	SQLitePath         string
	RequestTimeout     time.Duration
	RateLimitRPS       float64
	RateLimitBurst     int
	CORSAllowedOrigins []string
	// TrustProxyHeaders lets the rate limiter key clients by X-Real-IP or
	// X-Forwarded-For. Enable only behind a proxy that overwrites them.
	TrustProxyHeaders  bool
}

// LoadAPIConfig reads the environment, after applying a local .env file if one exists.
func LoadAPIConfig() (APIConfig, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return APIConfig{}, fmt.Errorf("failed to load .env: %w", err)
	}

	driver := strings.ToLower(getEnv("DATABASE_DRIVER", constants.DefaultDatabaseDriver))

	cfg := APIConfig{
		HTTPPort:           getEnv("HTTP_PORT", constants.DefaultHTTPPort),
		DatabaseDriver:     driver,
		SQLitePath:         getEnv("SQLITE_PATH", constants.DefaultSQLitePath),
		RequestTimeout:     getDurationEnv("REQUEST_TIMEOUT", constants.DefaultRequestTimeout),
		RateLimitRPS:       getFloatEnv("RATE_LIMIT_RPS", constants.DefaultRateLimitRPS),
		RateLimitBurst:     getIntEnv("RATE_LIMIT_BURST", constants.DefaultRateLimitBurst),
		CORSAllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", constants.DefaultCORSOrigins)),
		TrustProxyHeaders:  getBoolEnv("TRUST_PROXY_HEADERS", false),
	}

	switch driver {
	case DriverPostgres:
		databaseURL, err := mustEnv("DATABASE_URL")
		if err != nil {
			return APIConfig{}, err
		}
		cfg.DatabaseURL = databaseURL
	case DriverSQLite:
	default:
		return APIConfig{}, fmt.Errorf("%w: %s", ErrUnsupportedDriver, driver)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func mustEnv(key string) (string, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return "", fmt.Errorf("%w: %s", ErrMissingRequiredEnv, key)
	}
	return v, nil
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}

func getIntEnv(key string, fallback int) int {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return i
}

func getFloatEnv(key string, fallback float64) float64 {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback
	}
	return f
}

func getBoolEnv(key string, fallback bool) bool {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
