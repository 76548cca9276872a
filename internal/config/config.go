// Package config loads the service configuration from the environment.
package config

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

var ErrMissingJWTSecret = errors.New("JWT_SECRET is required")

type Config struct {
	Port     string
	LogLevel string
	Database DatabaseConfig
	Redis    RedisConfig
	JWT      JWTConfig

	RateLimit         int
	RateLimitWindow   time.Duration
	StatsMaxRangeDays int
}

type DatabaseConfig struct {
	Driver       string
	Host         string
	Port         string
	User         string
	Password     string
	Name         string
	SSLMode      string
	Path         string
	MaxOpenConns int
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret string
	Issuer string
	TTL    time.Duration
}

const (
	defaultPort              = "8080"
	defaultDriver            = "pgx"
	defaultSQLitePath        = "data/kanso-home.db"
	defaultMaxOpenConns      = 25
	defaultJWTIssuer         = "kanso-home"
	defaultJWTTTL            = 24 * time.Hour
	defaultRateLimit         = 100
	defaultRateLimitWindow   = time.Minute
	defaultStatsMaxRangeDays = 366
)

// Load reads configuration from the first .env file found and the environment.
// Variables already set in the environment take precedence over the file.
func Load() (*Config, error) {
	loadEnvFile()

	cfg := &Config{
		Port:     getEnvString("PORT", defaultPort),
		LogLevel: getEnvString("LOG_LEVEL", "info"),
		Database: databaseFromEnv(),
		Redis: RedisConfig{
			Host:     getEnvString("REDIS_HOST", "localhost"),
			Port:     getEnvString("REDIS_PORT", "6379"),
			Password: getEnvString("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		JWT: JWTConfig{
			Secret: getEnvString("JWT_SECRET", ""),
			Issuer: getEnvString("JWT_ISSUER", defaultJWTIssuer),
			TTL:    getEnvDuration("JWT_TTL", defaultJWTTTL),
		},
		RateLimit:         getEnvInt("RATE_LIMIT", defaultRateLimit),
		RateLimitWindow:   getEnvDuration("RATE_LIMIT_WINDOW", defaultRateLimitWindow),
		StatsMaxRangeDays: getEnvInt("STATS_MAX_RANGE_DAYS", defaultStatsMaxRangeDays),
	}

	if cfg.JWT.Secret == "" {
		return nil, ErrMissingJWTSecret
	}

	return cfg, nil
}

// ReportConfig is the subset of Config needed by tools that read statistics
// without serving HTTP.
type ReportConfig struct {
	Database          DatabaseConfig
	StatsMaxRangeDays int
}

// LoadReport reads the database settings and the statistics range limit.
// JWT_SECRET is not required.
func LoadReport() *ReportConfig {
	loadEnvFile()
	return &ReportConfig{
		Database:          databaseFromEnv(),
		StatsMaxRangeDays: getEnvInt("STATS_MAX_RANGE_DAYS", defaultStatsMaxRangeDays),
	}
}

func databaseFromEnv() DatabaseConfig {
	return DatabaseConfig{
		Driver:       getEnvString("DB_DRIVER", defaultDriver),
		Host:         getEnvString("DB_HOST", "localhost"),
		Port:         getEnvString("DB_PORT", "5432"),
		User:         getEnvString("DB_USER", ""),
		Password:     getEnvString("DB_PASSWORD", ""),
		Name:         getEnvString("DB_NAME", ""),
		SSLMode:      getEnvString("DB_SSLMODE", "disable"),
		Path:         getEnvString("DB_PATH", defaultSQLitePath),
		MaxOpenConns: getEnvInt("DB_MAX_OPEN_CONNS", defaultMaxOpenConns),
	}
}

func loadEnvFile() {
	for _, path := range getEnvPaths() {
		if _, err := os.Stat(path); err == nil {
			_ = godotenv.Load(path)
			return
		}
	}
}

// getEnvPaths lists the .env candidates, the working directory first.
func getEnvPaths() []string {
	cwd, err := os.Getwd()
	if err != nil {
		return nil
	}

	parent := filepath.Dir(cwd)
	return []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(parent, ".env"),
		filepath.Join(filepath.Dir(parent), ".env"),
	}
}

func getEnvString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

// getEnvDuration accepts "30s", "1m" or a bare number of seconds.
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
		if secs, err := strconv.Atoi(value); err == nil {
			return time.Duration(secs) * time.Second
		}
	}
	return defaultValue
}
