package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the catalog server.
type Config struct {
	TMDB      TMDBConfig
	Redis     RedisConfig
	RateLimit RateLimitConfig
	Log       LogConfig
	Port      string
	StaticDir string
}

// TMDBConfig holds TMDB API configuration.
type TMDBConfig struct {
	APIKey        string
	BaseURL       string
	Timeout       time.Duration
	RetryAttempts uint
	RatePerSecond float64
}

// RedisConfig holds Redis configuration.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// Enabled reports whether a Redis address was configured.
func (r RedisConfig) Enabled() bool {
	return r.Addr != ""
}

// RateLimitConfig holds the per-IP request limit applied to /api routes.
type RateLimitConfig struct {
	Max           int
	WindowSeconds int
}

// LogConfig holds logger configuration.
type LogConfig struct {
	Level slog.Level
	File  string
}

// DBConfig holds PostgreSQL configuration.
type DBConfig struct {
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
	SSLRootCert string
}

// DSN returns the PostgreSQL connection string.
func (d DBConfig) DSN() string {
	dsn := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
	if d.SSLRootCert != "" {
		dsn += fmt.Sprintf(" sslrootcert=%s", d.SSLRootCert)
	}
	return dsn
}

// BrowseConfig holds configuration for the terminal front end.
type BrowseConfig struct {
	APIBaseURL   string
	StoreBackend string
	StorePath    string
	DB           DBConfig
	Redis        RedisConfig
	LogFile      string
}

// Load reads server configuration from environment variables.
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	timeoutSec, err := strconv.Atoi(getEnv("TMDB_TIMEOUT_SECONDS", "0"))
	if err != nil || timeoutSec < 0 {
		return nil, fmt.Errorf("invalid TMDB_TIMEOUT_SECONDS: %q", os.Getenv("TMDB_TIMEOUT_SECONDS"))
	}
	attempts, err := strconv.Atoi(getEnv("TMDB_RETRY_ATTEMPTS", "1"))
	if err != nil || attempts < 1 {
		return nil, fmt.Errorf("invalid TMDB_RETRY_ATTEMPTS: %q", os.Getenv("TMDB_RETRY_ATTEMPTS"))
	}
	ratePerSec, err := strconv.ParseFloat(getEnv("TMDB_RATE_LIMIT", "40"), 64)
	if err != nil || ratePerSec < 0 {
		return nil, fmt.Errorf("invalid TMDB_RATE_LIMIT: %q", os.Getenv("TMDB_RATE_LIMIT"))
	}

	redisDB, _ := strconv.Atoi(getEnv("REDIS_DB", "0"))
	rateLimitMax, _ := strconv.Atoi(getEnv("RATE_LIMIT_MAX", "100"))
	rateLimitWindow, _ := strconv.Atoi(getEnv("RATE_LIMIT_WINDOW_SECONDS", "60"))

	cfg := &Config{
		TMDB: TMDBConfig{
			APIKey:        getEnv("TMDB_API_KEY", ""),
			BaseURL:       strings.TrimRight(getEnv("TMDB_BASE_URL", "https://api.themoviedb.org/3"), "/"),
			Timeout:       time.Duration(timeoutSec) * time.Second,
			RetryAttempts: uint(attempts),
			RatePerSecond: ratePerSec,
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       redisDB,
		},
		RateLimit: RateLimitConfig{
			Max:           rateLimitMax,
			WindowSeconds: rateLimitWindow,
		},
		Log: LogConfig{
			Level: parseLevel(getEnv("LOG_LEVEL", "info")),
			File:  getEnv("LOG_FILE", ""),
		},
		Port:      getEnv("PORT", "5000"),
		StaticDir: getEnv("STATIC_DIR", "."),
	}

	if cfg.TMDB.APIKey == "" {
		slog.Warn("TMDB_API_KEY not set, upstream requests will be rejected")
	}

	return cfg, nil
}

// LoadBrowse reads front-end configuration from environment variables.
func LoadBrowse() (*BrowseConfig, error) {
	_ = godotenv.Load()

	backend := strings.ToLower(getEnv("STORE_BACKEND", "sqlite"))
	switch backend {
	case "sqlite", "redis", "postgres", "memory":
	default:
		return nil, fmt.Errorf("unknown STORE_BACKEND %q", backend)
	}

	dbPort, _ := strconv.Atoi(getEnv("DB_PORT", "5432"))
	redisDB, _ := strconv.Atoi(getEnv("REDIS_DB", "0"))

	return &BrowseConfig{
		APIBaseURL:   strings.TrimRight(getEnv("API_BASE_URL", "http://localhost:5000"), "/"),
		StoreBackend: backend,
		StorePath:    getEnv("STORE_PATH", "browse.db"),
		DB: DBConfig{
			Host:        getEnv("DB_HOST", "localhost"),
			Port:        dbPort,
			User:        getEnv("DB_USER", "postgres"),
			Password:    getEnv("DB_PASSWORD", "postgres"),
			DBName:      getEnv("DB_NAME", "tmdb_browser"),
			SSLMode:     getEnv("DB_SSLMODE", "disable"),
			SSLRootCert: getEnv("DB_SSLROOTCERT", ""),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "127.0.0.1:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       redisDB,
		},
		LogFile: getEnv("LOG_FILE", "browse.log"),
	}, nil
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
