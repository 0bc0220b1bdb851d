package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application.
type Config struct {
	APIPort          string
	DBPath           string
	QdrantURL        string
	QdrantCollection string

	// Embedding provider. An empty API key leaves the provider unconfigured;
	// ingestion and search then run on degraded zero vectors.
	HFAPIKey         string
	EmbeddingBaseURL string
	EmbeddingModel   string
	EmbeddingTimeout time.Duration

	// Object storage for binary uploads. An empty endpoint disables uploads.
	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioBucket    string
	MinioSecure    bool
	MinioPublicURL string

	// CronSecret optionally protects the sweep trigger. Empty means open.
	CronSecret    string
	SweepInterval time.Duration

	MaxUploadBytes int64

	LogLevel  slog.Level
	LogFormat string
}

// Load reads configuration from environment variables and returns a Config struct.
// It applies defaults for optional fields and validates the rest.
// If a .env file exists in the current directory or project root, it will be loaded automatically.
// Environment variables already set take precedence over .env file values.
func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	// Check current directory first, then walk up to find project root (where go.mod is)
	_ = godotenv.Load() // Try current directory

	wd, err := os.Getwd()
	if err == nil {
		dir := wd
		for i := 0; i < 5; i++ { // Limit search depth
			envPath := filepath.Join(dir, ".env")
			if _, err := os.Stat(envPath); err == nil {
				_ = godotenv.Load(envPath)
				break
			}
			parent := filepath.Dir(dir)
			if parent == dir {
				break // Reached filesystem root
			}
			dir = parent
		}
	}

	cfg := &Config{
		APIPort:          getEnv("API_PORT", "8080"),
		DBPath:           getEnv("DB_PATH", "./data/timecapsule.db"),
		QdrantURL:        getEnv("QDRANT_URL", "http://localhost:6333"),
		QdrantCollection: getEnv("QDRANT_COLLECTION", "items"),
		HFAPIKey:         getEnv("HF_API_KEY", ""),
		EmbeddingBaseURL: getEnv("EMBEDDING_BASE_URL", ""),
		EmbeddingModel:   getEnv("EMBEDDING_MODEL", "sentence-transformers/all-MiniLM-L6-v2"),
		MinioEndpoint:    getEnv("MINIO_ENDPOINT", ""),
		MinioAccessKey:   getEnv("MINIO_ACCESS_KEY", ""),
		MinioSecretKey:   getEnv("MINIO_SECRET_KEY", ""),
		MinioBucket:      getEnv("MINIO_BUCKET", "capsule-media"),
		MinioPublicURL:   getEnv("MINIO_PUBLIC_URL", ""),
		CronSecret:       getEnv("CRON_SECRET", ""),
		LogFormat:        getEnv("LOG_FORMAT", "text"),
	}

	cfg.MinioSecure = getEnv("MINIO_SECURE", "false") == "true"

	cfg.EmbeddingTimeout, err = parseDuration("EMBEDDING_TIMEOUT", "10s")
	if err != nil {
		return nil, err
	}

	cfg.SweepInterval, err = parseDuration("SWEEP_INTERVAL", "1m")
	if err != nil {
		return nil, err
	}
	if cfg.SweepInterval <= 0 {
		return nil, fmt.Errorf("SWEEP_INTERVAL must be greater than 0")
	}

	maxUploadStr := getEnv("MAX_UPLOAD_BYTES", "10485760") // 10 MiB
	cfg.MaxUploadBytes, err = strconv.ParseInt(maxUploadStr, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("MAX_UPLOAD_BYTES must be a valid integer: %w", err)
	}
	if cfg.MaxUploadBytes <= 0 {
		return nil, fmt.Errorf("MAX_UPLOAD_BYTES must be greater than 0")
	}

	cfg.LogLevel, err = parseLogLevel(getEnv("LOG_LEVEL", "info"))
	if err != nil {
		return nil, err
	}

	// Create the data directory if it doesn't exist (for the DB file)
	dataDir := filepath.Dir(cfg.DBPath)
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	return cfg, nil
}

// getEnv gets an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func parseDuration(key, defaultValue string) (time.Duration, error) {
	d, err := time.ParseDuration(getEnv(key, defaultValue))
	if err != nil {
		return 0, fmt.Errorf("%s must be a valid duration: %w", key, err)
	}
	return d, nil
}

func parseLogLevel(level string) (slog.Level, error) {
	switch level {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("LOG_LEVEL must be one of debug, info, warn, error")
	}
}
