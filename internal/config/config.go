package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds the whole application configuration, populated from
// environment variables.
type Config struct {
	App        AppConfig
	Database   DatabaseConfig
	Redis      RedisConfig
	JWT        JWTConfig
	Images     ImagesConfig
	Collection CollectionConfig
}

type AppConfig struct {
	Name           string
	Environment    string // development, staging, production
	Port           string
	Version        string
	AllowedOrigins []string
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
	SSLMode  string
	MaxConns int
	MinConns int
}

type RedisConfig struct {
	Host     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret             string
	AccessTokenExpiry  time.Duration
	RefreshTokenExpiry time.Duration
}

// ImagesConfig configures the image store. Provider selects the backend:
// "cloudflare" talks to Cloudflare Images through the API token (the token
// and account hash are server-side secrets, never sent to clients),
// "minio" keeps assets on a self-hosted bucket.
type ImagesConfig struct {
	Provider string // cloudflare, minio

	CloudflareAccountID   string
	CloudflareAPIToken    string
	CloudflareAccountHash string

	MinIOEndpoint  string
	MinIOAccessKey string
	MinIOSecretKey string
	MinIOBucket    string
	MinIOUseSSL    bool
}

// CollectionConfig tunes the in-memory collection snapshot and the
// home valuation report.
type CollectionConfig struct {
	ResyncSchedule   string // cron spec, empty disables periodic resync
	HomeCategoryName string
	HomeSubcategory  string
}

// Load reads config from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Collection API"),
			Environment: getEnv("APP_ENV", "development"),
			Port:        getEnv("APP_PORT", "8080"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
			AllowedOrigins: strings.Split(
				getEnv("ALLOWED_ORIGINS", "http://localhost:3000"), ","),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvInt("DB_PORT", 5432),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Database: getEnv("DB_NAME", "collection"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
			MaxConns: getEnvInt("DB_MAX_CONNS", 25),
			MinConns: getEnvInt("DB_MIN_CONNS", 5),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		JWT: JWTConfig{
			Secret:             getEnv("JWT_SECRET", "your-secret-key-change-in-production"),
			AccessTokenExpiry:  time.Duration(getEnvInt("JWT_ACCESS_EXPIRY", 15)) * time.Minute,
			RefreshTokenExpiry: time.Duration(getEnvInt("JWT_REFRESH_EXPIRY", 72)) * time.Hour,
		},
		Images: ImagesConfig{
			Provider:              getEnv("IMAGES_PROVIDER", "cloudflare"),
			CloudflareAccountID:   getEnv("CLOUDFLARE_ACCOUNT_ID", ""),
			CloudflareAPIToken:    getEnv("CLOUDFLARE_API_TOKEN", ""),
			CloudflareAccountHash: getEnv("CLOUDFLARE_ACCOUNT_HASH", ""),
			MinIOEndpoint:         getEnv("MINIO_ENDPOINT", "localhost:9000"),
			MinIOAccessKey:        getEnv("MINIO_ACCESS_KEY", "minioadmin"),
			MinIOSecretKey:        getEnv("MINIO_SECRET_KEY", "minioadmin"),
			MinIOBucket:           getEnv("MINIO_BUCKET", "collection"),
			MinIOUseSSL:           getEnvBool("MINIO_USE_SSL", false),
		},
		Collection: CollectionConfig{
			ResyncSchedule:   getEnv("COLLECTION_RESYNC_SCHEDULE", "@every 15m"),
			HomeCategoryName: getEnv("HOME_CATEGORY_NAME", "Vintage Star Wars - The Original Trilogy"),
			HomeSubcategory:  getEnv("HOME_SUBCATEGORY_NAME", "The Original Trilogy - collection"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks that critical config is usable.
func (c *Config) Validate() error {
	if c.App.Environment == "production" {
		if c.JWT.Secret == "your-secret-key-change-in-production" {
			return fmt.Errorf("JWT_SECRET must be set in production")
		}
		if c.Database.Password == "" {
			return fmt.Errorf("DB_PASSWORD must be set in production")
		}
		if c.Images.Provider == "cloudflare" && c.Images.CloudflareAPIToken == "" {
			return fmt.Errorf("CLOUDFLARE_API_TOKEN must be set in production")
		}
	}

	switch c.Images.Provider {
	case "cloudflare", "minio":
	default:
		return fmt.Errorf("unknown IMAGES_PROVIDER %q", c.Images.Provider)
	}

	return nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
