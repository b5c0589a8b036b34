// Package config handles application configuration loading from environment
// variables. It provides a centralized Config struct used across the application.
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config holds all application configuration values loaded from the environment.
type Config struct {
	// Server settings
	Host string
	Port string
	Env  string // "development", "production", "testing"

	// MongoDB connection
	MongoURI string
	MongoDB  string

	// Redis (session store)
	RedisHost     string
	RedisPort     string
	RedisPassword string

	// S3-compatible object storage (blob store)
	S3Endpoint  string
	S3Region    string
	S3AccessKey string
	S3SecretKey string
	S3Bucket    string
	S3PublicURL string // optional CDN/direct URL for uploaded files

	// Dashboard frontend origin allowed by CORS
	DashboardOrigin string

	// Initial admin account seeded in development
	SeedAdminEmail    string
	SeedAdminPassword string
}

// Load reads configuration from the environment, after loading a local .env
// file when one exists. Defaults suit development; production mode rejects
// placeholder credentials.
func Load() (*Config, error) {
	// Missing .env is fine; containers inject real environment variables.
	_ = godotenv.Load()

	cfg := &Config{
		Host: envOrDefault("APP_HOST", "0.0.0.0"),
		Port: envOrDefault("APP_PORT", "8080"),
		Env:  envOrDefault("APP_ENV", "development"),

		MongoURI: envOrDefault("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:  envOrDefault("MONGO_DB", "eventdeck"),

		RedisHost:     envOrDefault("REDIS_HOST", "localhost"),
		RedisPort:     envOrDefault("REDIS_PORT", "6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),

		S3Endpoint:  os.Getenv("S3_ENDPOINT"),
		S3Region:    envOrDefault("S3_REGION", "fsn1"),
		S3AccessKey: os.Getenv("S3_ACCESS_KEY"),
		S3SecretKey: os.Getenv("S3_SECRET_KEY"),
		S3Bucket:    envOrDefault("S3_BUCKET", "eventdeck-media"),
		S3PublicURL: os.Getenv("S3_PUBLIC_URL"),

		DashboardOrigin: envOrDefault("DASHBOARD_ORIGIN", "http://localhost:3000"),

		SeedAdminEmail:    envOrDefault("SEED_ADMIN_EMAIL", "admin@eventdeck.local"),
		SeedAdminPassword: envOrDefault("SEED_ADMIN_PASSWORD", "changeme"),
	}

	if cfg.Env == "production" {
		if cfg.SeedAdminPassword == "changeme" {
			return nil, fmt.Errorf("SEED_ADMIN_PASSWORD must be set in production")
		}
	}

	return cfg, nil
}

// Addr returns the server listen address (host:port).
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

// RedisAddr returns the Redis address (host:port).
func (c *Config) RedisAddr() string {
	return fmt.Sprintf("%s:%s", c.RedisHost, c.RedisPort)
}

// IsDev returns true if the application is running in development mode.
func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// envOrDefault reads an environment variable, returning a fallback if unset or empty.
func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
