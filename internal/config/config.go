// Package config loads service configuration from environment variables
// with sensible development defaults.
package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
)

// Config holds every runtime setting of the service.
type Config struct {
	ServerPort string

	DBHost     string
	DBPort     int
	DBName     string
	DBUser     string
	DBPassword string
	DBSSLMode  string

	AWSRegion       string
	S3BucketName    string
	ImageBaseURL    string
	AllowedImageExt []string
	MaxImageSizeMB  int

	LogLevel         string
	CORSAllowOrigins string
}

// LoadConfig reads configuration from the environment.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		ServerPort:       getEnv("SERVER_PORT", "8080"),
		DBHost:           getEnv("DB_HOST", "localhost"),
		DBPort:           getEnvInt("DB_PORT", 5432),
		DBName:           getEnv("DB_NAME", "person_directory"),
		DBUser:           getEnv("DB_USER", "postgres"),
		DBPassword:       getEnv("DB_PASSWORD", ""),
		DBSSLMode:        getEnv("DB_SSLMODE", "disable"),
		AWSRegion:        getEnv("AWS_REGION", "us-east-1"),
		S3BucketName:     getEnv("S3_BUCKET_NAME", ""),
		ImageBaseURL:     getEnv("IMAGE_BASE_URL", ""),
		AllowedImageExt:  splitList(getEnv("ALLOWED_IMAGE_EXTENSIONS", ".jpg,.jpeg,.png,.gif")),
		MaxImageSizeMB:   getEnvInt("MAX_IMAGE_SIZE_MB", 5),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		CORSAllowOrigins: getEnv("CORS_ALLOW_ORIGINS", "http://localhost:3000"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// GetDBConnString builds the PostgreSQL connection string.
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		url.QueryEscape(c.DBUser),
		url.QueryEscape(c.DBPassword),
		c.DBHost,
		c.DBPort,
		c.DBName,
		c.DBSSLMode,
	)
}

func (c *Config) validate() error {
	if c.DBHost == "" {
		return fmt.Errorf("database host is required")
	}
	if c.DBPort <= 0 || c.DBPort > 65535 {
		return fmt.Errorf("invalid database port: %d", c.DBPort)
	}
	if c.DBName == "" {
		return fmt.Errorf("database name is required")
	}
	if c.DBUser == "" {
		return fmt.Errorf("database user is required")
	}
	if c.MaxImageSizeMB <= 0 {
		return fmt.Errorf("invalid max image size: %d", c.MaxImageSizeMB)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}

func splitList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
