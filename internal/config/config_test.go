package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "person_directory", cfg.DBName)
	assert.Equal(t, 5432, cfg.DBPort)
	assert.Equal(t, []string{".jpg", ".jpeg", ".png", ".gif"}, cfg.AllowedImageExt)
	assert.Equal(t, 5, cfg.MaxImageSizeMB)
}

func TestLoadConfig_FromEnvironment(t *testing.T) {
	t.Setenv("SERVER_PORT", "9000")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PORT", "6432")
	t.Setenv("DB_PASSWORD", "s3cret")
	t.Setenv("ALLOWED_IMAGE_EXTENSIONS", ".png, .webp")
	t.Setenv("MAX_IMAGE_SIZE_MB", "10")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.ServerPort)
	assert.Equal(t, "db.internal", cfg.DBHost)
	assert.Equal(t, 6432, cfg.DBPort)
	assert.Equal(t, []string{".png", ".webp"}, cfg.AllowedImageExt)
	assert.Equal(t, 10, cfg.MaxImageSizeMB)
}

func TestGetDBConnString(t *testing.T) {
	cfg := &Config{
		DBHost:     "localhost",
		DBPort:     5432,
		DBName:     "person_directory",
		DBUser:     "postgres",
		DBPassword: "p@ss word",
		DBSSLMode:  "disable",
	}

	conn := cfg.GetDBConnString()
	assert.Contains(t, conn, "postgres://")
	assert.Contains(t, conn, "localhost:5432")
	assert.Contains(t, conn, "person_directory")
	assert.Contains(t, conn, "sslmode=disable")
	// Credentials with special characters survive URL encoding.
	assert.NotContains(t, conn, "p@ss word")
}
