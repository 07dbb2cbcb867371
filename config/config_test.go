package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig(t *testing.T) {
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_USER", "driveport")
	t.Setenv("DB_NAME", "driveport")
	t.Setenv("PORT", "9090")
	t.Setenv("REDIS_ADDR", "cache.internal:6379")
	t.Setenv("PAYSTACK_SECRET_KEY", "sk_test_x")

	cfg := LoadConfig()

	assert.Equal(t, "db.internal", cfg.DBHost)
	assert.Equal(t, "driveport", cfg.DBUser)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "cache.internal:6379", cfg.RedisAddr)
	assert.Equal(t, "sk_test_x", cfg.PaystackSecretKey)
	assert.Equal(t, "https://api.paystack.co", cfg.PaystackBaseURL)
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("REDIS_ADDR", "")
	t.Setenv("DB_HOST", "localhost")
	t.Setenv("APP_BASE_URL", "")
	t.Setenv("CLOUDINARY_UPLOAD_PRESET", "")

	cfg := LoadConfig()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, "http://localhost:8080", cfg.AppBaseURL)
	assert.Equal(t, "driveport_cars", cfg.CloudinaryPreset)
}
