package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("APP_ENV", "production")
	t.Setenv("DATABASE_DSN", "root:root@tcp(localhost:3306)/ramahomes?parseTime=true")
	t.Setenv("JWT_SECRET", "unit-test-secret")
	t.Setenv("ADMIN_EMAIL", "Admin@Example.com")
	t.Setenv("ADMIN_PASSWORD", "changeme")
	t.Setenv("CLOUDINARY_CLOUD_NAME", "demo")
	t.Setenv("CLOUDINARY_API_KEY", "key")
	t.Setenv("CLOUDINARY_API_SECRET", "secret")
}

func TestLoadDefaults(t *testing.T) {
	setRequired(t)
	t.Setenv("PORT", "")
	t.Setenv("JWT_EXPIRES_IN", "")
	t.Setenv("MAX_UPLOAD_MB", "")
	t.Setenv("CLIENT_ORIGINS", "")
	t.Setenv("CLOUDINARY_FOLDER", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "5000", cfg.Server.Port)
	assert.Equal(t, 168*time.Hour, cfg.JWT.Expiry)
	assert.Equal(t, "ramahomes", cfg.JWT.Issuer)
	assert.Equal(t, int64(25*1024*1024), cfg.Upload.MaxFileBytes)
	assert.Equal(t, "ramahomes/properties", cfg.Cloudinary.Folder)
	assert.Equal(t, []string{"http://localhost:5174", "http://localhost:3000"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, "admin@example.com", cfg.Admin.Email)
}

func TestLoadOverrides(t *testing.T) {
	setRequired(t)
	t.Setenv("PORT", "8080")
	t.Setenv("JWT_EXPIRES_IN", "24h")
	t.Setenv("MAX_UPLOAD_MB", "5")
	t.Setenv("CLIENT_ORIGINS", " https://admin.ramahomes.ng , https://ramahomes.ng ")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 24*time.Hour, cfg.JWT.Expiry)
	assert.Equal(t, int64(5*1024*1024), cfg.Upload.MaxFileBytes)
	assert.Equal(t, []string{"https://admin.ramahomes.ng", "https://ramahomes.ng"}, cfg.CORS.AllowedOrigins)
}

func TestLoadRejectsBadDurationsAndSizes(t *testing.T) {
	setRequired(t)
	t.Setenv("JWT_EXPIRES_IN", "soon")
	t.Setenv("MAX_UPLOAD_MB", "-3")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 168*time.Hour, cfg.JWT.Expiry)
	assert.Equal(t, int64(25*1024*1024), cfg.Upload.MaxFileBytes)
}

func TestLoadFailsOnMissingRequired(t *testing.T) {
	setRequired(t)
	t.Setenv("JWT_SECRET", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")
}
