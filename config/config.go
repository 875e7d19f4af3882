package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server     ServerConfig
	Database   DatabaseConfig
	JWT        JWTConfig
	Cloudinary CloudinaryConfig
	Admin      AdminConfig
	Upload     UploadConfig
	CORS       CORSConfig
}

type ServerConfig struct {
	Port         string
	Env          string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type DatabaseConfig struct {
	DSN             string
	MaxIdleConns    int
	MaxOpenConns    int
	ConnMaxLifetime time.Duration
}

type JWTConfig struct {
	Secret string
	Expiry time.Duration
	Issuer string
}

type CloudinaryConfig struct {
	CloudName string
	APIKey    string
	APISecret string
	Folder    string
}

// AdminConfig describes the default admin bootstrapped at startup when
// no account exists for the configured email.
type AdminConfig struct {
	Name     string
	Email    string
	Password string
}

type UploadConfig struct {
	MaxFileBytes int64
}

type CORSConfig struct {
	AllowedOrigins []string
}

var required = []string{
	"DATABASE_DSN",
	"JWT_SECRET",
	"ADMIN_EMAIL",
	"ADMIN_PASSWORD",
	"CLOUDINARY_CLOUD_NAME",
	"CLOUDINARY_API_KEY",
	"CLOUDINARY_API_SECRET",
}

// Load reads configuration from the environment. A .env file is picked
// up when present outside production.
func Load() (*Config, error) {
	if getenv("APP_ENV", "development") != "production" {
		_ = godotenv.Load()
	}

	for _, key := range required {
		if os.Getenv(key) == "" {
			return nil, fmt.Errorf("missing required environment variable: %s", key)
		}
	}

	return &Config{
		Server: ServerConfig{
			Port:         getenv("PORT", "5000"),
			Env:          getenv("APP_ENV", "development"),
			ReadTimeout:  30 * time.Second,
			WriteTimeout: 60 * time.Second,
		},
		Database: DatabaseConfig{
			DSN:             os.Getenv("DATABASE_DSN"),
			MaxIdleConns:    10,
			MaxOpenConns:    100,
			ConnMaxLifetime: time.Hour,
		},
		JWT: JWTConfig{
			Secret: os.Getenv("JWT_SECRET"),
			Expiry: getenvDuration("JWT_EXPIRES_IN", 168*time.Hour),
			Issuer: "ramahomes",
		},
		Cloudinary: CloudinaryConfig{
			CloudName: os.Getenv("CLOUDINARY_CLOUD_NAME"),
			APIKey:    os.Getenv("CLOUDINARY_API_KEY"),
			APISecret: os.Getenv("CLOUDINARY_API_SECRET"),
			Folder:    getenv("CLOUDINARY_FOLDER", "ramahomes/properties"),
		},
		Admin: AdminConfig{
			Name:     getenv("ADMIN_NAME", "Ramahomes Admin"),
			Email:    strings.ToLower(os.Getenv("ADMIN_EMAIL")),
			Password: os.Getenv("ADMIN_PASSWORD"),
		},
		Upload: UploadConfig{
			MaxFileBytes: getenvMegabytes("MAX_UPLOAD_MB", 25),
		},
		CORS: CORSConfig{
			AllowedOrigins: splitList(getenv("CLIENT_ORIGINS", "http://localhost:5174,http://localhost:3000")),
		},
	}, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}

func getenvMegabytes(key string, fallback int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback * 1024 * 1024
	}
	mb, err := strconv.ParseInt(v, 10, 64)
	if err != nil || mb <= 0 {
		return fallback * 1024 * 1024
	}
	return mb * 1024 * 1024
}

func splitList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
