// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
)

// knownWeakSecrets contains default/example secrets that must be rejected in production.
var knownWeakSecrets = []string{
	"change-me-to-32-byte-secret-key!",
	"REPLACE_WITH_YOUR_OWN_SECRET_KEY!",
}

// Config holds the application configuration loaded from environment variables.
type Config struct {
	DBPath        string `env:"MUSTAQBAL_DB_PATH" envDefault:"./data/mustaqbal.db"`
	SessionSecret string `env:"MUSTAQBAL_SESSION_SECRET,required"`
	ServerHost    string `env:"MUSTAQBAL_SERVER_HOST" envDefault:"localhost"`
	ServerPort    int    `env:"MUSTAQBAL_SERVER_PORT" envDefault:"8080"`
	Env           string `env:"MUSTAQBAL_ENV" envDefault:"development"`
	LogLevel      string `env:"MUSTAQBAL_LOG_LEVEL" envDefault:"info"`
	BaseURL       string `env:"MUSTAQBAL_BASE_URL" envDefault:"http://localhost:8080"`

	// Cache configuration
	RedisURL     string `env:"MUSTAQBAL_REDIS_URL"`                         // Optional Redis URL for distributed caching
	CachePrefix  string `env:"MUSTAQBAL_CACHE_PREFIX" envDefault:"mqb:"`    // Redis key prefix
	CacheTTL     int    `env:"MUSTAQBAL_CACHE_TTL" envDefault:"3600"`       // Default cache TTL in seconds
	CacheMaxSize int    `env:"MUSTAQBAL_CACHE_MAX_SIZE" envDefault:"10000"` // Max memory cache entries

	// Object storage (S3-compatible) for media uploads
	S3Bucket        string `env:"MUSTAQBAL_S3_BUCKET"`                          // Bucket name; local storage is used if empty
	S3Region        string `env:"MUSTAQBAL_S3_REGION" envDefault:"us-east-1"`   // Bucket region
	S3Endpoint      string `env:"MUSTAQBAL_S3_ENDPOINT"`                        // Custom endpoint (MinIO etc.)
	S3AccessKey     string `env:"MUSTAQBAL_S3_ACCESS_KEY"`                      // Static access key
	S3SecretKey     string `env:"MUSTAQBAL_S3_SECRET_KEY"`                      // Static secret key
	S3PublicBaseURL string `env:"MUSTAQBAL_S3_PUBLIC_BASE_URL"`                 // Base URL the bucket is served from
	MaxUploadMB     int64  `env:"MUSTAQBAL_MAX_UPLOAD_MB" envDefault:"10"`      // Upload size bound in megabytes
	UploadsDir      string `env:"MUSTAQBAL_UPLOADS_DIR" envDefault:"./uploads"` // Local fallback when S3 is not configured

	// Seeding configuration
	DoSeed bool `env:"MUSTAQBAL_DO_SEED" envDefault:"false"` // Enable demo content seeding
}

// IsDevelopment returns true if the application is running in development mode.
func (c Config) IsDevelopment() bool {
	return c.Env == "development"
}

// ServerAddr returns the full server address in host:port format.
func (c Config) ServerAddr() string {
	return fmt.Sprintf("%s:%d", c.ServerHost, c.ServerPort)
}

// UseRedisCache returns true if Redis caching is configured.
func (c Config) UseRedisCache() bool {
	return c.RedisURL != ""
}

// S3Enabled returns true if object storage uploads are configured.
func (c Config) S3Enabled() bool {
	return c.S3Bucket != "" && c.S3AccessKey != "" && c.S3SecretKey != ""
}

// MinSessionSecretLength is the minimum required length for the session secret.
// AES-256 requires 32 bytes minimum for secure encryption.
const MinSessionSecretLength = 32

// Load parses environment variables and returns a Config struct.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	// Validate session secret length
	if len(cfg.SessionSecret) < MinSessionSecretLength {
		return nil, fmt.Errorf("MUSTAQBAL_SESSION_SECRET must be at least %d bytes long, got %d bytes; "+
			"generate a secure secret with: openssl rand -base64 32",
			MinSessionSecretLength, len(cfg.SessionSecret))
	}

	// Reject known weak/default secrets
	for _, weak := range knownWeakSecrets {
		if cfg.SessionSecret == weak {
			return nil, fmt.Errorf("MUSTAQBAL_SESSION_SECRET is a known default value and must not be used; " +
				"generate a secure secret with: openssl rand -base64 32")
		}
	}

	// Warn about low-entropy secrets
	if !hasMinimumEntropy(cfg.SessionSecret) {
		slog.Warn("MUSTAQBAL_SESSION_SECRET has low character diversity; " +
			"consider generating a random secret with: openssl rand -base64 32")
	}

	if cfg.MaxUploadMB <= 0 {
		return nil, fmt.Errorf("MUSTAQBAL_MAX_UPLOAD_MB must be positive, got %d", cfg.MaxUploadMB)
	}

	return cfg, nil
}

// hasMinimumEntropy checks that a secret contains at least 3 character classes
// (lowercase, uppercase, digits, special characters).
func hasMinimumEntropy(s string) bool {
	charTypes := 0
	if strings.ContainsAny(s, "abcdefghijklmnopqrstuvwxyz") {
		charTypes++
	}
	if strings.ContainsAny(s, "ABCDEFGHIJKLMNOPQRSTUVWXYZ") {
		charTypes++
	}
	if strings.ContainsAny(s, "0123456789") {
		charTypes++
	}
	if strings.ContainsAny(s, "!@#$%^&*()-_=+[]{}|;:,.<>?/~`'\"\\") {
		charTypes++
	}
	return charTypes >= 3
}
