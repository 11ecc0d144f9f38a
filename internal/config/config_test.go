// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package config

import (
	"os"
	"testing"
)

func setEnv(t *testing.T, key, value string) {
	t.Helper()
	if err := os.Setenv(key, value); err != nil {
		t.Fatalf("failed to set %s: %v", key, err)
	}
}

func TestLoad_Defaults(t *testing.T) {
	os.Clearenv()
	setEnv(t, "MUSTAQBAL_SESSION_SECRET", "test-secret-key-32-bytes-long!!!")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.DBPath != "./data/mustaqbal.db" {
		t.Errorf("DBPath = %q, want %q", cfg.DBPath, "./data/mustaqbal.db")
	}
	if cfg.ServerHost != "localhost" {
		t.Errorf("ServerHost = %q, want %q", cfg.ServerHost, "localhost")
	}
	if cfg.ServerPort != 8080 {
		t.Errorf("ServerPort = %d, want %d", cfg.ServerPort, 8080)
	}
	if cfg.Env != "development" {
		t.Errorf("Env = %q, want %q", cfg.Env, "development")
	}
	if cfg.MaxUploadMB != 10 {
		t.Errorf("MaxUploadMB = %d, want 10", cfg.MaxUploadMB)
	}
	if cfg.S3Enabled() {
		t.Error("S3Enabled() = true without credentials, want false")
	}
}

func TestLoad_CustomValues(t *testing.T) {
	os.Clearenv()
	customSecret := "custom-secret-key-32-bytes-long!"
	setEnv(t, "MUSTAQBAL_SESSION_SECRET", customSecret)
	setEnv(t, "MUSTAQBAL_DB_PATH", "/custom/path.db")
	setEnv(t, "MUSTAQBAL_SERVER_HOST", "0.0.0.0")
	setEnv(t, "MUSTAQBAL_SERVER_PORT", "3000")
	setEnv(t, "MUSTAQBAL_ENV", "production")
	setEnv(t, "MUSTAQBAL_MAX_UPLOAD_MB", "25")
	setEnv(t, "MUSTAQBAL_S3_BUCKET", "media")
	setEnv(t, "MUSTAQBAL_S3_ACCESS_KEY", "ak")
	setEnv(t, "MUSTAQBAL_S3_SECRET_KEY", "sk")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.SessionSecret != customSecret {
		t.Errorf("SessionSecret = %q, want %q", cfg.SessionSecret, customSecret)
	}
	if cfg.DBPath != "/custom/path.db" {
		t.Errorf("DBPath = %q, want %q", cfg.DBPath, "/custom/path.db")
	}
	if cfg.ServerAddr() != "0.0.0.0:3000" {
		t.Errorf("ServerAddr() = %q, want %q", cfg.ServerAddr(), "0.0.0.0:3000")
	}
	if cfg.IsDevelopment() {
		t.Error("IsDevelopment() = true for production env")
	}
	if cfg.MaxUploadMB != 25 {
		t.Errorf("MaxUploadMB = %d, want 25", cfg.MaxUploadMB)
	}
	if !cfg.S3Enabled() {
		t.Error("S3Enabled() = false with full credentials, want true")
	}
}

func TestLoad_MissingSecret(t *testing.T) {
	os.Clearenv()

	if _, err := Load(); err == nil {
		t.Fatal("Load() succeeded without MUSTAQBAL_SESSION_SECRET, want error")
	}
}

func TestLoad_ShortSecret(t *testing.T) {
	os.Clearenv()
	setEnv(t, "MUSTAQBAL_SESSION_SECRET", "too-short")

	if _, err := Load(); err == nil {
		t.Fatal("Load() succeeded with short secret, want error")
	}
}

func TestLoad_WeakSecretRejected(t *testing.T) {
	os.Clearenv()
	setEnv(t, "MUSTAQBAL_SESSION_SECRET", "change-me-to-32-byte-secret-key!")

	if _, err := Load(); err == nil {
		t.Fatal("Load() succeeded with known weak secret, want error")
	}
}

func TestLoad_InvalidUploadBound(t *testing.T) {
	os.Clearenv()
	setEnv(t, "MUSTAQBAL_SESSION_SECRET", "test-secret-key-32-bytes-long!!!")
	setEnv(t, "MUSTAQBAL_MAX_UPLOAD_MB", "-1")

	if _, err := Load(); err == nil {
		t.Fatal("Load() succeeded with negative upload bound, want error")
	}
}
