// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/fikriihsanabdulloh09-commits/Mustaqbal-Webaite-sub001/internal/auth"
)

// Default admin credentials
const (
	DefaultAdminEmail    = "admin@mustaqbal.sch.id"
	DefaultAdminPassword = "changeme"
	DefaultAdminName     = "Administrator"
)

// defaultStyleVariables are the CSS custom properties the public theme ships
// with. Keys must be valid custom-property names (leading "--").
var defaultStyleVariables = []struct {
	Key, Value, Category, Description string
}{
	{"--color-primary", "#0f766e", "colors", "Primary brand color"},
	{"--color-secondary", "#f59e0b", "colors", "Accent color"},
	{"--color-surface", "#ffffff", "colors", "Card and panel background"},
	{"--color-text", "#1f2937", "colors", "Body text color"},
	{"--font-heading", "'Plus Jakarta Sans', sans-serif", "fonts", "Heading font stack"},
	{"--font-body", "'Inter', sans-serif", "fonts", "Body font stack"},
	{"--radius-card", "0.75rem", "layout", "Card corner radius"},
	{"--spacing-section", "5rem", "layout", "Vertical spacing between sections"},
}

// Seed creates initial data in the database: the default admin user, the
// default active theme, baseline style variables, and an empty settings
// document for the home page.
func Seed(ctx context.Context, db *sql.DB) error {
	queries := New(db)
	now := time.Now()

	if err := seedAdmin(ctx, queries, now); err != nil {
		return err
	}
	if err := seedTheme(ctx, queries, now); err != nil {
		return err
	}
	if err := seedStyleVariables(ctx, queries, now); err != nil {
		return err
	}
	return seedHomeSettings(ctx, queries, now)
}

func seedAdmin(ctx context.Context, queries *Queries, now time.Time) error {
	// Check if admin user already exists
	_, err := queries.GetUserByEmail(ctx, DefaultAdminEmail)
	if err == nil {
		slog.Info("admin user already exists, skipping seed")
		return nil
	}
	if err != sql.ErrNoRows {
		return fmt.Errorf("checking for admin user: %w", err)
	}

	passwordHash, err := auth.HashPassword(DefaultAdminPassword)
	if err != nil {
		return fmt.Errorf("hashing password: %w", err)
	}

	user, err := queries.CreateUser(ctx, CreateUserParams{
		Email:        DefaultAdminEmail,
		PasswordHash: passwordHash,
		Role:         "admin",
		Name:         DefaultAdminName,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return fmt.Errorf("creating admin user: %w", err)
	}

	slog.Info("created default admin user",
		"id", user.ID,
		"email", user.Email,
		"password", DefaultAdminPassword,
	)
	return nil
}

func seedTheme(ctx context.Context, queries *Queries, now time.Time) error {
	if _, err := queries.GetActiveTheme(ctx); err == nil {
		return nil
	} else if err != sql.ErrNoRows {
		return fmt.Errorf("checking for active theme: %w", err)
	}

	_, err := queries.CreateTheme(ctx, CreateThemeParams{
		Name:     "Mustaqbal Default",
		Colors:   `{"primary":"#0f766e","secondary":"#f59e0b","surface":"#ffffff","text":"#1f2937"}`,
		Fonts:    `{"heading":"'Plus Jakarta Sans', sans-serif","body":"'Inter', sans-serif"}`,
		LogoAlt:  "SMK Mustaqbal",
		IsActive: true,
		UpdatedAt: now,
	})
	if err != nil {
		return fmt.Errorf("creating default theme: %w", err)
	}
	return nil
}

func seedStyleVariables(ctx context.Context, queries *Queries, now time.Time) error {
	for _, v := range defaultStyleVariables {
		if _, err := queries.GetStyleVariableByKey(ctx, v.Key); err == nil {
			continue
		} else if err != sql.ErrNoRows {
			return fmt.Errorf("checking style variable %s: %w", v.Key, err)
		}
		if _, err := queries.UpsertStyleVariable(ctx, UpsertStyleVariableParams{
			Key:         v.Key,
			Value:       v.Value,
			Category:    v.Category,
			Description: v.Description,
			UpdatedAt:   now,
		}); err != nil {
			return fmt.Errorf("seeding style variable %s: %w", v.Key, err)
		}
	}
	return nil
}

func seedHomeSettings(ctx context.Context, queries *Queries, now time.Time) error {
	if _, err := queries.GetPageSetting(ctx, "beranda"); err == nil {
		return nil
	} else if err != sql.ErrNoRows {
		return fmt.Errorf("checking home page settings: %w", err)
	}
	if _, err := queries.UpsertPageSetting(ctx, UpsertPageSettingParams{
		PageName:  "beranda",
		Content:   "{}",
		UpdatedAt: now,
	}); err != nil {
		return fmt.Errorf("seeding home page settings: %w", err)
	}
	return nil
}
