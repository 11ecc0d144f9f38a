// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package model defines domain constants and types shared across the
// application: user roles, content statuses, settings page keys, and the
// event log vocabulary.
package model

// User roles, hierarchical: admin > editor > viewer.
const (
	RoleAdmin  = "admin"
	RoleEditor = "editor"
	RoleViewer = "viewer"
)

// RoleLevel returns a numeric level for the role hierarchy. Higher level
// means more permissions; unknown roles (including public visitors) map to 0.
func RoleLevel(role string) int {
	switch role {
	case RoleAdmin:
		return 3
	case RoleEditor:
		return 2
	case RoleViewer:
		return 1
	default:
		return 0
	}
}

// IsValidRole reports whether role is one of the known roles.
func IsValidRole(role string) bool {
	return RoleLevel(role) > 0
}
