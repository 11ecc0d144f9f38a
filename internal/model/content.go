// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

// News article statuses.
const (
	NewsStatusDraft     = "draft"
	NewsStatusPublished = "published"
)

// PPDB submission statuses.
const (
	PPDBStatusNew      = "new"
	PPDBStatusVerified = "verified"
	PPDBStatusAccepted = "accepted"
	PPDBStatusRejected = "rejected"
)

// IsValidPPDBStatus reports whether s is a known submission status.
func IsValidPPDBStatus(s string) bool {
	switch s {
	case PPDBStatusNew, PPDBStatusVerified, PPDBStatusAccepted, PPDBStatusRejected:
		return true
	}
	return false
}

// Event levels
const (
	EventLevelInfo    = "info"
	EventLevelWarning = "warning"
	EventLevelError   = "error"
)

// Event categories
const (
	EventCategoryAuth     = "auth"
	EventCategoryContent  = "content"
	EventCategorySettings = "settings"
	EventCategorySystem   = "system"
	EventCategoryUpload   = "upload"
)

// MIME types accepted by the media uploader.
const (
	MimeTypeJPEG = "image/jpeg"
	MimeTypePNG  = "image/png"
	MimeTypeWebP = "image/webp"
	MimeTypeGIF  = "image/gif"
	MimeTypePDF  = "application/pdf"
)

// ProgramIcons is the compile-time enum of icon names a program record may
// reference. Templates map these to inline SVGs; an unknown name is rejected
// at save time instead of silently falling back at render time.
var ProgramIcons = []string{
	"cpu", "network", "wrench", "car", "briefcase", "calculator", "palette", "flask",
}

// IsValidProgramIcon reports whether name is a registered program icon.
func IsValidProgramIcon(name string) bool {
	for _, icon := range ProgramIcons {
		if icon == name {
			return true
		}
	}
	return false
}
