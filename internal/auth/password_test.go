// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package auth

import (
	"strings"
	"testing"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("rahasia-sekali")
	if err != nil {
		t.Fatalf("HashPassword() error: %v", err)
	}

	if !strings.HasPrefix(hash, "$argon2id$") {
		t.Errorf("hash %q does not have argon2id prefix", hash)
	}

	// Hashing the same password twice must produce different hashes (random salt)
	hash2, err := HashPassword("rahasia-sekali")
	if err != nil {
		t.Fatalf("HashPassword() error: %v", err)
	}
	if hash == hash2 {
		t.Error("two hashes of the same password are identical, salt not random")
	}
}

func TestCheckPassword(t *testing.T) {
	hash, err := HashPassword("benar")
	if err != nil {
		t.Fatalf("HashPassword() error: %v", err)
	}

	ok, err := CheckPassword("benar", hash)
	if err != nil {
		t.Fatalf("CheckPassword() error: %v", err)
	}
	if !ok {
		t.Error("CheckPassword() = false for correct password")
	}

	ok, err = CheckPassword("salah", hash)
	if err != nil {
		t.Fatalf("CheckPassword() error: %v", err)
	}
	if ok {
		t.Error("CheckPassword() = true for wrong password")
	}
}

func TestCheckPassword_InvalidFormat(t *testing.T) {
	if _, err := CheckPassword("x", "not-a-hash"); err == nil {
		t.Error("CheckPassword() accepted malformed hash")
	}
	if _, err := CheckPassword("x", "$bcrypt$v=19$m=1,t=1,p=1$c2FsdA$aGFzaA"); err == nil {
		t.Error("CheckPassword() accepted non-argon2id hash")
	}
}

func TestNeedsRehash(t *testing.T) {
	hash, err := HashPassword("pw")
	if err != nil {
		t.Fatalf("HashPassword() error: %v", err)
	}
	if NeedsRehash(hash) {
		t.Error("NeedsRehash() = true for freshly created hash")
	}

	// Old parameters should trigger a rehash
	legacy := "$argon2id$v=19$m=4096,t=1,p=1$c2FsdHNhbHRzYWx0c2FsdA$aGFzaGhhc2hoYXNoaGFzaGhhc2hoYXNoaGFzaGhhc2g"
	if !NeedsRehash(legacy) {
		t.Error("NeedsRehash() = false for legacy parameters")
	}

	if !NeedsRehash("garbage") {
		t.Error("NeedsRehash() = false for malformed hash")
	}
}
