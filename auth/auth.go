// Copyright (c) 2026 Rialo Foundation.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"strings"
)

var ErrInvalidModerationKey = errors.New("invalid moderation key")

// moderationScope is mixed into the HMAC so a salt reused elsewhere does not
// yield the same key.
const moderationScope = "rialo-dao-moderation"

// ModerationKey derives the deterministic moderation key from the configured
// salt. Moderators obtain it out of band from whoever runs the service.
func ModerationKey(salt string) string {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(moderationScope))
	sum := h.Sum(nil)
	// Use URL-safe base64 and trim padding for cleaner keys
	return strings.TrimRight(base64.URLEncoding.EncodeToString(sum), "=")
}

// ValidateModerationKey checks the provided key in constant time.
func ValidateModerationKey(key, salt string) error {
	expected := ModerationKey(salt)
	if !hmac.Equal([]byte(key), []byte(expected)) {
		return ErrInvalidModerationKey
	}
	return nil
}
