// Copyright (c) 2026 Rialo Foundation.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth validates the moderation key.

The key is an HMAC derived deterministically from the configured
MODERATION_SALT, so moderators can be handed a stable credential without the
service storing one:

	key := auth.ModerationKey(salt)
	err := auth.ValidateModerationKey(provided, salt)

Validation is constant-time.
*/
package auth
