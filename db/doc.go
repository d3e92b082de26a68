// Copyright (c) 2026 Rialo Foundation.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db stores the moderation blacklist and application preferences.

# Schema Creation

CreateSchema initializes all required tables:

	if err := store.CreateSchema(); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables.

# Tables

  - hidden_proposal: Moderated proposal ids with reason and timestamp
  - app_preference: Named single-value preferences (theme)

Moderation is a display-layer veto: hiding a proposal suppresses it from every
view but never touches its on-chain record or vote counters.

# Drivers

The store runs on postgres (lib/pq) or sqlite (modernc.org/sqlite), selected
by DATABASE_TYPE. Queries are written with ? placeholders and rebound to $N
for postgres.
*/
package db
