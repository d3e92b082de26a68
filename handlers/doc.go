// Copyright (c) 2026 Rialo Foundation.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Rialo DAO gateway API,
plus the pure view-pipeline logic they are built on.

# Handler Types

Each handler is a struct with its dependencies injected via constructor:

  - HomeHandler: Single-proposal voting view with per-session cursor navigation
  - CatalogHandler: Full listing with id-substring search
  - TrendingHandler: Top-voted ranking
  - ProposalHandler: Single proposal by id
  - SubmitHandler: Relayed votes and proposal creation
  - SubmissionHandler: Tracked submission status
  - PrefsHandler: Theme preference
  - ModerationHandler: Hidden-proposal blacklist (X-Moderation-Key)

Read handlers take a SnapshotProvider and never touch the chain directly; a
nil snapshot (no successful poll yet) answers 503 instead of crashing.

# View Pipeline

The pure logic lives alongside the handlers:

	entries := handlers.RankProposals(proposals, hidden, 10)
	ids := handlers.VisibleIDs(count, hidden, query)

RankProposals orders visible proposals by total votes descending, lower id
first on ties, and caps at k. VisibleIDs walks ids newest-first, drops
moderated ids, and matches the query against the decimal id text — not the
title; that is the product's specified search behavior.

# Cursor

Cursor is the saturating position of the single-item view: it initializes to
the newest proposal on the first observed count, then moves only via Prev/Next
within [1, count]. HomeHandler keys one cursor per session cookie.

# Submission Flow

Writes answer 202 with a pending Submission. A tracker goroutine waits for the
receipt, flips the record to confirmed or failed, and on confirmation asks the
poller for an immediate re-fetch so the next read reflects the write. There is
no retry and no pending timeout.
*/
package handlers
