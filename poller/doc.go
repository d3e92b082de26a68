// Copyright (c) 2026 Rialo Foundation.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package poller maintains the registry snapshot the read API serves from.

Each poll round fetches the proposal count, then every proposal concurrently
(bounded workers - proposals are independent and read-only), then the
moderation blacklist, and publishes the result as one immutable Snapshot via
an atomic pointer swap. A failed round keeps the previous snapshot; partial
results are never merged, so a response from one instant can never be
combined with another's.

Refresh requests an immediate round, used after a confirmed write so the next
read reflects it.
*/
package poller
