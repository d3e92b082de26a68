// Copyright (c) 2026 Rialo Foundation.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the gateway.

# Domain Types

Proposal mirrors the on-chain registry record: a title, two monotonically
increasing vote counters, and an exists flag that flips to true on creation
and never back. Ids are positive integers assigned sequentially from 1 by the
contract, never reused or renumbered.

Submission tracks a relayed write through its three states:

	pending -> confirmed
	        -> failed

# View Types

ProposalView, CatalogEntry, and TrendingEntry are the three read surfaces.
A moderated proposal appears in ProposalView with status "hidden" and no
title or counters, and never appears in CatalogEntry or TrendingEntry lists.
*/
package models
