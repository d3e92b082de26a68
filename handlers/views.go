// Copyright (c) 2026 Rialo Foundation.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"github.com/rialohq/rialo-dao/models"
	"github.com/rialohq/rialo-dao/poller"
)

// SnapshotProvider hands out the current registry snapshot, nil when no poll
// round has succeeded yet.
type SnapshotProvider interface {
	Snapshot() *poller.Snapshot
}

// Refresher requests an immediate re-fetch of the registry snapshot.
type Refresher interface {
	Refresh()
}

// buildProposalView renders one proposal for the single-item voting surface.
// Moderation is a display-layer veto: a hidden proposal keeps its id and
// navigation context but loses title and counters, and callers must refuse
// votes for it.
func buildProposalView(snap *poller.Snapshot, id uint64) (models.ProposalView, bool) {
	p, ok := snap.ByID(id)
	if !ok || !p.Exists {
		return models.ProposalView{}, false
	}

	view := models.ProposalView{
		ID:            id,
		Status:        models.ProposalActive,
		ProposalCount: snap.Count,
		HasPrev:       id > 1,
		HasNext:       id < snap.Count,
	}
	if snap.Hidden[id] {
		view.Status = models.ProposalHidden
		return view, true
	}

	view.Title = p.Title
	view.YesVotes = p.YesVotes
	view.NoVotes = p.NoVotes
	view.YesShare = YesShare(p.YesVotes, p.NoVotes)
	return view, true
}
