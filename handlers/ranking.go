// Copyright (c) 2026 Rialo Foundation.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"sort"

	"github.com/dustin/go-humanize"

	"github.com/rialohq/rialo-dao/models"
)

// TrendingSize is the number of slots in the top-voted view.
const TrendingSize = 10

// RankProposals produces the ranked top-k view over a proposal snapshot.
// Nonexistent and moderated proposals are dropped, the rest are ordered by
// total vote count descending. On equal totals the lower id ranks higher.
func RankProposals(proposals []models.Proposal, hidden map[uint64]bool, k int) []models.TrendingEntry {
	visible := make([]models.Proposal, 0, len(proposals))
	for _, p := range proposals {
		if !p.Exists || hidden[p.ID] {
			continue
		}
		visible = append(visible, p)
	}

	sort.Slice(visible, func(i, j int) bool {
		a, b := visible[i], visible[j]
		totalA := a.YesVotes + a.NoVotes
		totalB := b.YesVotes + b.NoVotes

		// 1. More total votes wins
		if totalA != totalB {
			return totalA > totalB
		}

		// 2. Tie-breaking by id (ascending)
		return a.ID < b.ID
	})

	if k < len(visible) {
		visible = visible[:k]
	}

	entries := make([]models.TrendingEntry, len(visible))
	for i, p := range visible {
		total := p.YesVotes + p.NoVotes
		entries[i] = models.TrendingEntry{
			Rank:         i + 1,
			ID:           p.ID,
			Title:        p.Title,
			YesVotes:     p.YesVotes,
			NoVotes:      p.NoVotes,
			TotalVotes:   total,
			TotalDisplay: humanize.Comma(int64(total)),
			YesShare:     YesShare(p.YesVotes, p.NoVotes),
		}
	}
	return entries
}

// YesShare is the yes fraction of all votes cast, 0 when no votes exist.
// Guarded so a fresh proposal never produces NaN.
func YesShare(yes, no uint64) float64 {
	total := yes + no
	if total == 0 {
		return 0
	}
	return float64(yes) / float64(total)
}
