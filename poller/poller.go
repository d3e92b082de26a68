// Copyright (c) 2026 Rialo Foundation.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package poller

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/rialohq/rialo-dao/chain"
	"github.com/rialohq/rialo-dao/db"
	"github.com/rialohq/rialo-dao/models"
)

// fetchWorkers bounds concurrent proposals(id) calls per poll round.
const fetchWorkers = 8

// Snapshot is one consistent read of the registry and the moderation
// blacklist. Snapshots are immutable once published; a poll round either
// replaces the whole snapshot or leaves the previous one in place.
type Snapshot struct {
	Count     uint64
	Proposals []models.Proposal // index id-1, ids 1..Count
	Hidden    map[uint64]bool
	FetchedAt time.Time
}

// ByID returns the proposal for an id in [1, Count].
func (s *Snapshot) ByID(id uint64) (models.Proposal, bool) {
	if id < 1 || id > s.Count {
		return models.Proposal{}, false
	}
	return s.Proposals[id-1], true
}

// Visible reports whether an id is in range, exists, and is not moderated.
func (s *Snapshot) Visible(id uint64) bool {
	p, ok := s.ByID(id)
	return ok && p.Exists && !s.Hidden[id]
}

// Poller re-fetches the registry on an interval and publishes snapshots
// atomically. Handlers read whatever snapshot is current; a nil snapshot
// means no poll round has succeeded yet.
type Poller struct {
	source   chain.Source
	store    *db.Store
	interval time.Duration

	snap    atomic.Pointer[Snapshot]
	refresh chan struct{}
}

func New(source chain.Source, store *db.Store, interval time.Duration) *Poller {
	return &Poller{
		source:   source,
		store:    store,
		interval: interval,
		refresh:  make(chan struct{}, 1),
	}
}

// Snapshot returns the current snapshot, or nil before the first successful
// poll round.
func (p *Poller) Snapshot() *Snapshot {
	return p.snap.Load()
}

// Refresh requests an immediate poll round. Used after a confirmed write so
// the next read reflects it. Coalesces if a refresh is already queued.
func (p *Poller) Refresh() {
	select {
	case p.refresh <- struct{}{}:
	default:
	}
}

// Run polls until the context is cancelled. The first round starts
// immediately.
func (p *Poller) Run(ctx context.Context) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.poll(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		case <-p.refresh:
		}
		p.poll(ctx)
	}
}

// poll runs one fetch round. Any failure discards the round and keeps the
// previous snapshot; partial results are never merged.
func (p *Poller) poll(ctx context.Context) {
	start := time.Now()

	count, err := p.source.ProposalCount(ctx)
	if err != nil {
		slog.Error("proposal count fetch failed", "error", err)
		return
	}

	proposals := make([]models.Proposal, count)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(fetchWorkers)
	for id := uint64(1); id <= count; id++ {
		id := id
		g.Go(func() error {
			prop, err := p.source.ProposalByID(gctx, id)
			if err != nil {
				return err
			}
			proposals[id-1] = prop
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		slog.Error("proposal fetch failed, keeping previous snapshot", "error", err)
		return
	}

	hidden, err := p.store.ListHiddenIDs(ctx)
	if err != nil {
		slog.Error("hidden set fetch failed, keeping previous snapshot", "error", err)
		return
	}

	p.snap.Store(&Snapshot{
		Count:     count,
		Proposals: proposals,
		Hidden:    hidden,
		FetchedAt: time.Now(),
	})
	slog.Info("snapshot refreshed",
		"proposal_count", count,
		"hidden", len(hidden),
		"duration_ms", time.Since(start).Milliseconds(),
	)
}
