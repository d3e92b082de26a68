// Copyright (c) 2026 Rialo Foundation.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/rialohq/rialo-dao/chain"
	"github.com/rialohq/rialo-dao/middleware"
	"github.com/rialohq/rialo-dao/models"
)

// Tracker follows relayed transactions from acceptance to finality. A
// submission is pending until its receipt lands, then confirmed or failed;
// there is no retry and no timeout on pending.
type Tracker struct {
	source    chain.Source
	refresher Refresher

	mu          sync.Mutex
	submissions map[string]*models.Submission
}

func NewTracker(source chain.Source, refresher Refresher) *Tracker {
	return &Tracker{
		source:      source,
		refresher:   refresher,
		submissions: make(map[string]*models.Submission),
	}
}

// Track registers a submitted transaction and starts waiting for its
// receipt. On confirmation the snapshot is refreshed so the next read
// reflects the write.
func (t *Tracker) Track(kind string, proposalID uint64, txHash string) models.Submission {
	sub := models.Submission{
		ID:         uuid.NewString(),
		Kind:       kind,
		ProposalID: proposalID,
		TxHash:     txHash,
		Status:     models.StatusPending,
		CreatedAt:  time.Now().UTC(),
	}

	t.mu.Lock()
	stored := sub
	t.submissions[sub.ID] = &stored
	t.mu.Unlock()

	go t.wait(sub.ID, txHash)
	return sub
}

func (t *Tracker) wait(id, txHash string) {
	err := t.source.WaitConfirmed(context.Background(), txHash)

	t.mu.Lock()
	sub := t.submissions[id]
	if err != nil {
		sub.Status = models.StatusFailed
		sub.Error = err.Error()
	} else {
		sub.Status = models.StatusConfirmed
	}
	t.mu.Unlock()

	if err != nil {
		slog.Error("submission failed", "submission_id", id, "tx_hash", txHash, "error", err)
		return
	}
	slog.Info("submission confirmed", "submission_id", id, "tx_hash", txHash)
	t.refresher.Refresh()
}

// Get returns a copy of the submission record.
func (t *Tracker) Get(id string) (models.Submission, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	sub, ok := t.submissions[id]
	if !ok {
		return models.Submission{}, false
	}
	return *sub, true
}

type SubmissionHandler struct {
	tracker *Tracker
}

func NewSubmissionHandler(tracker *Tracker) *SubmissionHandler {
	return &SubmissionHandler{tracker: tracker}
}

// Get handles GET /submissions/{id}
func (h *SubmissionHandler) Get(w http.ResponseWriter, r *http.Request) {
	sub, ok := h.tracker.Get(r.PathValue("id"))
	if !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, "Submission not found")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, sub)
}
