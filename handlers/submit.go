// Copyright (c) 2026 Rialo Foundation.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/rialohq/rialo-dao/chain"
	"github.com/rialohq/rialo-dao/middleware"
	"github.com/rialohq/rialo-dao/models"
)

// SubmitHandler relays votes and proposal creation to the registry contract.
type SubmitHandler struct {
	source    chain.Source
	snapshots SnapshotProvider
	tracker   *Tracker
}

func NewSubmitHandler(source chain.Source, snapshots SnapshotProvider, tracker *Tracker) *SubmitHandler {
	return &SubmitHandler{source: source, snapshots: snapshots, tracker: tracker}
}

// CreateProposal handles POST /proposals
func (h *SubmitHandler) CreateProposal(w http.ResponseWriter, r *http.Request) {
	var req models.CreateProposalRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	// Validate before touching the chain: empty titles never leave the service
	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "title is required")
		return
	}

	txHash, err := h.source.CreateProposal(r.Context(), req.Title)
	if err != nil {
		h.writeSubmitError(w, "create proposal", err)
		return
	}

	sub := h.tracker.Track(models.KindCreate, 0, txHash)
	slog.Info("proposal creation submitted", "submission_id", sub.ID, "tx_hash", txHash)
	middleware.JSONResponse(w, http.StatusAccepted, sub)
}

// Vote handles POST /proposals/{id}/votes
func (h *SubmitHandler) Vote(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(r.PathValue("id"), 10, 64)
	if err != nil || id == 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "id must be a positive integer")
		return
	}

	var req models.VoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.Support == nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "support is required")
		return
	}

	snap := h.snapshots.Snapshot()
	if snap == nil {
		middleware.ErrorResponse(w, http.StatusServiceUnavailable, "Blockchain data not yet available")
		return
	}
	if _, ok := snap.ByID(id); !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, "Proposal not found")
		return
	}
	if snap.Hidden[id] {
		// Voting is disabled on moderated proposals
		middleware.ErrorResponse(w, http.StatusForbidden, "Proposal is hidden by community moderation")
		return
	}

	txHash, err := h.source.Vote(r.Context(), id, *req.Support)
	if err != nil {
		h.writeSubmitError(w, "vote", err)
		return
	}

	sub := h.tracker.Track(models.KindVote, id, txHash)
	slog.Info("vote submitted", "submission_id", sub.ID, "proposal_id", id, "support", *req.Support, "tx_hash", txHash)
	middleware.JSONResponse(w, http.StatusAccepted, sub)
}

func (h *SubmitHandler) writeSubmitError(w http.ResponseWriter, action string, err error) {
	if errors.Is(err, chain.ErrReadOnly) {
		middleware.ErrorResponse(w, http.StatusServiceUnavailable, "Service is running in read-only mode")
		return
	}
	slog.Error("failed to "+action, "error", err)
	middleware.ErrorResponse(w, http.StatusBadGateway, "Transaction submission failed")
}
