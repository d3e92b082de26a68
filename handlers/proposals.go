// Copyright (c) 2026 Rialo Foundation.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"strconv"

	"github.com/rialohq/rialo-dao/middleware"
)

type ProposalHandler struct {
	snapshots SnapshotProvider
}

func NewProposalHandler(snapshots SnapshotProvider) *ProposalHandler {
	return &ProposalHandler{snapshots: snapshots}
}

// Get handles GET /proposals/{id}
func (h *ProposalHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(r.PathValue("id"), 10, 64)
	if err != nil || id == 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "id must be a positive integer")
		return
	}

	snap := h.snapshots.Snapshot()
	if snap == nil {
		middleware.ErrorResponse(w, http.StatusServiceUnavailable, "Blockchain data not yet available")
		return
	}

	view, ok := buildProposalView(snap, id)
	if !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, "Proposal not found")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, view)
}
