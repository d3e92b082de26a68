// Copyright (c) 2026 Rialo Foundation.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/rialohq/rialo-dao/middleware"
	"github.com/rialohq/rialo-dao/models"
)

type TrendingHandler struct {
	snapshots SnapshotProvider
}

func NewTrendingHandler(snapshots SnapshotProvider) *TrendingHandler {
	return &TrendingHandler{snapshots: snapshots}
}

// Top handles GET /trending.
// An empty ranked view is data ("render nothing"), not an error.
func (h *TrendingHandler) Top(w http.ResponseWriter, r *http.Request) {
	snap := h.snapshots.Snapshot()
	if snap == nil {
		middleware.ErrorResponse(w, http.StatusServiceUnavailable, "Blockchain data not yet available")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.TrendingResponse{
		Proposals: RankProposals(snap.Proposals, snap.Hidden, TrendingSize),
	})
}
