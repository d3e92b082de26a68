// Copyright (c) 2026 Rialo Foundation.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/rialohq/rialo-dao/middleware"
	"github.com/rialohq/rialo-dao/models"
)

// VisibleIDs generates the catalog id sequence: count down to 1, moderated
// ids removed, then filtered by substring match on the decimal id text.
// Empty query matches everything; a query with non-digit characters matches
// nothing. Search is on id text, not proposal titles.
func VisibleIDs(count uint64, hidden map[uint64]bool, query string) []uint64 {
	ids := make([]uint64, 0, count)
	for id := count; id >= 1; id-- {
		if hidden[id] {
			continue
		}
		if query != "" && !strings.Contains(strconv.FormatUint(id, 10), query) {
			continue
		}
		ids = append(ids, id)
	}
	return ids
}

type CatalogHandler struct {
	snapshots SnapshotProvider
}

func NewCatalogHandler(snapshots SnapshotProvider) *CatalogHandler {
	return &CatalogHandler{snapshots: snapshots}
}

// List handles GET /proposals?q=
func (h *CatalogHandler) List(w http.ResponseWriter, r *http.Request) {
	snap := h.snapshots.Snapshot()
	if snap == nil {
		middleware.ErrorResponse(w, http.StatusServiceUnavailable, "Blockchain data not yet available")
		return
	}

	query := r.URL.Query().Get("q")
	proposals := []models.CatalogEntry{}
	for _, id := range VisibleIDs(snap.Count, snap.Hidden, query) {
		p, ok := snap.ByID(id)
		if !ok || !p.Exists {
			continue
		}
		proposals = append(proposals, models.CatalogEntry{
			ID:       p.ID,
			Title:    p.Title,
			YesVotes: p.YesVotes,
			NoVotes:  p.NoVotes,
			YesShare: YesShare(p.YesVotes, p.NoVotes),
			Leading:  p.YesVotes > p.NoVotes,
		})
	}

	middleware.JSONResponse(w, http.StatusOK, models.CatalogResponse{
		Query:     query,
		Count:     snap.Count,
		Proposals: proposals,
	})
}
