// Copyright (c) 2026 Rialo Foundation.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/rialohq/rialo-dao/auth"
	"github.com/rialohq/rialo-dao/cliparse"
	"github.com/rialohq/rialo-dao/db"
	"github.com/rialohq/rialo-dao/middleware"
	"github.com/rialohq/rialo-dao/models"
)

// ModerationHandler maintains the hidden-proposal blacklist. Hiding is a
// display-layer veto only; on-chain data is never touched.
type ModerationHandler struct {
	store     *db.Store
	cfg       cliparse.Config
	refresher Refresher
}

func NewModerationHandler(store *db.Store, cfg cliparse.Config, refresher Refresher) *ModerationHandler {
	return &ModerationHandler{store: store, cfg: cfg, refresher: refresher}
}

func (h *ModerationHandler) authorize(w http.ResponseWriter, r *http.Request) bool {
	key := r.Header.Get("X-Moderation-Key")
	if err := auth.ValidateModerationKey(key, h.cfg.ModerationSalt); err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid moderation key")
		return false
	}
	return true
}

// List handles GET /moderation
func (h *ModerationHandler) List(w http.ResponseWriter, r *http.Request) {
	if !h.authorize(w, r) {
		return
	}

	entries, err := h.store.ListHidden(r.Context())
	if err != nil {
		slog.Error("failed to list hidden proposals", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, map[string][]models.HiddenProposal{"hidden": entries})
}

// Hide handles POST /moderation/{id}
func (h *ModerationHandler) Hide(w http.ResponseWriter, r *http.Request) {
	if !h.authorize(w, r) {
		return
	}

	id, err := strconv.ParseUint(r.PathValue("id"), 10, 64)
	if err != nil || id == 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "id must be a positive integer")
		return
	}

	var req models.HideProposalRequest
	if r.ContentLength > 0 {
		if err := middleware.ParseJSONBody(r, &req); err != nil {
			middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
			return
		}
	}

	if err := h.store.Hide(r.Context(), id, req.Reason); err != nil {
		slog.Error("failed to hide proposal", "proposal_id", id, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	slog.Info("proposal hidden", "proposal_id", id)
	h.refresher.Refresh()
	w.WriteHeader(http.StatusNoContent)
}

// Unhide handles DELETE /moderation/{id}
func (h *ModerationHandler) Unhide(w http.ResponseWriter, r *http.Request) {
	if !h.authorize(w, r) {
		return
	}

	id, err := strconv.ParseUint(r.PathValue("id"), 10, 64)
	if err != nil || id == 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "id must be a positive integer")
		return
	}

	found, err := h.store.Unhide(r.Context(), id)
	if err != nil {
		slog.Error("failed to unhide proposal", "proposal_id", id, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	if !found {
		middleware.ErrorResponse(w, http.StatusNotFound, "Proposal is not hidden")
		return
	}

	slog.Info("proposal unhidden", "proposal_id", id)
	h.refresher.Refresh()
	w.WriteHeader(http.StatusNoContent)
}
