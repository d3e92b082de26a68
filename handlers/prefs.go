// Copyright (c) 2026 Rialo Foundation.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/rialohq/rialo-dao/db"
	"github.com/rialohq/rialo-dao/middleware"
	"github.com/rialohq/rialo-dao/models"
)

// PrefsHandler manages the persisted theme preference. One value, explicit
// read/write lifecycle, defaulting to light when nothing is stored.
type PrefsHandler struct {
	store *db.Store
}

func NewPrefsHandler(store *db.Store) *PrefsHandler {
	return &PrefsHandler{store: store}
}

// GetTheme handles GET /preferences/theme
func (h *PrefsHandler) GetTheme(w http.ResponseWriter, r *http.Request) {
	theme, err := h.store.GetTheme(r.Context())
	if err != nil {
		slog.Error("failed to read theme", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, models.ThemeResponse{Theme: theme})
}

// SetTheme handles PUT /preferences/theme
func (h *PrefsHandler) SetTheme(w http.ResponseWriter, r *http.Request) {
	var req models.ThemeRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.Theme != models.ThemeLight && req.Theme != models.ThemeDark {
		middleware.ErrorResponse(w, http.StatusBadRequest, "theme must be light or dark")
		return
	}

	if err := h.store.SetTheme(r.Context(), req.Theme); err != nil {
		slog.Error("failed to persist theme", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	slog.Info("theme updated", "theme", req.Theme)
	middleware.JSONResponse(w, http.StatusOK, models.ThemeResponse{Theme: req.Theme})
}
