// Copyright (c) 2026 Rialo Foundation.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"sync"

	"github.com/google/uuid"

	"github.com/rialohq/rialo-dao/middleware"
)

const sessionCookie = "dao_session"

// HomeHandler serves the one-proposal-at-a-time voting view. Each browser
// session gets its own cursor, keyed by a uuid cookie, so two tabs navigating
// at once do not fight over a shared position.
type HomeHandler struct {
	snapshots SnapshotProvider

	mu      sync.Mutex
	cursors map[string]*Cursor
}

func NewHomeHandler(snapshots SnapshotProvider) *HomeHandler {
	return &HomeHandler{
		snapshots: snapshots,
		cursors:   make(map[string]*Cursor),
	}
}

// cursorFor returns the session's cursor, minting a session cookie when the
// request has none.
func (h *HomeHandler) cursorFor(w http.ResponseWriter, r *http.Request) *Cursor {
	var token string
	if c, err := r.Cookie(sessionCookie); err == nil && c.Value != "" {
		token = c.Value
	} else {
		token = uuid.NewString()
		http.SetCookie(w, &http.Cookie{
			Name:     sessionCookie,
			Value:    token,
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	cur, ok := h.cursors[token]
	if !ok {
		cur = &Cursor{}
		h.cursors[token] = cur
	}
	return cur
}

// Current handles GET /home
func (h *HomeHandler) Current(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, func(cur *Cursor, count uint64) {})
}

// Next handles POST /home/next
func (h *HomeHandler) Next(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, func(cur *Cursor, count uint64) { cur.Next(count) })
}

// Prev handles POST /home/prev
func (h *HomeHandler) Prev(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, func(cur *Cursor, count uint64) { cur.Prev() })
}

func (h *HomeHandler) serve(w http.ResponseWriter, r *http.Request, navigate func(*Cursor, uint64)) {
	snap := h.snapshots.Snapshot()
	if snap == nil {
		middleware.ErrorResponse(w, http.StatusServiceUnavailable, "Blockchain data not yet available")
		return
	}

	cur := h.cursorFor(w, r)
	cur.Observe(snap.Count)
	navigate(cur, snap.Count)

	id := cur.Current()
	if id == 0 {
		// Count is still zero; nothing to show
		middleware.ErrorResponse(w, http.StatusNotFound, "No proposals yet")
		return
	}

	view, ok := buildProposalView(snap, id)
	if !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, "Proposal not found")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, view)
}
