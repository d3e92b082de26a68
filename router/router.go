// Copyright (c) 2026 Rialo Foundation.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/rialohq/rialo-dao/chain"
	"github.com/rialohq/rialo-dao/cliparse"
	"github.com/rialohq/rialo-dao/db"
	"github.com/rialohq/rialo-dao/handlers"
	"github.com/rialohq/rialo-dao/middleware"
)

// Snapshots is what the read handlers need from the poller.
type Snapshots interface {
	handlers.SnapshotProvider
	handlers.Refresher
}

func NewRouter(source chain.Source, snapshots Snapshots, store *db.Store, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	tracker := handlers.NewTracker(source, snapshots)
	homeHandler := handlers.NewHomeHandler(snapshots)
	catalogHandler := handlers.NewCatalogHandler(snapshots)
	proposalHandler := handlers.NewProposalHandler(snapshots)
	trendingHandler := handlers.NewTrendingHandler(snapshots)
	submitHandler := handlers.NewSubmitHandler(source, snapshots, tracker)
	submissionHandler := handlers.NewSubmissionHandler(tracker)
	prefsHandler := handlers.NewPrefsHandler(store)
	moderationHandler := handlers.NewModerationHandler(store, cfg, snapshots)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Single-proposal voting view (cursor navigation)
	mux.HandleFunc("GET /home", middleware.WithLogging(homeHandler.Current))
	mux.HandleFunc("POST /home/next", middleware.WithLogging(homeHandler.Next))
	mux.HandleFunc("POST /home/prev", middleware.WithLogging(homeHandler.Prev))

	// Proposal reads (public, anonymous)
	mux.HandleFunc("GET /proposals", middleware.WithLogging(catalogHandler.List))
	mux.HandleFunc("GET /proposals/{id}", middleware.WithLogging(proposalHandler.Get))
	mux.HandleFunc("GET /trending", middleware.WithLogging(trendingHandler.Top))

	// Relayed writes and their tracking
	mux.HandleFunc("POST /proposals", middleware.WithLogging(submitHandler.CreateProposal))
	mux.HandleFunc("POST /proposals/{id}/votes", middleware.WithLogging(submitHandler.Vote))
	mux.HandleFunc("GET /submissions/{id}", middleware.WithLogging(submissionHandler.Get))

	// Theme preference
	mux.HandleFunc("GET /preferences/theme", middleware.WithLogging(prefsHandler.GetTheme))
	mux.HandleFunc("PUT /preferences/theme", middleware.WithLogging(prefsHandler.SetTheme))

	// Moderation (requires X-Moderation-Key)
	mux.HandleFunc("GET /moderation", middleware.WithLogging(moderationHandler.List))
	mux.HandleFunc("POST /moderation/{id}", middleware.WithLogging(moderationHandler.Hide))
	mux.HandleFunc("DELETE /moderation/{id}", middleware.WithLogging(moderationHandler.Unhide))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("rialo-dao API v1"))
	})

	return mux
}
