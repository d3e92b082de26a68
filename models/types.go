// Copyright (c) 2026 Rialo Foundation.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// Submission status constants
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusFailed    = "failed"
)

// Submission kind constants
const (
	KindVote   = "vote"
	KindCreate = "create_proposal"
)

// Theme constants
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// Proposal view status constants
const (
	ProposalActive = "active"
	ProposalHidden = "hidden"
)

// Request types

type CreateProposalRequest struct {
	Title string `json:"title"`
}

type VoteRequest struct {
	Support *bool `json:"support"`
}

type ThemeRequest struct {
	Theme string `json:"theme"`
}

type HideProposalRequest struct {
	Reason string `json:"reason"`
}

// Response types

type ThemeResponse struct {
	Theme string `json:"theme"`
}

type CatalogResponse struct {
	Query     string         `json:"query,omitempty"`
	Count     uint64         `json:"proposal_count"`
	Proposals []CatalogEntry `json:"proposals"`
}

type TrendingResponse struct {
	Proposals []TrendingEntry `json:"proposals"`
}

// Domain types

// Proposal mirrors the on-chain registry record. Vote counters only ever
// increase; Exists flips to true on creation and never back.
type Proposal struct {
	ID       uint64 `json:"id"`
	Title    string `json:"title"`
	YesVotes uint64 `json:"yes_votes"`
	NoVotes  uint64 `json:"no_votes"`
	Exists   bool   `json:"-"`
}

// TrendingEntry is one slot of the ranked top-K view.
type TrendingEntry struct {
	Rank         int     `json:"rank"` // 1-indexed
	ID           uint64  `json:"id"`
	Title        string  `json:"title"`
	YesVotes     uint64  `json:"yes_votes"`
	NoVotes      uint64  `json:"no_votes"`
	TotalVotes   uint64  `json:"total_votes"`
	TotalDisplay string  `json:"total_display"`
	YesShare     float64 `json:"yes_share"`
}

// CatalogEntry is one row of the full listing, most recent first.
type CatalogEntry struct {
	ID       uint64  `json:"id"`
	Title    string  `json:"title"`
	YesVotes uint64  `json:"yes_votes"`
	NoVotes  uint64  `json:"no_votes"`
	YesShare float64 `json:"yes_share"`
	Leading  bool    `json:"leading"` // yes strictly ahead of no
}

// ProposalView is the single-item voting view. A moderated proposal keeps its
// id and status only; title and counters are suppressed.
type ProposalView struct {
	ID            uint64  `json:"id"`
	Status        string  `json:"status"`
	Title         string  `json:"title,omitempty"`
	YesVotes      uint64  `json:"yes_votes"`
	NoVotes       uint64  `json:"no_votes"`
	YesShare      float64 `json:"yes_share"`
	ProposalCount uint64  `json:"proposal_count"`
	HasPrev       bool    `json:"has_prev"`
	HasNext       bool    `json:"has_next"`
}

// Submission tracks one relayed write from acceptance to finality.
type Submission struct {
	ID         string    `json:"id"`
	Kind       string    `json:"kind"`
	ProposalID uint64    `json:"proposal_id,omitempty"`
	TxHash     string    `json:"tx_hash"`
	Status     string    `json:"status"`
	Error      string    `json:"error,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

type HiddenProposal struct {
	ProposalID uint64    `json:"proposal_id"`
	Reason     string    `json:"reason,omitempty"`
	HiddenAt   time.Time `json:"hidden_at"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
