// Copyright (c) 2026 Rialo Foundation.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/rialohq/rialo-dao/models"
)

// Store wraps the moderation/preference database. It is safe for concurrent
// use; all state lives in the underlying *sql.DB.
type Store struct {
	conn   *sql.DB
	driver string
}

// Open connects to the configured database. driver is "sqlite" or "postgres";
// the matching database/sql driver must be registered by the caller (main
// imports both).
func Open(driver, url string) (*Store, error) {
	if driver != "postgres" && driver != "sqlite" {
		return nil, fmt.Errorf("unsupported database type %q", driver)
	}

	conn, err := sql.Open(driver, url)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if driver == "sqlite" {
		// In-memory sqlite databases are per-connection
		conn.SetMaxOpenConns(1)
	}
	return &Store{conn: conn, driver: driver}, nil
}

func (s *Store) Close() error { return s.conn.Close() }

func (s *Store) Ping() error { return s.conn.Ping() }

// rebind converts ? placeholders to $N for postgres. Queries in this package
// are written with ? so the same SQL runs on both drivers.
func (s *Store) rebind(query string) string {
	if s.driver != "postgres" {
		return query
	}
	var b strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func (s *Store) CreateSchema() error {
	_, err := s.conn.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

const schema = `
-- Moderation blacklist: display-layer veto only, never touches chain data
CREATE TABLE IF NOT EXISTS hidden_proposal (
    proposal_id BIGINT PRIMARY KEY,
    reason TEXT,
    hidden_at TIMESTAMP NOT NULL
);

-- Single-row-per-name application preferences (theme)
CREATE TABLE IF NOT EXISTS app_preference (
    name TEXT PRIMARY KEY,
    value TEXT NOT NULL,
    updated_at TIMESTAMP NOT NULL
);
`

// ListHiddenIDs returns the moderation blacklist as a set.
func (s *Store) ListHiddenIDs(ctx context.Context) (map[uint64]bool, error) {
	rows, err := s.conn.QueryContext(ctx, "SELECT proposal_id FROM hidden_proposal")
	if err != nil {
		return nil, fmt.Errorf("failed to query hidden proposals: %w", err)
	}
	defer rows.Close()

	hidden := map[uint64]bool{}
	for rows.Next() {
		var id uint64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan hidden proposal: %w", err)
		}
		hidden[id] = true
	}
	return hidden, rows.Err()
}

// ListHidden returns the full moderation rows, most recent first.
func (s *Store) ListHidden(ctx context.Context) ([]models.HiddenProposal, error) {
	rows, err := s.conn.QueryContext(ctx,
		"SELECT proposal_id, reason, hidden_at FROM hidden_proposal ORDER BY hidden_at DESC")
	if err != nil {
		return nil, fmt.Errorf("failed to query hidden proposals: %w", err)
	}
	defer rows.Close()

	entries := []models.HiddenProposal{}
	for rows.Next() {
		var h models.HiddenProposal
		var reason sql.NullString
		if err := rows.Scan(&h.ProposalID, &reason, &h.HiddenAt); err != nil {
			return nil, fmt.Errorf("failed to scan hidden proposal: %w", err)
		}
		h.Reason = reason.String
		entries = append(entries, h)
	}
	return entries, rows.Err()
}

// Hide adds a proposal id to the blacklist. Hiding an already hidden id
// updates its reason.
func (s *Store) Hide(ctx context.Context, id uint64, reason string) error {
	_, err := s.conn.ExecContext(ctx, s.rebind(`
		DELETE FROM hidden_proposal WHERE proposal_id = ?
	`), id)
	if err != nil {
		return fmt.Errorf("failed to clear hidden proposal: %w", err)
	}
	_, err = s.conn.ExecContext(ctx, s.rebind(`
		INSERT INTO hidden_proposal (proposal_id, reason, hidden_at)
		VALUES (?, ?, ?)
	`), id, reason, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to hide proposal: %w", err)
	}
	return nil
}

// Unhide removes a proposal id from the blacklist. Returns false if the id
// was not hidden.
func (s *Store) Unhide(ctx context.Context, id uint64) (bool, error) {
	res, err := s.conn.ExecContext(ctx, s.rebind(`
		DELETE FROM hidden_proposal WHERE proposal_id = ?
	`), id)
	if err != nil {
		return false, fmt.Errorf("failed to unhide proposal: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}
	return n > 0, nil
}

const themePreference = "theme"

// GetTheme reads the persisted theme preference, defaulting to light.
func (s *Store) GetTheme(ctx context.Context) (string, error) {
	var value string
	err := s.conn.QueryRowContext(ctx, s.rebind(`
		SELECT value FROM app_preference WHERE name = ?
	`), themePreference).Scan(&value)
	if err == sql.ErrNoRows {
		return models.ThemeLight, nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read theme preference: %w", err)
	}
	return value, nil
}

// SetTheme persists the theme preference.
func (s *Store) SetTheme(ctx context.Context, theme string) error {
	_, err := s.conn.ExecContext(ctx, s.rebind(`
		DELETE FROM app_preference WHERE name = ?
	`), themePreference)
	if err != nil {
		return fmt.Errorf("failed to clear theme preference: %w", err)
	}
	_, err = s.conn.ExecContext(ctx, s.rebind(`
		INSERT INTO app_preference (name, value, updated_at)
		VALUES (?, ?, ?)
	`), themePreference, theme, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to write theme preference: %w", err)
	}
	return nil
}
