// Copyright (c) 2026 Rialo Foundation.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	_ "modernc.org/sqlite"

	"github.com/rialohq/rialo-dao/cliparse"
	"github.com/rialohq/rialo-dao/db"
	"github.com/rialohq/rialo-dao/models"
	"github.com/rialohq/rialo-dao/poller"
)

// SetupTestDB creates a fresh in-memory sqlite database with the full schema.
func SetupTestDB(t *testing.T) *db.Store {
	t.Helper()

	store, err := db.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	if err := store.CreateSchema(); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	return store
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:            3320,
		DatabaseURL:     ":memory:",
		DatabaseType:    "sqlite",
		RPCURL:          "http://localhost:8545",
		ContractAddress: "0x5d851da0Aa55D39c60d8729147405311b3D6Ddb2",
		ChainID:         84532,
		ModerationSalt:  "test-moderation-salt",
		PollInterval:    time.Second,
	}
}

// FakeSource is a scriptable in-memory proposal registry.
type FakeSource struct {
	mu sync.Mutex

	Count     uint64
	Proposals map[uint64]models.Proposal

	CountErr error
	FetchErr error

	// Writes record their inputs and hand out sequential fake tx hashes.
	CreateCalls []string
	VoteCalls   []VoteCall
	SubmitErr   error

	// ConfirmErr is returned by WaitConfirmed; ConfirmRelease, when set,
	// blocks WaitConfirmed until closed.
	ConfirmErr     error
	ConfirmRelease chan struct{}

	txSeq int
}

type VoteCall struct {
	ID      uint64
	Support bool
}

// NewFakeSource seeds a registry with proposals 1..len(proposals) in order.
func NewFakeSource(proposals ...models.Proposal) *FakeSource {
	f := &FakeSource{Proposals: make(map[uint64]models.Proposal)}
	for i, p := range proposals {
		id := uint64(i + 1)
		p.ID = id
		p.Exists = true
		f.Proposals[id] = p
	}
	f.Count = uint64(len(proposals))
	return f
}

func (f *FakeSource) ProposalCount(ctx context.Context) (uint64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.CountErr != nil {
		return 0, f.CountErr
	}
	return f.Count, nil
}

func (f *FakeSource) ProposalByID(ctx context.Context, id uint64) (models.Proposal, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.FetchErr != nil {
		return models.Proposal{}, f.FetchErr
	}
	p, ok := f.Proposals[id]
	if !ok {
		return models.Proposal{ID: id}, nil // exists=false, like the contract
	}
	return p, nil
}

func (f *FakeSource) CreateProposal(ctx context.Context, title string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.SubmitErr != nil {
		return "", f.SubmitErr
	}
	f.CreateCalls = append(f.CreateCalls, title)
	return f.nextTxHash(), nil
}

func (f *FakeSource) Vote(ctx context.Context, id uint64, support bool) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.SubmitErr != nil {
		return "", f.SubmitErr
	}
	f.VoteCalls = append(f.VoteCalls, VoteCall{ID: id, Support: support})
	return f.nextTxHash(), nil
}

func (f *FakeSource) WaitConfirmed(ctx context.Context, txHash string) error {
	f.mu.Lock()
	release := f.ConfirmRelease
	err := f.ConfirmErr
	f.mu.Unlock()

	if release != nil {
		select {
		case <-release:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return err
}

func (f *FakeSource) nextTxHash() string {
	f.txSeq++
	return fmt.Sprintf("0x%064x", f.txSeq)
}

// WriteCount returns how many writes reached the fake registry.
func (f *FakeSource) WriteCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.CreateCalls) + len(f.VoteCalls)
}

// StaticSnapshots serves a fixed snapshot and counts refresh requests.
type StaticSnapshots struct {
	mu        sync.Mutex
	Snap      *poller.Snapshot
	Refreshes int
}

func (s *StaticSnapshots) Snapshot() *poller.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Snap
}

func (s *StaticSnapshots) Refresh() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Refreshes++
}

func (s *StaticSnapshots) RefreshCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Refreshes
}

// NewSnapshot builds a snapshot over proposals 1..len(titles) with the given
// vote counts and hidden ids.
func NewSnapshot(proposals []models.Proposal, hidden ...uint64) *poller.Snapshot {
	list := make([]models.Proposal, len(proposals))
	for i, p := range proposals {
		p.ID = uint64(i + 1)
		p.Exists = true
		list[i] = p
	}
	hiddenSet := map[uint64]bool{}
	for _, id := range hidden {
		hiddenSet[id] = true
	}
	return &poller.Snapshot{
		Count:     uint64(len(list)),
		Proposals: list,
		Hidden:    hiddenSet,
		FetchedAt: time.Now(),
	}
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
