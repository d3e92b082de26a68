// Copyright (c) 2026 Rialo Foundation.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http/httptest"
	"testing"

	"github.com/rialohq/rialo-dao/models"
	"github.com/rialohq/rialo-dao/testutil"
)

func TestProposalGet(t *testing.T) {
	snaps := &testutil.StaticSnapshots{Snap: testutil.NewSnapshot([]models.Proposal{
		{Title: "First", YesVotes: 3, NoVotes: 1},
		{Title: "Second", YesVotes: 0, NoVotes: 0},
	})}
	h := NewProposalHandler(snaps)

	req := testutil.MakeRequest("GET", "/proposals/1", nil, nil)
	req.SetPathValue("id", "1")
	w := httptest.NewRecorder()
	h.Get(w, req)
	testutil.AssertStatus(t, w, 200)

	var view models.ProposalView
	testutil.AssertJSON(t, w, &view)

	if view.ID != 1 || view.Title != "First" {
		t.Errorf("Expected proposal 1 %q, got %d %q", "First", view.ID, view.Title)
	}
	if view.YesShare != 0.75 {
		t.Errorf("Expected yes_share 0.75, got %v", view.YesShare)
	}
	if view.HasPrev {
		t.Error("Expected has_prev false at the oldest proposal")
	}
	if !view.HasNext {
		t.Error("Expected has_next true at the oldest proposal")
	}
}

func TestProposalGetHidden(t *testing.T) {
	snaps := &testutil.StaticSnapshots{Snap: testutil.NewSnapshot([]models.Proposal{
		{Title: "Moderated", YesVotes: 9, NoVotes: 1},
	}, 1)}
	h := NewProposalHandler(snaps)

	req := testutil.MakeRequest("GET", "/proposals/1", nil, nil)
	req.SetPathValue("id", "1")
	w := httptest.NewRecorder()
	h.Get(w, req)
	testutil.AssertStatus(t, w, 200)

	var view models.ProposalView
	testutil.AssertJSON(t, w, &view)

	if view.Status != models.ProposalHidden {
		t.Errorf("Expected status hidden, got %q", view.Status)
	}
	if view.Title != "" || view.YesVotes != 0 {
		t.Error("Expected title and counters suppressed")
	}
}

func TestProposalGetBadID(t *testing.T) {
	h := NewProposalHandler(&testutil.StaticSnapshots{Snap: testutil.NewSnapshot(nil)})

	for _, raw := range []string{"abc", "0", "-1", ""} {
		req := testutil.MakeRequest("GET", "/proposals/"+raw, nil, nil)
		req.SetPathValue("id", raw)
		w := httptest.NewRecorder()
		h.Get(w, req)
		testutil.AssertStatus(t, w, 400)
	}
}

func TestProposalGetNotFound(t *testing.T) {
	snaps := &testutil.StaticSnapshots{Snap: testutil.NewSnapshot([]models.Proposal{
		{Title: "Only"},
	})}
	h := NewProposalHandler(snaps)

	req := testutil.MakeRequest("GET", "/proposals/5", nil, nil)
	req.SetPathValue("id", "5")
	w := httptest.NewRecorder()
	h.Get(w, req)
	testutil.AssertStatus(t, w, 404)
}

func TestProposalGetNoSnapshot(t *testing.T) {
	h := NewProposalHandler(&testutil.StaticSnapshots{})

	req := testutil.MakeRequest("GET", "/proposals/1", nil, nil)
	req.SetPathValue("id", "1")
	w := httptest.NewRecorder()
	h.Get(w, req)
	testutil.AssertStatus(t, w, 503)
}
