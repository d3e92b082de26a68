// Copyright (c) 2026 Rialo Foundation.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http/httptest"
	"testing"

	"github.com/rialohq/rialo-dao/models"
	"github.com/rialohq/rialo-dao/testutil"
)

func TestTrendingTop(t *testing.T) {
	snaps := &testutil.StaticSnapshots{Snap: testutil.NewSnapshot([]models.Proposal{
		{Title: "Quiet", YesVotes: 1, NoVotes: 0},
		{Title: "Busy", YesVotes: 10, NoVotes: 5},
		{Title: "Hot", YesVotes: 30, NoVotes: 2},
	})}
	h := NewTrendingHandler(snaps)

	w := httptest.NewRecorder()
	h.Top(w, testutil.MakeRequest("GET", "/trending", nil, nil))
	testutil.AssertStatus(t, w, 200)

	var resp models.TrendingResponse
	testutil.AssertJSON(t, w, &resp)

	if len(resp.Proposals) != 3 {
		t.Fatalf("Expected 3 entries, got %d", len(resp.Proposals))
	}
	if resp.Proposals[0].ID != 3 || resp.Proposals[1].ID != 2 || resp.Proposals[2].ID != 1 {
		t.Errorf("Expected order [3 2 1], got [%d %d %d]",
			resp.Proposals[0].ID, resp.Proposals[1].ID, resp.Proposals[2].ID)
	}
	if resp.Proposals[0].Rank != 1 {
		t.Errorf("Expected top entry rank 1, got %d", resp.Proposals[0].Rank)
	}
	if resp.Proposals[0].TotalVotes != 32 {
		t.Errorf("Expected total 32, got %d", resp.Proposals[0].TotalVotes)
	}
}

func TestTrendingExcludesHidden(t *testing.T) {
	snaps := &testutil.StaticSnapshots{Snap: testutil.NewSnapshot([]models.Proposal{
		{Title: "Visible", YesVotes: 1, NoVotes: 0},
		{Title: "Moderated", YesVotes: 100, NoVotes: 0},
	}, 2)}
	h := NewTrendingHandler(snaps)

	w := httptest.NewRecorder()
	h.Top(w, testutil.MakeRequest("GET", "/trending", nil, nil))
	testutil.AssertStatus(t, w, 200)

	var resp models.TrendingResponse
	testutil.AssertJSON(t, w, &resp)

	if len(resp.Proposals) != 1 || resp.Proposals[0].ID != 1 {
		t.Errorf("Expected only proposal 1 in the ranking, got %+v", resp.Proposals)
	}
}

func TestTrendingEmpty(t *testing.T) {
	snaps := &testutil.StaticSnapshots{Snap: testutil.NewSnapshot(nil)}
	h := NewTrendingHandler(snaps)

	w := httptest.NewRecorder()
	h.Top(w, testutil.MakeRequest("GET", "/trending", nil, nil))
	testutil.AssertStatus(t, w, 200)

	var resp models.TrendingResponse
	testutil.AssertJSON(t, w, &resp)

	if len(resp.Proposals) != 0 {
		t.Errorf("Expected empty ranking, got %d entries", len(resp.Proposals))
	}
}

func TestTrendingNoSnapshot(t *testing.T) {
	h := NewTrendingHandler(&testutil.StaticSnapshots{})

	w := httptest.NewRecorder()
	h.Top(w, testutil.MakeRequest("GET", "/trending", nil, nil))
	testutil.AssertStatus(t, w, 503)
}
