// Copyright (c) 2026 Rialo Foundation.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http/httptest"
	"testing"

	"github.com/rialohq/rialo-dao/models"
	"github.com/rialohq/rialo-dao/testutil"
)

func TestVisibleIDs(t *testing.T) {
	tests := []struct {
		name   string
		count  uint64
		hidden []uint64
		query  string
		want   []uint64
	}{
		{"descending, most recent first", 3, nil, "", []uint64{3, 2, 1}},
		{"hidden removed", 3, []uint64{2}, "", []uint64{3, 1}},
		{"substring on id text", 12, nil, "1", []uint64{12, 11, 10, 1}},
		{"exact id", 12, nil, "12", []uint64{12}},
		{"non-digit query matches nothing", 5, nil, "abc", []uint64{}},
		{"empty range", 0, nil, "", []uint64{}},
		{"hidden and query combined", 12, []uint64{11}, "1", []uint64{12, 10, 1}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			hidden := map[uint64]bool{}
			for _, id := range tc.hidden {
				hidden[id] = true
			}

			got := VisibleIDs(tc.count, hidden, tc.query)

			if len(got) != len(tc.want) {
				t.Fatalf("Expected %v, got %v", tc.want, got)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Fatalf("Expected %v, got %v", tc.want, got)
				}
			}
		})
	}
}

// Catalog length with no query is count minus hidden ids in range.
func TestVisibleIDsLength(t *testing.T) {
	hidden := map[uint64]bool{2: true, 5: true, 99: true}
	const count = 10

	got := VisibleIDs(count, hidden, "")

	// 99 is outside [1, 10] and must not affect the length
	want := count - 2
	if len(got) != want {
		t.Errorf("Expected %d ids, got %d", want, len(got))
	}
}

func TestCatalogList(t *testing.T) {
	snaps := &testutil.StaticSnapshots{Snap: testutil.NewSnapshot([]models.Proposal{
		{Title: "First", YesVotes: 5, NoVotes: 2},
		{Title: "Second", YesVotes: 1, NoVotes: 1},
		{Title: "Third", YesVotes: 0, NoVotes: 0},
	}, 2)}
	h := NewCatalogHandler(snaps)

	w := httptest.NewRecorder()
	h.List(w, testutil.MakeRequest("GET", "/proposals", nil, nil))
	testutil.AssertStatus(t, w, 200)

	var resp models.CatalogResponse
	testutil.AssertJSON(t, w, &resp)

	if resp.Count != 3 {
		t.Errorf("Expected proposal_count 3, got %d", resp.Count)
	}
	if len(resp.Proposals) != 2 {
		t.Fatalf("Expected 2 visible proposals, got %d", len(resp.Proposals))
	}
	if resp.Proposals[0].ID != 3 || resp.Proposals[1].ID != 1 {
		t.Errorf("Expected ids [3 1], got [%d %d]", resp.Proposals[0].ID, resp.Proposals[1].ID)
	}
	if resp.Proposals[0].YesShare != 0 {
		t.Errorf("Expected zero-vote proposal to have yes_share 0, got %v", resp.Proposals[0].YesShare)
	}
	if !resp.Proposals[1].Leading {
		t.Error("Expected proposal 1 (5 yes, 2 no) to be leading")
	}
}

func TestCatalogListWithQuery(t *testing.T) {
	snaps := &testutil.StaticSnapshots{Snap: testutil.NewSnapshot([]models.Proposal{
		{Title: "One"}, {Title: "Two"}, {Title: "Three"},
	})}
	h := NewCatalogHandler(snaps)

	w := httptest.NewRecorder()
	h.List(w, testutil.MakeRequest("GET", "/proposals?q=2", nil, nil))
	testutil.AssertStatus(t, w, 200)

	var resp models.CatalogResponse
	testutil.AssertJSON(t, w, &resp)

	if len(resp.Proposals) != 1 || resp.Proposals[0].ID != 2 {
		t.Fatalf("Expected only proposal 2, got %+v", resp.Proposals)
	}
	if resp.Query != "2" {
		t.Errorf("Expected query echoed back, got %q", resp.Query)
	}
}

func TestCatalogListNoSnapshot(t *testing.T) {
	h := NewCatalogHandler(&testutil.StaticSnapshots{})

	w := httptest.NewRecorder()
	h.List(w, testutil.MakeRequest("GET", "/proposals", nil, nil))
	testutil.AssertStatus(t, w, 503)
}
