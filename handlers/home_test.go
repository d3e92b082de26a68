// Copyright (c) 2026 Rialo Foundation.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rialohq/rialo-dao/models"
	"github.com/rialohq/rialo-dao/testutil"
)

func homeSnapshots() *testutil.StaticSnapshots {
	return &testutil.StaticSnapshots{Snap: testutil.NewSnapshot([]models.Proposal{
		{Title: "First", YesVotes: 4, NoVotes: 1},
		{Title: "Second", YesVotes: 2, NoVotes: 2},
		{Title: "Third", YesVotes: 0, NoVotes: 3},
	})}
}

// sessionCookieFrom pulls the session cookie a response set, failing the test
// when there is none.
func sessionCookieFrom(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range w.Result().Cookies() {
		if c.Name == sessionCookie {
			return c
		}
	}
	t.Fatal("Expected a session cookie to be set")
	return nil
}

func TestHomeCurrentStartsAtNewest(t *testing.T) {
	h := NewHomeHandler(homeSnapshots())

	w := httptest.NewRecorder()
	h.Current(w, testutil.MakeRequest("GET", "/home", nil, nil))
	testutil.AssertStatus(t, w, 200)

	var view models.ProposalView
	testutil.AssertJSON(t, w, &view)

	if view.ID != 3 {
		t.Errorf("Expected newest proposal 3, got %d", view.ID)
	}
	if view.Status != models.ProposalActive {
		t.Errorf("Expected status active, got %q", view.Status)
	}
	if view.Title != "Third" {
		t.Errorf("Expected title Third, got %q", view.Title)
	}
	if !view.HasPrev || view.HasNext {
		t.Errorf("Expected has_prev true and has_next false at the newest proposal")
	}
	sessionCookieFrom(t, w)
}

func TestHomeNavigationAcrossRequests(t *testing.T) {
	h := NewHomeHandler(homeSnapshots())

	w := httptest.NewRecorder()
	h.Current(w, testutil.MakeRequest("GET", "/home", nil, nil))
	cookie := sessionCookieFrom(t, w)

	withSession := func(method, path string) *http.Request {
		req := testutil.MakeRequest(method, path, nil, nil)
		req.AddCookie(cookie)
		return req
	}

	w = httptest.NewRecorder()
	h.Prev(w, withSession("POST", "/home/prev"))
	testutil.AssertStatus(t, w, 200)

	var view models.ProposalView
	testutil.AssertJSON(t, w, &view)
	if view.ID != 2 {
		t.Fatalf("Expected proposal 2 after prev, got %d", view.ID)
	}
	if !view.HasPrev || !view.HasNext {
		t.Error("Expected both navigation directions available at proposal 2")
	}

	w = httptest.NewRecorder()
	h.Next(w, withSession("POST", "/home/next"))
	testutil.AssertJSON(t, w, &view)
	if view.ID != 3 {
		t.Errorf("Expected proposal 3 after next, got %d", view.ID)
	}
}

func TestHomeSessionsAreIndependent(t *testing.T) {
	h := NewHomeHandler(homeSnapshots())

	w := httptest.NewRecorder()
	h.Prev(w, testutil.MakeRequest("POST", "/home/prev", nil, nil))
	cookie := sessionCookieFrom(t, w)

	var view models.ProposalView
	testutil.AssertJSON(t, w, &view)
	if view.ID != 2 {
		t.Fatalf("Expected first session at 2 after prev, got %d", view.ID)
	}

	// A fresh request without the cookie gets its own cursor at the newest
	w = httptest.NewRecorder()
	h.Current(w, testutil.MakeRequest("GET", "/home", nil, nil))
	testutil.AssertJSON(t, w, &view)
	if view.ID != 3 {
		t.Errorf("Expected new session at 3, got %d", view.ID)
	}

	// The original session keeps its position
	req := testutil.MakeRequest("GET", "/home", nil, nil)
	req.AddCookie(cookie)
	w = httptest.NewRecorder()
	h.Current(w, req)
	testutil.AssertJSON(t, w, &view)
	if view.ID != 2 {
		t.Errorf("Expected original session still at 2, got %d", view.ID)
	}
}

func TestHomeHiddenProposal(t *testing.T) {
	snaps := &testutil.StaticSnapshots{Snap: testutil.NewSnapshot([]models.Proposal{
		{Title: "First"},
		{Title: "Second", YesVotes: 7, NoVotes: 3},
	}, 2)}
	h := NewHomeHandler(snaps)

	w := httptest.NewRecorder()
	h.Current(w, testutil.MakeRequest("GET", "/home", nil, nil))
	testutil.AssertStatus(t, w, 200)

	var view models.ProposalView
	testutil.AssertJSON(t, w, &view)

	if view.Status != models.ProposalHidden {
		t.Fatalf("Expected status hidden, got %q", view.Status)
	}
	if view.Title != "" || view.YesVotes != 0 || view.NoVotes != 0 {
		t.Error("Expected title and counters suppressed for a hidden proposal")
	}
	if view.ID != 2 || !view.HasPrev {
		t.Error("Expected navigation context preserved for a hidden proposal")
	}
}

func TestHomeNoProposals(t *testing.T) {
	snaps := &testutil.StaticSnapshots{Snap: testutil.NewSnapshot(nil)}
	h := NewHomeHandler(snaps)

	w := httptest.NewRecorder()
	h.Current(w, testutil.MakeRequest("GET", "/home", nil, nil))
	testutil.AssertStatus(t, w, 404)
}

func TestHomeNoSnapshot(t *testing.T) {
	h := NewHomeHandler(&testutil.StaticSnapshots{})

	w := httptest.NewRecorder()
	h.Current(w, testutil.MakeRequest("GET", "/home", nil, nil))
	testutil.AssertStatus(t, w, 503)
}
