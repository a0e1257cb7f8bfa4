// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/fit-journal/models"
	"github.com/danielhkuo/fit-journal/testutil"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	return NewRouter(testutil.SetupTestStore(t), testutil.GetTestConfig())
}

func TestRouter_Health(t *testing.T) {
	r := newTestRouter(t)

	req := testutil.MakeRequest(t, "GET", "/health", nil)
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)
	if w.Body.String() != "OK" {
		t.Errorf("Expected body 'OK', got '%s'", w.Body.String())
	}
}

func TestRouter_Root(t *testing.T) {
	r := newTestRouter(t)

	req := testutil.MakeRequest(t, "GET", "/", nil)
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)
	if w.Body.String() != "fit-journal API v1" {
		t.Errorf("Unexpected root body: '%s'", w.Body.String())
	}
}

func TestRouter_Routes(t *testing.T) {
	r := newTestRouter(t)

	testCases := []struct {
		name          string
		method        string
		path          string
		body          interface{}
		wantedStatus  int
	}{
		{"login wrong password", "POST", "/api/login",
			models.LoginRequest{Password: "wrong"}, http.StatusUnauthorized},
		{"login right password", "POST", "/api/login",
			models.LoginRequest{Password: testutil.TestPassword}, http.StatusOK},
		{"get data", "GET", "/api/data", nil, http.StatusOK},
		{"save without token", "POST", "/api/data",
			map[string]string{}, http.StatusUnauthorized},
		{"unknown path", "GET", "/api/unknown", nil, http.StatusNotFound},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := testutil.MakeRequest(t, tc.method, tc.path, tc.body)
			w := httptest.NewRecorder()

			r.ServeHTTP(w, req)

			testutil.AssertStatus(t, w, tc.wantedStatus)
		})
	}
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	r := newTestRouter(t)

	testCases := []struct {
		method string
		path   string
	}{
		{"GET", "/api/login"},
		{"DELETE", "/api/data"},
		{"PUT", "/api/data"},
		{"POST", "/health"},
	}

	for _, tc := range testCases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := testutil.MakeRequest(t, tc.method, tc.path, nil)
			w := httptest.NewRecorder()

			r.ServeHTTP(w, req)

			testutil.AssertStatus(t, w, http.StatusMethodNotAllowed)
		})
	}
}

func TestRouter_CORSPreflight(t *testing.T) {
	r := newTestRouter(t)

	req := httptest.NewRequest("OPTIONS", "/api/data", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", "POST")
	req.Header.Set("Access-Control-Request-Headers", "Content-Type, Authorization")
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK && w.Code != http.StatusNoContent {
		t.Fatalf("Preflight returned status %d", w.Code)
	}
	if w.Header().Get("Access-Control-Allow-Origin") == "" {
		t.Error("Expected Access-Control-Allow-Origin header on preflight response")
	}
}

func TestRouter_CORSSimpleRequest(t *testing.T) {
	r := newTestRouter(t)

	req := testutil.MakeRequest(t, "GET", "/api/data", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)
	if w.Header().Get("Access-Control-Allow-Origin") == "" {
		t.Error("Expected Access-Control-Allow-Origin header on simple request")
	}
}

// TestRouter_FullFlow walks the whole write path through the real
// router: login, fetch, edit one field, save, fetch again.
func TestRouter_FullFlow(t *testing.T) {
	r := newTestRouter(t)

	// Login
	req := testutil.MakeRequest(t, "POST", "/api/login",
		models.LoginRequest{Password: testutil.TestPassword})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	var login models.LoginResponse
	testutil.AssertJSON(t, w, &login)

	// Fetch (seeds the store)
	req = testutil.MakeRequest(t, "GET", "/api/data", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	var doc models.FitnessDocument
	testutil.AssertJSON(t, w, &doc)

	// Edit and save
	doc.Profile.Weight = "73.5"
	req = testutil.MakeRequest(t, "POST", "/api/data", &doc)
	req.Header.Set("Authorization", "Bearer "+login.AccessToken)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	// Re-fetch and verify only the edited field differs
	req = testutil.MakeRequest(t, "GET", "/api/data", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	var after models.FitnessDocument
	testutil.AssertJSON(t, w, &after)
	if after.Profile.Weight != "73.5" {
		t.Errorf("Expected saved weight '73.5', got '%s'", after.Profile.Weight)
	}
	if after.Profile.Height != doc.Profile.Height {
		t.Error("Untouched field changed across save")
	}
	if len(after.Progress) != len(doc.Progress) {
		t.Error("Progress table changed across save")
	}
}
