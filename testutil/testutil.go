// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package testutil provides shared helpers for handler and integration
// tests: a canonical test configuration, a throwaway store on a temp
// directory, token factories, and request/assert helpers.
package testutil

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/danielhkuo/fit-journal/auth"
	"github.com/danielhkuo/fit-journal/cliparse"
	"github.com/danielhkuo/fit-journal/store"
)

// Credentials shared by every test.
const (
	TestPassword  = "test-password"
	TestJWTSecret = "test-jwt-secret-0123456789abcdef"
)

// GetTestConfig returns a config suitable for handler tests.
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:       3000,
		DataFile:   "database.json",
		Password:   TestPassword,
		JWTSecret:  TestJWTSecret,
		CORSOrigin: "*",
	}
}

// SetupTestStore creates a store backed by a file in a temp directory
// that is removed when the test finishes.
func SetupTestStore(t *testing.T) *store.Store {
	t.Helper()
	return store.Open(filepath.Join(t.TempDir(), "database.json"))
}

// IssueTestToken returns a valid token signed with TestJWTSecret.
func IssueTestToken(t *testing.T) string {
	t.Helper()
	token, err := auth.IssueToken([]byte(TestJWTSecret))
	if err != nil {
		t.Fatalf("Failed to issue test token: %v", err)
	}
	return token
}

// IssueExpiredToken returns a correctly signed token whose expiry is in
// the past.
func IssueExpiredToken(t *testing.T) string {
	t.Helper()
	claims := auth.Claims{
		User: auth.TokenUser,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-48 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-24 * time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(TestJWTSecret))
	if err != nil {
		t.Fatalf("Failed to sign expired token: %v", err)
	}
	return token
}

// MakeRequest creates a test HTTP request with an optional JSON body.
func MakeRequest(t *testing.T, method, path string, body interface{}) *http.Request {
	t.Helper()

	var reqBody *bytes.Buffer
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("Failed to marshal request body: %v", err)
		}
		reqBody = bytes.NewBuffer(jsonData)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reqBody)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req
}

// AssertStatus checks the response status code.
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the given struct.
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v. Body: %s", err, w.Body.String())
	}
}
