// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package client

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"

	"github.com/danielhkuo/fit-journal/models"
)

var (
	// ErrLoginRejected is returned when the server refuses the password.
	ErrLoginRejected = errors.New("client: login rejected")

	// ErrReauthRequired is returned when a write is refused because the
	// cached token is missing, invalid, or expired. The cache has
	// already been cleared; the caller must log in again.
	ErrReauthRequired = errors.New("client: re-authentication required")
)

// TokenCache stores the access token between requests. Implementations
// decide where the token lives; the client only ever reads, replaces,
// or clears it.
type TokenCache interface {
	Token() string
	SetToken(token string)
	Clear()
}

// SessionCache is an in-memory TokenCache. The token is lost when the
// process exits, which forces a fresh login per run.
type SessionCache struct {
	mu    sync.Mutex
	token string
}

func (c *SessionCache) Token() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.token
}

func (c *SessionCache) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
}

func (c *SessionCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = ""
}

// Client talks to a fitness journal API server and manages the access
// token across calls.
type Client struct {
	baseURL string
	http    *http.Client
	cache   TokenCache
}

// New creates a client for the server at baseURL. A nil cache gets an
// in-memory SessionCache.
func New(baseURL string, cache TokenCache) *Client {
	if cache == nil {
		cache = &SessionCache{}
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{},
		cache:   cache,
	}
}

// LoggedIn reports whether a token is cached. It does not verify the
// token with the server; an expired token still counts until a write
// bounces.
func (c *Client) LoggedIn() bool {
	return c.cache.Token() != ""
}

// Logout drops the cached token. The token itself stays valid until it
// expires; the server keeps no session state to invalidate.
func (c *Client) Logout() {
	c.cache.Clear()
}

// Login exchanges the password for an access token and caches it.
func (c *Client) Login(password string) error {
	body, err := json.Marshal(models.LoginRequest{Password: password})
	if err != nil {
		return fmt.Errorf("client: marshal login request: %w", err)
	}

	resp, err := c.http.Post(c.baseURL+"/api/login", "application/json", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("client: login request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return ErrLoginRejected
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("client: login failed with status %d", resp.StatusCode)
	}

	var login models.LoginResponse
	if err := json.NewDecoder(resp.Body).Decode(&login); err != nil {
		return fmt.Errorf("client: decode login response: %w", err)
	}

	c.cache.SetToken(login.AccessToken)
	return nil
}

// FetchDocument retrieves the whole document. No token is attached;
// reads are public.
func (c *Client) FetchDocument() (*models.FitnessDocument, error) {
	resp, err := c.http.Get(c.baseURL + "/api/data")
	if err != nil {
		return nil, fmt.Errorf("client: fetch document: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("client: fetch document failed with status %d", resp.StatusCode)
	}

	var doc models.FitnessDocument
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return nil, fmt.Errorf("client: decode document: %w", err)
	}
	return &doc, nil
}

// SaveDocument replaces the whole document on the server. When the
// server answers 401 or 403 the cached token is cleared and
// ErrReauthRequired is returned.
func (c *Client) SaveDocument(doc *models.FitnessDocument) error {
	token := c.cache.Token()
	if token == "" {
		return ErrReauthRequired
	}

	body, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("client: marshal document: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, c.baseURL+"/api/data", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("client: build save request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("client: save request: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		return nil
	case http.StatusUnauthorized, http.StatusForbidden:
		c.cache.Clear()
		return ErrReauthRequired
	default:
		return fmt.Errorf("client: save failed with status %d", resp.StatusCode)
	}
}
