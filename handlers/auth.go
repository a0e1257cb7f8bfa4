// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/fit-journal/auth"
	"github.com/danielhkuo/fit-journal/cliparse"
	"github.com/danielhkuo/fit-journal/middleware"
	"github.com/danielhkuo/fit-journal/models"
)

// AuthHandler handles login requests
type AuthHandler struct {
	cfg cliparse.Config
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(cfg cliparse.Config) *AuthHandler {
	return &AuthHandler{cfg: cfg}
}

// Login handles POST /api/login. It checks the submitted password
// against the configured one and returns a signed access token.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if err := auth.CheckPassword(req.Password, h.cfg.Password); err != nil {
		slog.Warn("login rejected", "remote", r.RemoteAddr)
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Incorrect password")
		return
	}

	token, err := auth.IssueToken([]byte(h.cfg.JWTSecret))
	if err != nil {
		slog.Error("failed to issue token", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Could not create access token")
		return
	}

	slog.Info("login succeeded", "remote", r.RemoteAddr)
	middleware.JSONResponse(w, http.StatusOK, models.LoginResponse{AccessToken: token})
}
