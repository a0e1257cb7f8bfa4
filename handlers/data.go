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
	"github.com/danielhkuo/fit-journal/store"
)

// DataHandler serves reads and writes of the fitness document
type DataHandler struct {
	store *store.Store
	cfg   cliparse.Config
}

// NewDataHandler creates a new data handler
func NewDataHandler(st *store.Store, cfg cliparse.Config) *DataHandler {
	return &DataHandler{store: st, cfg: cfg}
}

// GetData handles GET /api/data. Reads require no authentication. On
// first run the store seeds and persists the default document.
func (h *DataHandler) GetData(w http.ResponseWriter, r *http.Request) {
	doc, err := h.store.Load()
	if err != nil {
		slog.Error("failed to load document", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Could not read data")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, doc)
}

// SaveData handles POST /api/data. The body is the entire document and
// fully replaces whatever is on disk. A missing token is 401; a token
// that is present but invalid or expired is 403.
func (h *DataHandler) SaveData(w http.ResponseWriter, r *http.Request) {
	token := middleware.BearerToken(r)
	if token == "" {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Missing access token")
		return
	}

	if _, err := auth.VerifyToken([]byte(h.cfg.JWTSecret), token); err != nil {
		slog.Warn("save rejected", "remote", r.RemoteAddr, "error", err)
		middleware.ErrorResponse(w, http.StatusForbidden, "Invalid or expired token")
		return
	}

	// The JSON literal "null" decodes into a nil pointer without error;
	// treat it the same as a missing body rather than wiping the store
	// with a zero document.
	var doc *models.FitnessDocument
	if err := middleware.ParseJSONBody(r, &doc); err != nil || doc == nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if err := h.store.Save(doc); err != nil {
		slog.Error("failed to save document", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Could not save data")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.SaveResponse{Message: "Data saved successfully."})
}
