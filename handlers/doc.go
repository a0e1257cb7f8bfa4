// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers implements the HTTP endpoints of the fitness journal
API.

# Handlers

AuthHandler owns POST /api/login: it compares the submitted password to
the configured secret in constant time and returns a signed access
token on success.

DataHandler owns the document endpoints:

  - GET /api/data returns the whole document. Reads are public; the
    journal is a single-operator system and the read path is what the
    UI boots from before login. The first read seeds the default
    document.
  - POST /api/data replaces the whole document. Writes require a valid
    bearer token. The body is never merged with the stored state.

# Status Codes

The write path distinguishes a missing credential from a bad one:

	401 Unauthorized  no Authorization header / no bearer token
	403 Forbidden     token present but invalid or expired
	400 Bad Request   body is not valid JSON
	500 Internal      the store could not be read or written

Handlers are constructed with their dependencies:

	h := handlers.NewDataHandler(st, cfg)
	r.HandleFunc("/api/data", middleware.WithLogging(h.SaveData)).Methods("POST")
*/
package handlers
