// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP helpers shared by every handler.

# Logging

WithLogging wraps a handler and emits one structured log line when the
request starts and another when it completes, with the method, path, and
duration:

	r.HandleFunc("/api/data", middleware.WithLogging(h.GetData)).Methods("GET")

# Responses

JSONResponse and ErrorResponse are the only two ways handlers write
bodies. ErrorResponse pairs the standard status text with a
human-readable message:

	middleware.ErrorResponse(w, http.StatusUnauthorized, "Missing access token")

produces

	{"error":"Unauthorized","message":"Missing access token"}

# Requests

ParseJSONBody decodes a request body into a struct and closes the body.
BearerToken pulls the raw token out of an "Authorization: Bearer ..."
header, returning "" when the header is absent or uses a different
scheme so callers can distinguish a missing credential from a bad one.
*/
package middleware
