// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router wires the handlers into the HTTP surface.

# Routes

	GET  /health     liveness probe, plain "OK"
	POST /api/login  password exchange for an access token
	GET  /api/data   whole fitness document, unauthenticated
	POST /api/data   whole-document replace, bearer token required
	GET  /           API identification string

Every route is wrapped in the logging middleware. CORS is handled in
front of the mux so browser clients on a different origin can reach the
API; the allowed origin comes from configuration and preflight OPTIONS
requests never reach the handlers.
*/
package router
