// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Fit Journal API server.

Fit Journal is a single-operator fitness tracker. One password guards all
writes; all state lives in one JSON document covering profile stats, weekly
progress, muscle measurements, diet plans, exercise plans, and habit cards.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	SECRET_PASSWORD=... JWT_SECRET=... go run main.go

Or with flags:

	go run main.go -p 3000 -f database.json

A .env file in the working directory is loaded at startup if present.

# Configuration

Required settings:

  - SECRET_PASSWORD (-password): Login password
  - JWT_SECRET (-jwt-secret): Secret for signing access tokens

Optional settings:

  - PORT (-p): Server port (default: 3000)
  - DATA_FILE (-f): Document file path (default: database.json)
  - CORS_ORIGIN (-cors-origin): Allowed CORS origin (default: *)

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (login, document read/save)
  - router: Route definitions (gorilla/mux with CORS)
  - middleware: Logging, JSON helpers, bearer token extraction
  - models: The FitnessDocument aggregate and request/response types
  - auth: Password check and JWT issue/verify
  - store: Whole-document JSON file persistence with first-run seeding
  - client: Go port of the browser session and editing logic
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
