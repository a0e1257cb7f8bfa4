// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - LoginRequest: password

# Response Types

Types for JSON responses:

  - LoginResponse: accessToken
  - SaveResponse: message
  - ErrorResponse: error, message

# Domain Types

FitnessDocument is the single aggregate holding all persisted application
state. Every read returns it whole and every save replaces it whole; there
are no partial writes. Its sections:

  - Profile: current body stats (height, weight, fat, muscle)
  - Progress: weekly body stats, actual vs targets
  - MuscleMeasurements: weekly tape measurements, actual vs targets
  - Diet: day name → ordered meal items
  - Exercises: day name → ordered exercise items
  - Habits: fixed habit cards (read-only in practice)

All measurement values are free-form strings: the user types "70", "70kg",
or "Bodyweight" and the system stores it verbatim.

# Constants

Weekdays lists the seven day keys used in Diet and Exercises. A missing
day key means the day has no items, never an error.

# Cloning

Clone deep-copies a document via a JSON round trip:

	before := doc.Clone()

Used by the client editor and by tests comparing pre/post-edit state.
*/
package models
