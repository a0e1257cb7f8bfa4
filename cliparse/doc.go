// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3000)
  - DataFile: Path of the JSON document file (default: database.json)
  - Password: Login password (required)
  - JWTSecret: Secret for signing access tokens (required)
  - CORSOrigin: Allowed CORS origin (default: *)

# CLI Flags

	-p            Server port
	-f            Document file path
	-password     Login password
	-jwt-secret   Token signing secret
	-cors-origin  Allowed CORS origin

# Environment Variables

Flags fall back to environment variables:

	PORT            → -p
	DATA_FILE       → -f
	SECRET_PASSWORD → -password
	JWT_SECRET      → -jwt-secret
	CORS_ORIGIN     → -cors-origin

CLI flags take precedence over environment variables. main loads a .env
file via godotenv before parsing, so a local .env works for development.

# Validation

ParseFlags returns an error if required values are missing:

  - SECRET_PASSWORD must be provided
  - JWT_SECRET must be provided

# Example

	// In main.go
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	st := store.Open(cfg.DataFile)
	// ...
	handler := router.NewRouter(st, cfg)
*/
package cliparse
