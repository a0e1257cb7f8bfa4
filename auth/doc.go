// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides the password check and access token lifecycle.

# Password Check

The server has a single configured password and no user accounts:

	err := auth.CheckPassword(submitted, cfg.Password)

Comparison is constant-time (hmac.Equal). A mismatch returns
ErrInvalidCredentials. There is no lockout, rate limiting, or attempt
counting - the design assumes a single trusted operator.

# Access Tokens

Tokens are HS256 JWTs carrying the fixed identity claim user="admin",
a random jti, and an expiry 24 hours from issuance:

	token, err := auth.IssueToken([]byte(cfg.JWTSecret))

Verification is stateless and purely computational:

	claims, err := auth.VerifyToken([]byte(cfg.JWTSecret), token)

VerifyToken distinguishes two failures:

  - ErrTokenExpired: well-formed and correctly signed, but past expiry
  - ErrTokenInvalid: everything else (malformed, forged, wrong key,
    non-HMAC signing algorithm)

Because verification never consults storage, a token cannot be revoked
before its natural expiry. Logout is purely client-side.
*/
package auth
