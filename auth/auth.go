// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
)

// TokenTTL is the lifetime of an issued access token. Tokens expire by
// time only; there is no revocation list.
const TokenTTL = 24 * time.Hour

// TokenUser is the fixed identity claim embedded in every token.
// The system has exactly one operator.
const TokenUser = "admin"

// Claims is the JWT payload for an access token.
type Claims struct {
	User string `json:"user"`
	jwt.RegisteredClaims
}

// CheckPassword compares a submitted secret against the configured
// password in constant time. There is no lockout or attempt counting.
func CheckPassword(submitted, configured string) error {
	if !hmac.Equal([]byte(submitted), []byte(configured)) {
		return ErrInvalidCredentials
	}
	return nil
}

// IssueToken creates a signed HS256 access token for the fixed operator
// identity, expiring TokenTTL from now.
func IssueToken(secret []byte) (string, error) {
	now := time.Now()
	claims := &Claims{
		User: TokenUser,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// VerifyToken parses and validates an access token. It returns
// ErrTokenExpired when the token is past its expiry and ErrTokenInvalid
// for anything unparseable, forged, or signed with the wrong key.
// Verification is purely computational - no lookup, no network.
func VerifyToken(secret []byte, tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}
	if !token.Valid {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}
