// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestCheckPassword(t *testing.T) {
	tests := []struct {
		name       string
		submitted  string
		configured string
		wantErr    bool
	}{
		{"correct password", "hunter2", "hunter2", false},
		{"wrong password", "hunter3", "hunter2", true},
		{"empty submitted", "", "hunter2", true},
		{"case sensitive", "Hunter2", "hunter2", true},
		{"prefix only", "hunter", "hunter2", true},
		{"suffix extra", "hunter22", "hunter2", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckPassword(tt.submitted, tt.configured)
			if (err != nil) != tt.wantErr {
				t.Errorf("CheckPassword() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && err != ErrInvalidCredentials {
				t.Errorf("CheckPassword() error = %v, want %v", err, ErrInvalidCredentials)
			}
		})
	}
}

func TestIssueAndVerifyToken(t *testing.T) {
	secret := []byte("test-secret")

	token, err := IssueToken(secret)
	if err != nil {
		t.Fatalf("IssueToken() error = %v", err)
	}
	if token == "" {
		t.Fatal("IssueToken() returned empty token")
	}

	claims, err := VerifyToken(secret, token)
	if err != nil {
		t.Fatalf("VerifyToken() error = %v", err)
	}

	if claims.User != TokenUser {
		t.Errorf("claims.User = %q, want %q", claims.User, TokenUser)
	}
	if claims.ID == "" {
		t.Error("claims.ID (jti) is empty")
	}

	// Expiry should be TokenTTL from now, within generous skew
	expiry := claims.ExpiresAt.Time
	wantExpiry := time.Now().Add(TokenTTL)
	if diff := wantExpiry.Sub(expiry); diff > time.Minute || diff < -time.Minute {
		t.Errorf("expiry = %v, want ~%v", expiry, wantExpiry)
	}
}

func TestIssueToken_Unique(t *testing.T) {
	secret := []byte("test-secret")

	t1, err := IssueToken(secret)
	if err != nil {
		t.Fatal(err)
	}
	t2, err := IssueToken(secret)
	if err != nil {
		t.Fatal(err)
	}

	// Distinct JTIs make every issued token distinct
	if t1 == t2 {
		t.Error("IssueToken() produced identical tokens")
	}
}

func TestVerifyToken_Invalid(t *testing.T) {
	secret := []byte("test-secret")
	valid, err := IssueToken(secret)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"garbage", "not-a-token"},
		{"truncated", valid[:len(valid)/2]},
		{"tampered signature", valid[:len(valid)-2] + "xx"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := VerifyToken(secret, tt.token); err != ErrTokenInvalid {
				t.Errorf("VerifyToken() error = %v, want %v", err, ErrTokenInvalid)
			}
		})
	}
}

func TestVerifyToken_WrongSecret(t *testing.T) {
	token, err := IssueToken([]byte("secret-one"))
	if err != nil {
		t.Fatal(err)
	}

	if _, err := VerifyToken([]byte("secret-two"), token); err != ErrTokenInvalid {
		t.Errorf("VerifyToken() with wrong secret error = %v, want %v", err, ErrTokenInvalid)
	}
}

func TestVerifyToken_Expired(t *testing.T) {
	secret := []byte("test-secret")

	// Build a token that expired yesterday
	claims := &Claims{
		User: TokenUser,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        "expired-test",
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-48 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-24 * time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := VerifyToken(secret, token); err != ErrTokenExpired {
		t.Errorf("VerifyToken() error = %v, want %v", err, ErrTokenExpired)
	}
}

func TestVerifyToken_RejectsUnsignedAlg(t *testing.T) {
	// A token signed with "none" must never verify, even with a valid payload
	claims := &Claims{
		User: TokenUser,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        "alg-none-test",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := VerifyToken([]byte("test-secret"), token); err != ErrTokenInvalid {
		t.Errorf("VerifyToken() error = %v, want %v", err, ErrTokenInvalid)
	}
}

func BenchmarkIssueToken(b *testing.B) {
	secret := []byte("bench-secret")
	for i := 0; i < b.N; i++ {
		IssueToken(secret)
	}
}

func BenchmarkVerifyToken(b *testing.B) {
	secret := []byte("bench-secret")
	token, _ := IssueToken(secret)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		VerifyToken(secret, token)
	}
}
