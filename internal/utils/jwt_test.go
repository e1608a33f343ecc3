// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testIssuer = "campaign-vault"
	testKey    = "secret-key"
)

func signClaims(t *testing.T, claims jwt.RegisteredClaims, key string) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(key))
	require.NoError(t, err)
	return s
}

func TestGenerateJWTToken(t *testing.T) {
	before := time.Now().Truncate(time.Second)

	token, err := GenerateJWTToken(testIssuer, "tui", time.Hour, testKey)
	require.NoError(t, err)

	assert.NotEmpty(t, token.SignedString)
	assert.Equal(t, token.SignedString, token.String())
	assert.Equal(t, "tui", token.Subject)
	assert.WithinDuration(t, before.Add(time.Hour), token.ExpiresAt, 2*time.Second)
	assert.False(t, token.Expired(time.Now()))
	assert.True(t, token.Expired(token.ExpiresAt))

	claims, ok := token.Token.Claims.(jwt.RegisteredClaims)
	require.True(t, ok)
	assert.Equal(t, testIssuer, claims.Issuer)
	assert.Equal(t, jwt.ClaimStrings{TokenAudience}, claims.Audience)
	assert.NotEmpty(t, claims.ID)

	other, err := GenerateJWTToken(testIssuer, "tui", time.Hour, testKey)
	require.NoError(t, err)
	assert.NotEqual(t, token.SignedString, other.SignedString)
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name    string
		issuer  string
		subject string
		ttl     time.Duration
		key     string
	}{
		{"empty issuer", "", "tui", time.Hour, testKey},
		{"empty subject", testIssuer, "", time.Hour, testKey},
		{"zero ttl", testIssuer, "tui", 0, testKey},
		{"negative ttl", testIssuer, "tui", -time.Minute, testKey},
		{"empty key", testIssuer, "tui", time.Hour, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.issuer, tt.subject, tt.ttl, tt.key)
			assert.ErrorIs(t, err, ErrTokenParams)
		})
	}
}

func TestValidateAndParseJWTToken(t *testing.T) {
	generated, err := GenerateJWTToken(testIssuer, "tui", 5*time.Minute, testKey)
	require.NoError(t, err)

	parsed, err := ValidateAndParseJWTToken(generated.SignedString, testKey, testIssuer)
	require.NoError(t, err)

	assert.Equal(t, "tui", parsed.Subject)
	assert.True(t, parsed.Token.Valid)
	assert.Equal(t, generated.ExpiresAt.Unix(), parsed.ExpiresAt.Unix())
}

func TestValidateAndParseJWTToken_Rejects(t *testing.T) {
	valid, err := GenerateJWTToken(testIssuer, "tui", time.Minute, testKey)
	require.NoError(t, err)

	now := time.Now()
	base := jwt.RegisteredClaims{
		Issuer:    testIssuer,
		Subject:   "tui",
		Audience:  jwt.ClaimStrings{TokenAudience},
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Minute)),
	}

	expired := base
	expired.ExpiresAt = jwt.NewNumericDate(now.Add(-time.Minute))
	noExpiry := base
	noExpiry.ExpiresAt = nil
	otherAudience := base
	otherAudience.Audience = jwt.ClaimStrings{"someone-else"}
	noSubject := base
	noSubject.Subject = ""

	noneSigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, base).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
		key   string
		iss   string
	}{
		{"wrong key", valid.SignedString, "other-key", testIssuer},
		{"no key configured", valid.SignedString, "", testIssuer},
		{"wrong issuer", valid.SignedString, testKey, "someone-else"},
		{"expired", signClaims(t, expired, testKey), testKey, testIssuer},
		{"no expiry", signClaims(t, noExpiry, testKey), testKey, testIssuer},
		{"other audience", signClaims(t, otherAudience, testKey), testKey, testIssuer},
		{"no subject", signClaims(t, noSubject, testKey), testKey, testIssuer},
		{"garbage", "not.a.token", testKey, testIssuer},
		{"alg none", noneSigned, testKey, testIssuer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateAndParseJWTToken(tt.token, tt.key, tt.iss)
			assert.Error(t, err)
		})
	}
}

func TestParseBearerToken(t *testing.T) {
	token, err := ParseBearerToken("Bearer abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	token, err = ParseBearerToken("  bearer\txyz ")
	require.NoError(t, err)
	assert.Equal(t, "xyz", token)

	for _, bad := range []string{"", "Bearer", "Basic abc", "Bearer a b"} {
		_, err = ParseBearerToken(bad)
		assert.ErrorIs(t, err, ErrAuthorizationHeader, "header %q", bad)
	}
}
