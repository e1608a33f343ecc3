// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/MKhiriev/go-campaign-vault/models"
)

// TokenAudience is the aud claim of every notebook API token. Tokens signed
// with the same key for another audience are rejected.
const TokenAudience = "campaign-vault-api"

var (
	ErrTokenParams          = errors.New("token needs an issuer, a subject, a sign key and a positive lifetime")
	ErrTokenSubject         = errors.New("token has no subject")
	ErrAuthorizationHeader  = errors.New("authorization header is not \"Bearer <token>\"")
	errEmptyVerificationKey = errors.New("no token sign key configured")
)

// GenerateJWTToken signs an HS256 token for subject that expires after ttl.
// Every token gets a random jti so two tokens issued in the same second
// still differ.
func GenerateJWTToken(issuer, subject string, ttl time.Duration, signKey string) (models.Token, error) {
	if issuer == "" || subject == "" || ttl <= 0 || signKey == "" {
		return models.Token{}, ErrTokenParams
	}

	now := time.Now()
	expires := now.Add(ttl)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ID:        uuid.NewString(),
		Issuer:    issuer,
		Subject:   subject,
		Audience:  jwt.ClaimStrings{TokenAudience},
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expires),
	})

	signed, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("sign token: %w", err)
	}

	return models.Token{
		Token:        token,
		SignedString: signed,
		Subject:      subject,
		ExpiresAt:    time.Unix(expires.Unix(), 0),
	}, nil
}

// ValidateAndParseJWTToken accepts only HS256 tokens signed with signKey,
// issued by issuer for [TokenAudience], carrying an expiry and a subject.
func ValidateAndParseJWTToken(raw, signKey, issuer string) (models.Token, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(raw, claims,
		func(*jwt.Token) (any, error) {
			if signKey == "" {
				return nil, errEmptyVerificationKey
			}
			return []byte(signKey), nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithAudience(TokenAudience),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return models.Token{}, fmt.Errorf("verify token: %w", err)
	}
	if claims.Subject == "" {
		return models.Token{}, ErrTokenSubject
	}

	parsed := models.Token{Token: token, SignedString: raw, Subject: claims.Subject}
	if claims.ExpiresAt != nil {
		parsed.ExpiresAt = claims.ExpiresAt.Time
	}
	return parsed, nil
}

// ParseBearerToken returns the credential of an "Authorization: Bearer x"
// header. The scheme is matched case-insensitively.
func ParseBearerToken(header string) (string, error) {
	fields := strings.Fields(header)
	if len(fields) != 2 || !strings.EqualFold(fields[0], "Bearer") {
		return "", ErrAuthorizationHeader
	}
	return fields[1], nil
}
