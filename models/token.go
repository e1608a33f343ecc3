// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Token is a bearer credential for the local notebook API. Subject names
// the client (for example "tui" or "local"); there are no user accounts.
type Token struct {
	*jwt.Token `json:"-"`

	SignedString string    `json:"token"`
	Subject      string    `json:"subject"`
	ExpiresAt    time.Time `json:"expires_at"`
}

func (t Token) String() string {
	return t.SignedString
}

// Expired reports whether the token is past its expiry at now. A token
// without an expiry never expires.
func (t Token) Expired(now time.Time) bool {
	return !t.ExpiresAt.IsZero() && !now.Before(t.ExpiresAt)
}
