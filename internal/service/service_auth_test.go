// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-campaign-vault/internal/config"
	"github.com/MKhiriev/go-campaign-vault/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAuthService(key string) AuthService {
	return NewAuthService(config.App{
		TokenSignKey:  key,
		TokenIssuer:   "campaign-vault",
		TokenDuration: time.Hour,
	}, logger.Nop())
}

func TestAuthService_CreateAndParse(t *testing.T) {
	svc := newTestAuthService("sign-key")
	ctx := context.Background()

	token, err := svc.CreateToken(ctx, "tui")
	require.NoError(t, err)
	require.NotEmpty(t, token.String())

	parsed, err := svc.ParseToken(ctx, token.String())
	require.NoError(t, err)
	assert.Equal(t, "tui", parsed.Subject)
}

func TestAuthService_CreateToken_NoSignKey(t *testing.T) {
	_, err := newTestAuthService("").CreateToken(context.Background(), "tui")
	assert.ErrorIs(t, err, ErrTokenCreationFailed)
}

func TestAuthService_ParseToken_ForeignKey(t *testing.T) {
	ctx := context.Background()
	token, err := newTestAuthService("one").CreateToken(ctx, "tui")
	require.NoError(t, err)

	_, err = newTestAuthService("two").ParseToken(ctx, token.String())
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)

	_, err = newTestAuthService("two").ParseToken(ctx, "garbage")
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}
