// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-campaign-vault/internal/config"
	"github.com/MKhiriev/go-campaign-vault/internal/logger"
	"github.com/MKhiriev/go-campaign-vault/internal/utils"
	"github.com/MKhiriev/go-campaign-vault/models"
)

// authService issues and checks the bearer tokens of the local notebook
// API. Its fields are fixed at construction, so it is safe for concurrent
// use.
type authService struct {
	cfg    config.App
	logger *logger.Logger
}

func NewAuthService(cfg config.App, logger *logger.Logger) AuthService {
	return &authService{cfg: cfg, logger: logger}
}

func (a *authService) CreateToken(ctx context.Context, subject string) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.cfg.TokenIssuer, subject, a.cfg.TokenDuration, a.cfg.TokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	logger.FromContext(ctx).Info().
		Str("subject", subject).
		Time("expires_at", token.ExpiresAt).
		Msg("API token issued")
	return token, nil
}

// ParseToken hides the reason a token was refused behind
// [ErrTokenIsExpiredOrInvalid]; the reason is only logged at debug level.
func (a *authService) ParseToken(ctx context.Context, raw string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(raw, a.cfg.TokenSignKey, a.cfg.TokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("API token refused")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}
	return token, nil
}
