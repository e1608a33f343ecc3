// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/MKhiriev/go-campaign-vault/internal/config"
	"github.com/MKhiriev/go-campaign-vault/internal/logger"
	"github.com/MKhiriev/go-campaign-vault/internal/service"
)

type Handler struct {
	services *service.Services

	// requireAuth enables the bearer-token guard on /api/notebook.
	requireAuth bool

	logger *logger.Logger
}

// NewHandler builds the HTTP handler. The token guard is on when cfg carries
// a sign key.
func NewHandler(services *service.Services, cfg config.App, logger *logger.Logger) *Handler {
	logger.Info().Bool("auth", cfg.TokenSignKey != "").Msg("http handler created")
	return &Handler{
		services:    services,
		requireAuth: cfg.TokenSignKey != "",
		logger:      logger,
	}
}
