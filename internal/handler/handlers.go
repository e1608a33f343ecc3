// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import (
	"errors"

	"github.com/MKhiriev/go-campaign-vault/internal/config"
	"github.com/MKhiriev/go-campaign-vault/internal/handler/grpc"
	"github.com/MKhiriev/go-campaign-vault/internal/handler/http"
	"github.com/MKhiriev/go-campaign-vault/internal/logger"
	"github.com/MKhiriev/go-campaign-vault/internal/service"
)

// ErrNoTransport means neither a HTTP nor a gRPC address is configured,
// leaving the daemon unreachable.
var ErrNoTransport = errors.New("vault daemon has no HTTP or gRPC address configured")

// Handlers holds one handler per configured transport. A nil field means
// that transport is switched off.
type Handlers struct {
	HTTP *http.Handler
	GRPC *grpc.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, app config.App, logger *logger.Logger) (*Handlers, error) {
	var h Handlers
	if cfg.HTTPAddress != "" {
		h.HTTP = http.NewHandler(services, app, logger)
	}
	if cfg.GRPCAddress != "" {
		h.GRPC = grpc.NewHandler(services, logger)
	}
	if h.HTTP == nil && h.GRPC == nil {
		return nil, ErrNoTransport
	}

	logger.Info().
		Bool("http", h.HTTP != nil).
		Bool("grpc", h.GRPC != nil).
		Msg("transport handlers ready")
	return &h, nil
}
