// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package grpc

import (
	"context"
	"time"

	"github.com/MKhiriev/go-campaign-vault/internal/logger"
	"github.com/MKhiriev/go-campaign-vault/internal/service"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// VaultServiceName is the health service name reporting whether a notebook
// is loaded. The empty name reports the daemon itself.
const VaultServiceName = "campaignvault.Vault"

// Handler is the root gRPC transport handler. It exposes the standard gRPC
// health protocol so supervisors can probe the vault daemon.
type Handler struct {
	services *service.Services

	health *health.Server

	logger *logger.Logger
}

// NewHandler constructs a [Handler]. The daemon reports SERVING at once;
// the vault service starts NOT_SERVING until a notebook is loaded.
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")

	hs := health.NewServer()
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	hs.SetServingStatus(VaultServiceName, healthpb.HealthCheckResponse_NOT_SERVING)

	return &Handler{
		services: services,
		health:   hs,
		logger:   logger,
	}
}

// Register attaches the health service to s.
func (h *Handler) Register(s grpc.ServiceRegistrar) {
	healthpb.RegisterHealthServer(s, h.health)
}

// Refresh recomputes the vault service status from the active campaign.
func (h *Handler) Refresh() {
	status := healthpb.HealthCheckResponse_NOT_SERVING
	if _, ok := h.services.VaultService.ActiveCampaign(); ok {
		status = healthpb.HealthCheckResponse_SERVING
	}
	h.health.SetServingStatus(VaultServiceName, status)
}

// Watch calls Refresh every interval until ctx is done, then marks every
// service NOT_SERVING.
func (h *Handler) Watch(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	h.Refresh()
	for {
		select {
		case <-ctx.Done():
			h.health.Shutdown()
			return
		case <-ticker.C:
			h.Refresh()
		}
	}
}

// UnaryLogging logs every unary call with its method, duration and status.
func (h *Handler) UnaryLogging(ctx context.Context, req any, info *grpc.UnaryServerInfo, next grpc.UnaryHandler) (any, error) {
	start := time.Now()
	resp, err := next(h.logger.WithContext(ctx), req)

	event := h.logger.Debug()
	if err != nil {
		event = h.logger.Warn().Err(err)
	}
	event.Str("method", info.FullMethod).Dur("duration", time.Since(start)).Msg("grpc call")

	return resp, err
}
