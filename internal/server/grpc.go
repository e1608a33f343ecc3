// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	"google.golang.org/grpc"

	"github.com/MKhiriev/go-campaign-vault/internal/config"
	vaultgrpc "github.com/MKhiriev/go-campaign-vault/internal/handler/grpc"
	"github.com/MKhiriev/go-campaign-vault/internal/logger"
)

const healthRefreshInterval = 5 * time.Second

type grpcServer struct {
	handler  *vaultgrpc.Handler
	server   *grpc.Server
	listener net.Listener
	logger   *logger.Logger
}

func newGRPCServer(handler *vaultgrpc.Handler, cfg config.Server, logger *logger.Logger) (*grpcServer, error) {
	lis, err := net.Listen("tcp", cfg.GRPCAddress)
	if err != nil {
		return nil, fmt.Errorf("listen gRPC on %s: %w", cfg.GRPCAddress, err)
	}

	s := grpc.NewServer(grpc.UnaryInterceptor(handler.UnaryLogging))
	handler.Register(s)

	return &grpcServer{
		handler:  handler,
		server:   s,
		listener: lis,
		logger:   logger,
	}, nil
}

// serve runs the health service and refreshes its status until ctx ends.
func (g *grpcServer) serve(ctx context.Context) error {
	go g.handler.Watch(ctx, healthRefreshInterval)

	g.logger.Info().Str("address", g.listener.Addr().String()).Msg("gRPC health listening")
	err := g.server.Serve(g.listener)
	if err == nil || errors.Is(err, grpc.ErrServerStopped) {
		return nil
	}
	return fmt.Errorf("serve gRPC: %w", err)
}

func (g *grpcServer) shutdown() {
	g.server.GracefulStop()
}
