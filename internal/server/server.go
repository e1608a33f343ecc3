// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-campaign-vault/internal/config"
	"github.com/MKhiriev/go-campaign-vault/internal/handler"
	"github.com/MKhiriev/go-campaign-vault/internal/logger"
)

var (
	errNoServersAreCreated = errors.New("neither HTTP nor gRPC transport is configured")
	errNoServersToRun      = errors.New("server has no transport to run")
)

type server struct {
	httpServer *httpServer
	gRPCServer *grpcServer
	logger     *logger.Logger
}

// NewServer builds a transport for every address in cfg that has a
// handler. The gRPC listener is bound here so a busy port fails startup.
func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating vault transports...")
	s := &server{logger: logger}

	if cfg.HTTPAddress != "" && handlers.HTTP != nil {
		s.httpServer = newHTTPServer(handlers.HTTP.Init(), cfg, logger)
	}
	if cfg.GRPCAddress != "" && handlers.GRPC != nil {
		g, err := newGRPCServer(handlers.GRPC, cfg, logger)
		if err != nil {
			return nil, fmt.Errorf("create gRPC server: %w", err)
		}
		s.gRPCServer = g
	}

	if s.httpServer == nil && s.gRPCServer == nil {
		return nil, errNoServersAreCreated
	}
	return s, nil
}

func (s *server) Run(ctx context.Context) error {
	if s.httpServer == nil && s.gRPCServer == nil {
		return errNoServersToRun
	}

	g, gctx := errgroup.WithContext(ctx)
	if s.httpServer != nil {
		g.Go(s.httpServer.serve)
	}
	if s.gRPCServer != nil {
		g.Go(func() error { return s.gRPCServer.serve(gctx) })
	}
	g.Go(func() error {
		<-gctx.Done()
		s.shutdown()
		return nil
	})

	if err := g.Wait(); err != nil {
		s.logger.Error().Err(err).Msg("vault transport stopped with error")
		return err
	}
	s.logger.Info().Msg("vault transports stopped")
	return nil
}

func (s *server) shutdown() {
	if s.httpServer != nil {
		s.httpServer.shutdown()
	}
	if s.gRPCServer != nil {
		s.gRPCServer.shutdown()
	}
}
