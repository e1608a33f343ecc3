// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/MKhiriev/go-campaign-vault/internal/client"
	"github.com/MKhiriev/go-campaign-vault/internal/config"
	"github.com/MKhiriev/go-campaign-vault/internal/handler"
	"github.com/MKhiriev/go-campaign-vault/internal/logger"
	"github.com/MKhiriev/go-campaign-vault/internal/server"
	"github.com/MKhiriev/go-campaign-vault/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	info := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	log := logger.NewLogger("campaign-vaultd")
	log.Info().
		Str("version", info.BuildVersion()).
		Str("date", info.BuildDate()).
		Str("commit", info.BuildCommit()).
		Msg("starting campaign vault daemon")

	cfg, err := config.GetStructuredConfig()
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = logger.SetLevel(cfg.Logging.Level); err != nil {
		log.Warn().Err(err).Msg("unknown log level, keeping debug")
	}
	if cfg.App.Version == "" {
		cfg.App.Version = info.BuildVersion()
	}

	log.Debug().
		Str("backend", cfg.Storage.Backend).
		Str("http_address", cfg.Server.HTTPAddress).
		Str("grpc_address", cfg.Server.GRPCAddress).
		Bool("auth", cfg.App.TokenSignKey != "").
		Msg("received configs")

	ctx := log.WithContext(context.Background())

	runtime, err := client.OpenRuntime(ctx, cfg.Storage, cfg.Crypto, cfg.App, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create vault runtime")
	}
	runtime.Start()
	defer func() {
		_ = runtime.Close()
	}()

	if cfg.App.Campaign != "" {
		if _, err = runtime.Services.VaultService.Load(ctx, cfg.App.Campaign); err != nil {
			log.Fatal().Err(err).Str("campaign_id", cfg.App.Campaign).Msg("load startup campaign")
		}
	}

	if cfg.App.TokenSignKey != "" {
		token, err := runtime.Services.AuthService.CreateToken(ctx, "local")
		if err != nil {
			log.Fatal().Err(err).Msg("issue local API token")
		}
		fmt.Printf("API token (expires %s): %s\n", token.ExpiresAt.Format(time.RFC3339), token)
	}

	handlers, err := handler.NewHandlers(runtime.Services, cfg.Server, cfg.App, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	sigCtx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	if err = srv.Run(sigCtx); err != nil {
		log.Error().Err(err).Msg("vault daemon stopped with error")
	}
}
