// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/MKhiriev/go-campaign-vault/internal/client"
	"github.com/MKhiriev/go-campaign-vault/internal/config"
	"github.com/MKhiriev/go-campaign-vault/internal/logger"
	"github.com/MKhiriev/go-campaign-vault/internal/tui"
	"github.com/MKhiriev/go-campaign-vault/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	info := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Printf("Campaign Vault %s, built %s\n", info.Short(), info.BuildDate())

	log := logger.NewClientLogger("campaign-vault")
	cfg, err := config.GetClientConfig()
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = logger.SetLevel(cfg.Logging.Level); err != nil {
		log.Warn().Err(err).Msg("unknown log level, keeping debug")
	}

	appCfg := config.App{Version: cfg.App.Version}
	if appCfg.Version == "" {
		appCfg.Version = info.BuildVersion()
	}

	ctx := log.WithContext(context.Background())

	runtime, err := client.OpenRuntime(ctx, cfg.Storage, cfg.Crypto, appCfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create vault runtime")
	}

	ui, err := tui.New(runtime.Services, info, cfg.App.Campaign, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(runtime, ui, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(ctx); err != nil && !errors.Is(err, tui.ErrUserQuit) {
		log.Fatal().Err(err).Msg("client run error")
	}
}
