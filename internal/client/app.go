// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-campaign-vault/internal/logger"
)

var ErrIncompleteApp = errors.New("client app needs a runtime and a ui")

// UI is the interactive front end. Run blocks until the user quits.
type UI interface {
	Run(ctx context.Context) error
}

// App is the terminal client process. It owns the runtime for as long as
// the UI runs and closes it afterwards.
type App struct {
	runtime *Runtime
	ui      UI
	logger  *logger.Logger
}

func NewApp(runtime *Runtime, ui UI, log *logger.Logger) (*App, error) {
	if runtime == nil || ui == nil {
		return nil, ErrIncompleteApp
	}
	return &App{runtime: runtime, ui: ui, logger: log}, nil
}

func (a *App) Run(ctx context.Context) error {
	a.runtime.Start()
	defer func() {
		if err := a.runtime.Close(); err != nil {
			a.logger.Err(err).Msg("closing vault runtime")
		}
	}()

	a.logger.Info().Msg("client started")
	err := a.ui.Run(a.logger.WithContext(ctx))
	a.logger.Info().Err(err).Msg("client stopped")
	if err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}
