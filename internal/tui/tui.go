// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui is the terminal front end of the campaign vault. It shows the
// notebook of one campaign as tabs and drives every section operation through
// the vault service.
package tui

import (
	"context"

	"github.com/MKhiriev/go-campaign-vault/internal/logger"
	"github.com/MKhiriev/go-campaign-vault/internal/service"
	"github.com/MKhiriev/go-campaign-vault/models"
	tea "github.com/charmbracelet/bubbletea"
)

type TUI struct {
	services   *service.Services
	buildInfo  models.AppBuildInfo
	campaignID string
	logger     *logger.Logger
}

// New builds the TUI. A non-empty campaignID is opened on start.
func New(services *service.Services, info models.AppBuildInfo, campaignID string, logger *logger.Logger) (*TUI, error) {
	return &TUI{
		services:   services,
		buildInfo:  info,
		campaignID: campaignID,
		logger:     logger,
	}, nil
}

// Run blocks until the user quits. Leaving with ctrl+c yields [ErrUserQuit].
func (t *TUI) Run(ctx context.Context) error {
	model := newAppModel(ctx, t.services, t.buildInfo, t.campaignID)
	finalModel, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(appModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		t.logger.Info().Msg("user left with ctrl+c")
		return ErrUserQuit
	}
	return nil
}
