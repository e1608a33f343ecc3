// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/go-campaign-vault/internal/config"
	"github.com/MKhiriev/go-campaign-vault/internal/logger"
	"github.com/MKhiriev/go-campaign-vault/internal/store"
	"github.com/MKhiriev/go-campaign-vault/internal/utils"
	"github.com/MKhiriev/go-campaign-vault/internal/vault"
)

// Services aggregates the services shared by the daemon and the terminal
// client.
type Services struct {
	VaultService   VaultService
	AuthService    AuthService
	AppInfoService AppInfoService
}

// NewServices wires the vault service over records and machine and wraps it
// with input validation.
func NewServices(records store.RecordStore, machine *vault.Machine, cfg config.App, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("app info service: %w", err)
	}

	vaultService := NewVaultService(records, machine, utils.NewUUIDGenerator(), logger)

	return &Services{
		VaultService:   NewVaultValidationService().Wrap(vaultService),
		AuthService:    NewAuthService(cfg, logger),
		AppInfoService: appInfo,
	}, nil
}
