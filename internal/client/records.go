// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/go-campaign-vault/internal/adapter"
	"github.com/MKhiriev/go-campaign-vault/internal/config"
	"github.com/MKhiriev/go-campaign-vault/internal/logger"
	"github.com/MKhiriev/go-campaign-vault/internal/store"
)

// NewRecordStore opens the record store selected by cfg.Backend. The remote
// backend goes through the HTTP adapter, every other backend is local.
func NewRecordStore(ctx context.Context, cfg config.Storage, log *logger.Logger) (store.RecordStore, error) {
	if cfg.Backend == config.BackendRemote {
		return adapter.NewHTTPRecordStore(cfg.Remote, log)
	}
	return store.NewLocalRecordStore(ctx, cfg, log)
}
