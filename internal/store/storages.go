// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-campaign-vault/internal/config"
	"github.com/MKhiriev/go-campaign-vault/internal/logger"
)

// NewLocalRecordStore opens the in-process backend named by cfg.Backend.
// SQL backends are migrated before the store is returned. The remote
// backend is not local and yields [ErrUnsupportedBackend].
func NewLocalRecordStore(ctx context.Context, cfg config.Storage, logger *logger.Logger) (RecordStore, error) {
	logger.Info().Str("backend", cfg.Backend).Msg("creating record store...")

	switch cfg.Backend {
	case config.BackendSQLite, config.BackendPostgres:
		return newSQLRecordStore(ctx, cfg, logger)
	case config.BackendBadger:
		return NewBadgerRecordStore(cfg.Dir, logger)
	case config.BackendFile:
		return NewFileRecordStore(cfg.Dir, logger)
	case config.BackendMemory:
		return NewMemoryRecordStore(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedBackend, cfg.Backend)
	}
}

func newSQLRecordStore(ctx context.Context, cfg config.Storage, logger *logger.Logger) (RecordStore, error) {
	var (
		db  *DB
		err error
	)
	if cfg.Backend == config.BackendPostgres {
		db, err = NewConnectPostgres(ctx, cfg.DB, logger)
	} else {
		db, err = NewConnectSQLite(ctx, cfg.DB, logger)
	}
	if err != nil {
		return nil, fmt.Errorf("%s connection error: %w", cfg.Backend, err)
	}

	if err := db.Migrate(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return NewSQLRecordStore(db, logger), nil
}
