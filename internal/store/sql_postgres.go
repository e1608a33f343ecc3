// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/MKhiriev/go-campaign-vault/internal/config"
	"github.com/MKhiriev/go-campaign-vault/internal/logger"
	"github.com/MKhiriev/go-campaign-vault/migrations"
)

// NewConnectPostgres opens a pool of at most four connections to cfg.DSN.
func NewConnectPostgres(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	return openDB(ctx, dbOptions{
		driver:     "pgx",
		dsn:        cfg.DSN,
		dialect:    migrations.DialectPostgres,
		classifier: NewPostgresErrorClassifier(),
		maxOpen:    4,
		maxIdle:    2,
	}, log)
}
