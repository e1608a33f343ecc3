// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package migrations carries the schema of the notebook_records table. The
// SQL files are embedded and applied through a goose Provider, so nothing
// here touches goose's package-level state.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed *.sql
var schema embed.FS

// Dialect selects the SQL flavour the schema is applied with.
type Dialect = goose.Dialect

const (
	DialectSQLite   = goose.DialectSQLite3
	DialectPostgres = goose.DialectPostgres
)

var ErrNoDatabase = errors.New("migrations: no database handle")

// Migrate brings db up to the newest schema version and returns the
// versions it applied. An up-to-date database yields an empty slice.
func Migrate(ctx context.Context, db *sql.DB, dialect Dialect) ([]int64, error) {
	if db == nil {
		return nil, ErrNoDatabase
	}

	provider, err := goose.NewProvider(dialect, db, schema)
	if err != nil {
		return nil, fmt.Errorf("prepare %s schema: %w", dialect, err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return nil, fmt.Errorf("apply %s schema: %w", dialect, err)
	}

	applied := make([]int64, 0, len(results))
	for _, r := range results {
		applied = append(applied, r.Source.Version)
	}
	return applied, nil
}
