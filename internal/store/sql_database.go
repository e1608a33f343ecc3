// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-campaign-vault/internal/logger"
	"github.com/MKhiriev/go-campaign-vault/migrations"
)

// DB wraps a *sql.DB with the dialect it speaks and the classifier that
// decides which of its errors are transient.
type DB struct {
	*sql.DB
	dialect            migrations.Dialect
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// dbOptions describes how to open one SQL backend.
type dbOptions struct {
	driver     string
	dsn        string
	dialect    migrations.Dialect
	classifier ErrorClassificator
	maxOpen    int
	maxIdle    int
}

// openDB opens and pings a pool. The pool is closed again when the ping
// fails so a bad DSN does not leak connections.
func openDB(ctx context.Context, opts dbOptions, log *logger.Logger) (*DB, error) {
	log = &logger.Logger{Logger: log.With().Str("driver", opts.driver).Logger()}

	conn, err := sql.Open(opts.driver, opts.dsn)
	if err != nil {
		log.Err(err).Str("func", "openDB").Msg("cannot open database")
		return nil, fmt.Errorf("open %s database: %w", opts.driver, err)
	}
	conn.SetMaxOpenConns(opts.maxOpen)
	if opts.maxIdle > 0 {
		conn.SetMaxIdleConns(opts.maxIdle)
	}

	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "openDB").Msg("database did not answer ping")
		_ = conn.Close()
		return nil, fmt.Errorf("ping %s database: %w", opts.driver, err)
	}
	log.Debug().Str("func", "openDB").Msg("database connected")

	return &DB{
		DB:                 conn,
		dialect:            opts.dialect,
		errorClassificator: opts.classifier,
		logger:             log,
	}, nil
}

// Migrate applies pending schema migrations for the DB's dialect.
func (db *DB) Migrate(ctx context.Context) error {
	applied, err := migrations.Migrate(ctx, db.DB, db.dialect)
	if err != nil {
		return err
	}
	if len(applied) > 0 {
		db.logger.Info().Ints64("versions", applied).Msg("schema migrated")
	}
	return nil
}

// placeholders returns the bind variable format of the dialect.
func (db *DB) placeholders() sq.PlaceholderFormat {
	if db.dialect == migrations.DialectPostgres {
		return sq.Dollar
	}
	return sq.Question
}
