// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-campaign-vault/internal/logger"
)

// sqlRecordStore is the [RecordStore] over the notebook_records table. It
// serves both the sqlite and the PostgreSQL backend; only the placeholder
// format and the error classifier differ.
type sqlRecordStore struct {
	*DB
	logger *logger.Logger
	now    func() time.Time
}

// NewSQLRecordStore returns a [RecordStore] over db. The schema must be
// migrated already.
func NewSQLRecordStore(db *DB, logger *logger.Logger) RecordStore {
	return &sqlRecordStore{
		DB:     db,
		logger: logger,
		now:    time.Now,
	}
}

func (s *sqlRecordStore) Get(ctx context.Context, key string) (json.RawMessage, error) {
	log := logger.FromContext(ctx)

	if key == "" {
		return nil, ErrEmptyKey
	}

	query, args, err := buildGetRecordQuery(s.placeholders(), key)
	if err != nil {
		log.Err(err).Str("func", "sqlRecordStore.Get").Str("key", key).Msg("failed to create query")
		return nil, err
	}

	var value string
	err = s.DB.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrRecordNotFound, key)
	}
	if err != nil {
		log.Err(err).
			Str("func", "sqlRecordStore.Get").
			Str("key", key).
			Msg("failed to read record")
		return nil, s.classify(fmt.Errorf("%w: %w", ErrScanningRow, err))
	}

	return json.RawMessage(value), nil
}

func (s *sqlRecordStore) Set(ctx context.Context, key string, value json.RawMessage) error {
	log := logger.FromContext(ctx)

	if key == "" {
		return ErrEmptyKey
	}

	query, args, err := buildUpsertRecordQuery(s.placeholders(), key, value, s.now())
	if err != nil {
		log.Err(err).Str("func", "sqlRecordStore.Set").Str("key", key).Msg("failed to create query")
		return err
	}

	if _, err = s.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "sqlRecordStore.Set").
			Str("key", key).
			Int("bytes", len(value)).
			Msg("failed to execute upsert for record")
		return s.classify(fmt.Errorf("%w: %w", ErrExecutingStatement, err))
	}

	return nil
}

func (s *sqlRecordStore) Close() error {
	return s.DB.Close()
}

// classify marks retryable database errors with [ErrTransient].
func (s *sqlRecordStore) classify(err error) error {
	if s.errorClassificator != nil && s.errorClassificator.Classify(err) == Retryable {
		return fmt.Errorf("%w: %w", ErrTransient, err)
	}
	return err
}
