// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"

	"github.com/MKhiriev/go-campaign-vault/internal/logger"
)

const badgerKeyPrefix = "record:"

// badgerRecordStore keeps records in an embedded badger database. Each Set
// is a single read-write transaction.
type badgerRecordStore struct {
	db     *badger.DB
	logger *logger.Logger
}

// NewBadgerRecordStore opens a badger database in dir, or an in-memory one
// when dir is empty.
func NewBadgerRecordStore(dir string, logger *logger.Logger) (RecordStore, error) {
	opts := badger.DefaultOptions(dir)
	if dir == "" {
		opts = badger.DefaultOptions("").WithInMemory(true)
	}
	opts.Logger = nil
	opts.SyncWrites = true

	db, err := badger.Open(opts)
	if err != nil {
		logger.Err(err).Str("func", "NewBadgerRecordStore").Str("dir", dir).Msg("error opening badger database")
		return nil, fmt.Errorf("open badger database: %w", err)
	}
	logger.Debug().Str("func", "NewBadgerRecordStore").Bool("in_memory", dir == "").Msg("badger database opened")

	return &badgerRecordStore{db: db, logger: logger}, nil
}

func (b *badgerRecordStore) Get(ctx context.Context, key string) (json.RawMessage, error) {
	if key == "" {
		return nil, ErrEmptyKey
	}

	var value []byte
	err := b.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(badgerKeyPrefix + key))
		if err != nil {
			return err
		}
		value, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrRecordNotFound, key)
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "badgerRecordStore.Get").
			Str("key", key).
			Msg("failed to read record")
		return nil, b.wrap(err)
	}

	return json.RawMessage(value), nil
}

func (b *badgerRecordStore) Set(ctx context.Context, key string, value json.RawMessage) error {
	if key == "" {
		return ErrEmptyKey
	}

	err := b.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(badgerKeyPrefix+key), value)
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "badgerRecordStore.Set").
			Str("key", key).
			Msg("failed to write record")
		return b.wrap(err)
	}

	return nil
}

func (b *badgerRecordStore) Close() error {
	return b.db.Close()
}

func (b *badgerRecordStore) wrap(err error) error {
	switch {
	case errors.Is(err, badger.ErrConflict):
		return fmt.Errorf("%w: %w", ErrTransient, err)
	case errors.Is(err, badger.ErrDBClosed):
		return fmt.Errorf("%w: %w", ErrStoreClosed, err)
	}
	return err
}
