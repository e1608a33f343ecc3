// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// RecordStore is the persistence adapter the vault writes notebooks through.
// A record is an opaque JSON document under a string key; every Set replaces
// the whole document atomically.
type RecordStore interface {
	// Get returns the document stored under key, or [ErrRecordNotFound].
	Get(ctx context.Context, key string) (json.RawMessage, error)
	// Set stores value under key, replacing any previous document.
	Set(ctx context.Context, key string, value json.RawMessage) error
	// Close releases the backend.
	Close() error
}

// ErrorClassificator decides whether a failed database operation may be
// retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
