// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"sync"
)

// memoryRecordStore keeps records in a map for the life of the process.
type memoryRecordStore struct {
	mu      sync.RWMutex
	records map[string][]byte
	closed  bool
}

// NewMemoryRecordStore returns an empty process-local [RecordStore].
func NewMemoryRecordStore() RecordStore {
	return &memoryRecordStore{records: make(map[string][]byte)}
}

func (m *memoryRecordStore) Get(_ context.Context, key string) (json.RawMessage, error) {
	if key == "" {
		return nil, ErrEmptyKey
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return nil, ErrStoreClosed
	}
	value, ok := m.records[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrRecordNotFound, key)
	}
	return bytes.Clone(value), nil
}

func (m *memoryRecordStore) Set(_ context.Context, key string, value json.RawMessage) error {
	if key == "" {
		return ErrEmptyKey
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrStoreClosed
	}
	m.records[key] = bytes.Clone(value)
	return nil
}

func (m *memoryRecordStore) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}
