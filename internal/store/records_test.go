// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-campaign-vault/internal/config"
	"github.com/MKhiriev/go-campaign-vault/internal/logger"
)

func sqliteConfig(t *testing.T) config.DB {
	t.Helper()
	return config.DB{DSN: filepath.Join(t.TempDir(), "nested", "vault.db")}
}

// exerciseRecordStore runs the contract every backend must satisfy.
func exerciseRecordStore(t *testing.T, s RecordStore) {
	t.Helper()
	ctx := testContext()

	_, err := s.Get(ctx, "notebook:missing")
	require.ErrorIs(t, err, ErrRecordNotFound)

	first := json.RawMessage(`{"sections":[{"id":"a","title":"A","encrypted":false,"content":""}]}`)
	require.NoError(t, s.Set(ctx, "notebook:c1", first))

	got, err := s.Get(ctx, "notebook:c1")
	require.NoError(t, err)
	assert.JSONEq(t, string(first), string(got))

	second := json.RawMessage(`{"sections":[],"hint":"first pet"}`)
	require.NoError(t, s.Set(ctx, "notebook:c1", second))
	got, err = s.Get(ctx, "notebook:c1")
	require.NoError(t, err)
	assert.JSONEq(t, string(second), string(got))

	// keys are independent
	require.NoError(t, s.Set(ctx, "notebook:c2", first))
	got, err = s.Get(ctx, "notebook:c1")
	require.NoError(t, err)
	assert.JSONEq(t, string(second), string(got))

	_, err = s.Get(ctx, "")
	assert.ErrorIs(t, err, ErrEmptyKey)
	assert.ErrorIs(t, s.Set(ctx, "", first), ErrEmptyKey)
}

func TestMemoryRecordStore(t *testing.T) {
	s := NewMemoryRecordStore()
	exerciseRecordStore(t, s)

	require.NoError(t, s.Close())
	_, err := s.Get(testContext(), "notebook:c1")
	assert.ErrorIs(t, err, ErrStoreClosed)
	assert.ErrorIs(t, s.Set(testContext(), "notebook:c1", json.RawMessage(`{}`)), ErrStoreClosed)
}

func TestMemoryRecordStore_CopiesValues(t *testing.T) {
	s := NewMemoryRecordStore()
	value := json.RawMessage(`{"a":1}`)
	require.NoError(t, s.Set(testContext(), "k", value))
	value[2] = 'b'

	got, err := s.Get(testContext(), "k")
	require.NoError(t, err)
	assert.Equal(t, `{"a":1}`, string(got))
}

func TestFileRecordStore(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "records")
	s, err := NewFileRecordStore(dir, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	exerciseRecordStore(t, s)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	for _, e := range entries {
		assert.True(t, strings.HasSuffix(e.Name(), ".json"), e.Name())
		assert.NotContains(t, e.Name(), ":")
		assert.False(t, strings.HasPrefix(e.Name(), ".record-"), "temp file left behind")
	}
}

func TestFileRecordStore_SurvivesReopen(t *testing.T) {
	dir := t.TempDir()
	s, err := NewFileRecordStore(dir, logger.Nop())
	require.NoError(t, err)
	require.NoError(t, s.Set(testContext(), "notebook:c1", json.RawMessage(`{"sections":[]}`)))

	reopened, err := NewFileRecordStore(dir, logger.Nop())
	require.NoError(t, err)
	got, err := reopened.Get(testContext(), "notebook:c1")
	require.NoError(t, err)
	assert.JSONEq(t, `{"sections":[]}`, string(got))
}

func TestBadgerRecordStore_InMemory(t *testing.T) {
	s, err := NewBadgerRecordStore("", logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	exerciseRecordStore(t, s)
}

func TestBadgerRecordStore_OnDisk(t *testing.T) {
	dir := t.TempDir()
	s, err := NewBadgerRecordStore(dir, logger.Nop())
	require.NoError(t, err)
	require.NoError(t, s.Set(testContext(), "notebook:c1", json.RawMessage(`{"sections":[]}`)))
	require.NoError(t, s.Close())

	reopened, err := NewBadgerRecordStore(dir, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { reopened.Close() })

	got, err := reopened.Get(testContext(), "notebook:c1")
	require.NoError(t, err)
	assert.JSONEq(t, `{"sections":[]}`, string(got))
}

func TestBadgerRecordStore_Closed(t *testing.T) {
	s, err := NewBadgerRecordStore("", logger.Nop())
	require.NoError(t, err)
	require.NoError(t, s.Close())

	err = s.Set(testContext(), "k", json.RawMessage(`{}`))
	assert.ErrorIs(t, err, ErrStoreClosed)
}

func TestNewLocalRecordStore(t *testing.T) {
	ctx := testContext()
	log := logger.Nop()

	tests := []struct {
		name string
		cfg  config.Storage
	}{
		{name: "sqlite", cfg: config.Storage{Backend: config.BackendSQLite, DB: sqliteConfig(t)}},
		{name: "badger", cfg: config.Storage{Backend: config.BackendBadger}},
		{name: "file", cfg: config.Storage{Backend: config.BackendFile, Dir: t.TempDir()}},
		{name: "memory", cfg: config.Storage{Backend: config.BackendMemory}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewLocalRecordStore(ctx, tt.cfg, log)
			require.NoError(t, err)
			t.Cleanup(func() { s.Close() })
			exerciseRecordStore(t, s)
		})
	}

	_, err := NewLocalRecordStore(ctx, config.Storage{Backend: config.BackendRemote}, log)
	assert.ErrorIs(t, err, ErrUnsupportedBackend)
}
