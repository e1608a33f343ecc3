// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-campaign-vault/internal/logger"
	"github.com/MKhiriev/go-campaign-vault/migrations"
)

const (
	selectRecordSQL = `SELECT record_value FROM notebook_records WHERE record_key = $1`
	upsertRecordSQL = `INSERT INTO notebook_records (record_key,record_value,updated_at) VALUES ($1,$2,$3) ON CONFLICT`
)

var fixedNow = time.Date(2026, 10, 19, 20, 0, 0, 0, time.UTC)

func newTestDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

// newDBFromSQL wraps an existing *sql.DB as a postgres DB for tests.
func newDBFromSQL(db *sql.DB) *DB {
	return &DB{
		DB:                 db,
		dialect:            migrations.DialectPostgres,
		errorClassificator: NewPostgresErrorClassifier(),
		logger:             logger.Nop(),
	}
}

func newTestRepo(t *testing.T, db *sql.DB) *sqlRecordStore {
	t.Helper()
	s := NewSQLRecordStore(newDBFromSQL(db), logger.Nop()).(*sqlRecordStore)
	s.now = func() time.Time { return fixedNow }
	return s
}

func testContext() context.Context {
	l := zerolog.Nop()
	return l.WithContext(context.Background())
}

func TestSQLRecordStore_Get(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestRepo(t, db)

	mock.ExpectQuery(regexp.QuoteMeta(selectRecordSQL)).
		WithArgs("notebook:c1").
		WillReturnRows(sqlmock.NewRows([]string{"record_value"}).AddRow(`{"sections":[]}`))

	got, err := repo.Get(testContext(), "notebook:c1")
	require.NoError(t, err)
	assert.JSONEq(t, `{"sections":[]}`, string(got))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLRecordStore_Get_NotFound(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestRepo(t, db)

	mock.ExpectQuery(regexp.QuoteMeta(selectRecordSQL)).
		WithArgs("notebook:none").
		WillReturnRows(sqlmock.NewRows([]string{"record_value"}))

	_, err := repo.Get(testContext(), "notebook:none")
	assert.ErrorIs(t, err, ErrRecordNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLRecordStore_Get_QueryError(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestRepo(t, db)

	mock.ExpectQuery(regexp.QuoteMeta(selectRecordSQL)).
		WillReturnError(errors.New("boom"))

	_, err := repo.Get(testContext(), "notebook:c1")
	assert.ErrorIs(t, err, ErrScanningRow)
	assert.False(t, IsRetryable(err))
}

func TestSQLRecordStore_Get_EmptyKey(t *testing.T) {
	db, _ := newTestDB(t)
	repo := newTestRepo(t, db)

	_, err := repo.Get(testContext(), "")
	assert.ErrorIs(t, err, ErrEmptyKey)
}

func TestSQLRecordStore_Set(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestRepo(t, db)

	value := json.RawMessage(`{"sections":[{"id":"a"}]}`)
	mock.ExpectExec(regexp.QuoteMeta(upsertRecordSQL)).
		WithArgs("notebook:c1", string(value), fixedNow).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Set(testContext(), "notebook:c1", value))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLRecordStore_Set_RetryableError(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestRepo(t, db)

	mock.ExpectExec(regexp.QuoteMeta(upsertRecordSQL)).
		WillReturnError(&pgconn.PgError{Code: pgerrcode.SerializationFailure})

	err := repo.Set(testContext(), "notebook:c1", json.RawMessage(`{}`))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.ErrorIs(t, err, ErrTransient)
	assert.True(t, IsRetryable(err))
}

func TestSQLRecordStore_Set_PermanentError(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestRepo(t, db)

	mock.ExpectExec(regexp.QuoteMeta(upsertRecordSQL)).
		WillReturnError(&pgconn.PgError{Code: pgerrcode.UndefinedTable})

	err := repo.Set(testContext(), "notebook:c1", json.RawMessage(`{}`))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrTransient)
	assert.False(t, IsRetryable(err))
}

func TestSQLRecordStore_Close(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestRepo(t, db)

	mock.ExpectClose()
	require.NoError(t, repo.Close())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLRecordStore_SQLiteRoundTrip(t *testing.T) {
	ctx := testContext()
	db, err := NewConnectSQLite(ctx, sqliteConfig(t), logger.Nop())
	require.NoError(t, err)
	require.NoError(t, db.Migrate(context.Background()))

	s := NewSQLRecordStore(db, logger.Nop())
	t.Cleanup(func() { s.Close() })

	_, err = s.Get(ctx, "notebook:c1")
	require.ErrorIs(t, err, ErrRecordNotFound)

	require.NoError(t, s.Set(ctx, "notebook:c1", json.RawMessage(`{"sections":[]}`)))
	require.NoError(t, s.Set(ctx, "notebook:c1", json.RawMessage(`{"sections":[],"hint":"h"}`)))

	got, err := s.Get(ctx, "notebook:c1")
	require.NoError(t, err)
	assert.JSONEq(t, `{"sections":[],"hint":"h"}`, string(got))
}

func TestSQLiteDSN(t *testing.T) {
	assert.Equal(t, "vault.db?_busy_timeout=5000", sqliteDSN("vault.db"))
	assert.Equal(t, "vault.db?mode=rwc&_busy_timeout=5000", sqliteDSN("vault.db?mode=rwc"))
}

func TestEnsureDBFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a", "b", "vault.db")

	require.NoError(t, ensureDBFile(path))
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	require.NoError(t, ensureDBFile(path))
}
