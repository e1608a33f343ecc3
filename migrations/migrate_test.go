// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package migrations

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate_RejectsNilHandle(t *testing.T) {
	applied, err := Migrate(context.Background(), nil, DialectSQLite)
	assert.ErrorIs(t, err, ErrNoDatabase)
	assert.Nil(t, applied)
}

func TestMigrate_UnknownDialect(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = Migrate(context.Background(), db, Dialect("clay-tablets"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "prepare clay-tablets schema")
}

func TestMigrate_VersionTableFailure(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	mock.MatchExpectationsInOrder(false)

	// no expectations registered: the first statement goose issues fails
	_, err = Migrate(context.Background(), db, DialectPostgres)
	require.Error(t, err)
}

func TestMigrate_SQLite(t *testing.T) {
	db, err := sql.Open("sqlite3", filepath.Join(t.TempDir(), "campaign.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	ctx := context.Background()

	applied, err := Migrate(ctx, db, DialectSQLite)
	require.NoError(t, err)
	assert.Equal(t, []int64{1}, applied)

	applied, err = Migrate(ctx, db, DialectSQLite)
	require.NoError(t, err)
	assert.Empty(t, applied, "second run has nothing to apply")

	var rows int
	require.NoError(t, db.QueryRowContext(ctx, `SELECT count(*) FROM notebook_records`).Scan(&rows))
	assert.Zero(t, rows)
}
