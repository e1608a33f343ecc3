// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
)

// ErrorClassification tells the vault whether a failed notebook write is
// worth repeating.
type ErrorClassification int

const (
	NonRetryable ErrorClassification = iota
	Retryable
)

// IsRetryable reports whether err came from a backend that may recover on
// its own: a remote record service marked [ErrTransient], a PostgreSQL
// connection or rollback failure, or a busy sqlite file.
func IsRetryable(err error) bool {
	switch {
	case err == nil:
		return false
	case errors.Is(err, ErrTransient):
		return true
	}
	return NewPostgresErrorClassifier().Classify(err) == Retryable ||
		NewSQLiteErrorClassifier().Classify(err) == Retryable
}

// PostgresErrorClassifier classifies errors from the pgx driver by SQLSTATE.
type PostgresErrorClassifier struct{}

func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return NonRetryable
	}
	return ClassifyPgError(pgErr)
}

// ClassifyPgError retries connection exceptions (class 08), transaction
// rollbacks such as serialization failures and deadlocks (class 40), and a
// server that is starting up or shutting down. Every other code, including
// constraint and syntax errors, is final.
func ClassifyPgError(pgErr *pgconn.PgError) ErrorClassification {
	code := pgErr.Code
	switch {
	case pgerrcode.IsConnectionException(code),
		pgerrcode.IsTransactionRollback(code):
		return Retryable
	case code == pgerrcode.CannotConnectNow,
		code == pgerrcode.AdminShutdown,
		code == pgerrcode.CrashShutdown:
		return Retryable
	default:
		return NonRetryable
	}
}

// SQLiteErrorClassifier retries SQLITE_BUSY and SQLITE_LOCKED, which show up
// when another process holds the vault database file.
type SQLiteErrorClassifier struct{}

func NewSQLiteErrorClassifier() *SQLiteErrorClassifier {
	return &SQLiteErrorClassifier{}
}

func (c *SQLiteErrorClassifier) Classify(err error) ErrorClassification {
	var liteErr sqlite3.Error
	if !errors.As(err, &liteErr) {
		return NonRetryable
	}
	if liteErr.Code == sqlite3.ErrBusy || liteErr.Code == sqlite3.ErrLocked {
		return Retryable
	}
	return NonRetryable
}
