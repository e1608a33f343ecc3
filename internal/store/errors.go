// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by record stores to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrRecordNotFound is returned by Get when nothing is stored under the
	// requested key.
	ErrRecordNotFound = errors.New("record was not found")

	// ErrEmptyKey is returned when a record key is empty.
	ErrEmptyKey = errors.New("record key is empty")

	// ErrStoreClosed is returned by operations on a closed store.
	ErrStoreClosed = errors.New("record store is closed")

	// ErrTransient marks a failure that may succeed when the same call is
	// repeated (a dropped connection, a 5xx from a remote store). Adapters
	// wrap their transient errors with it so [IsRetryable] can see them.
	ErrTransient = errors.New("transient storage failure")

	// ErrUnsupportedBackend is returned by [NewLocalRecordStore] for a
	// backend it does not build.
	ErrUnsupportedBackend = errors.New("unsupported storage backend")
)

// Low-level database operation errors. These are returned (or wrapped) by
// the SQL record store when a SQL-level operation fails.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing the upsert fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning the record value fails.
	ErrScanningRow = errors.New("failed to scan record row")
)
