// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	// ErrPersistenceFailure wraps any error returned by the record store.
	// The in-memory notebook keeps the mutation; call Persist to retry.
	ErrPersistenceFailure = errors.New("persistence failure")

	// ErrNotebookNotLoaded is returned by every notebook operation issued
	// before a successful Load.
	ErrNotebookNotLoaded = errors.New("no notebook is loaded")

	ErrEmptyPassphrase = errors.New("passphrase is empty")
	ErrEmptyTitle      = errors.New("section title is empty")
	ErrTitleTooLong    = errors.New("section title is too long")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
)
