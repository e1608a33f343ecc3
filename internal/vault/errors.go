// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package vault

import "errors"

var (
	// ErrInvalidSectionState is returned when an operation is not defined for
	// the section's current state, e.g. editing or re-encrypting a Locked
	// section, or unlocking a section that is not Locked.
	ErrInvalidSectionState = errors.New("invalid section state")

	// ErrSectionBusy is returned when an encrypt or unlock is already in
	// flight for the section. The second request is rejected, not queued.
	ErrSectionBusy = errors.New("section has an operation in flight")

	// ErrSectionNotFound is returned when no section carries the given id.
	ErrSectionNotFound = errors.New("section not found")

	// ErrNotebookFull is returned when an import would push the notebook
	// past its section limit.
	ErrNotebookFull = errors.New("notebook section limit reached")

	// ErrInvalidPosition is returned when a section is moved outside the
	// notebook bounds.
	ErrInvalidPosition = errors.New("invalid section position")
)
