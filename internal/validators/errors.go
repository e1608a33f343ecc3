// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	// ErrInvalidNotebook is wrapped by every notebook validation failure so
	// callers can match the whole family at once.
	ErrInvalidNotebook = errors.New("invalid notebook")

	ErrEmptySectionID       = errors.New("section id is required")
	ErrDuplicateSectionID   = errors.New("duplicate section id")
	ErrMissingContent       = errors.New("plaintext section has no content")
	ErrUnexpectedContent    = errors.New("encrypted section carries plaintext content")
	ErrMissingCiphertext    = errors.New("encrypted section has no ciphertext")
	ErrUnexpectedCiphertext = errors.New("plaintext section carries ciphertext material")
	ErrInvalidSaltLength    = errors.New("invalid salt length")
	ErrInvalidIVLength      = errors.New("invalid iv length")
	ErrCiphertextTooShort   = errors.New("ciphertext shorter than authentication tag")
	ErrInvalidCampaignID    = errors.New("invalid campaign id")
	ErrContentTooLarge      = errors.New("section content too large")
	ErrTooManySections      = errors.New("too many sections")
)
