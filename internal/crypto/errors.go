// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

var (
	// ErrCryptoUnavailable is returned when the host cannot provide a required
	// primitive (random source, AES, GCM). It is fatal to the requested
	// operation and must not be retried.
	ErrCryptoUnavailable = errors.New("crypto primitives unavailable")

	// ErrAuthenticationFailure is returned by decryption for a wrong key and
	// for tampered or corrupted input alike. The two causes are never
	// distinguished.
	ErrAuthenticationFailure = errors.New("authentication failure")

	// ErrInvalidSalt is returned when a salt of the wrong length is passed to
	// key derivation.
	ErrInvalidSalt = errors.New("invalid salt length")
)
