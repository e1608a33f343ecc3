// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	stdcrypto "crypto"
	"crypto/sha256"

	"golang.org/x/crypto/pbkdf2"
)

// MinIterations is the lowest PBKDF2 iteration count the vault accepts.
const MinIterations = 100_000

// pbkdf2Derivation is the private implementation of [KeyDerivation].
type pbkdf2Derivation struct {
	iterations int
}

// NewPBKDF2Derivation constructs a [KeyDerivation] backed by PBKDF2 with
// HMAC-SHA256 and a 256-bit output. Iteration counts below [MinIterations]
// are raised to the minimum.
//
// The cost is paid on every call; derived keys are never cached.
func NewPBKDF2Derivation(iterations int) KeyDerivation {
	if iterations < MinIterations {
		iterations = MinIterations
	}
	return &pbkdf2Derivation{iterations: iterations}
}

// Iterations returns the effective iteration count.
func (p *pbkdf2Derivation) Iterations() int {
	return p.iterations
}

// Derive implements [KeyDerivation].
func (p *pbkdf2Derivation) Derive(passphrase, salt []byte) ([]byte, error) {
	if !stdcrypto.SHA256.Available() {
		return nil, ErrCryptoUnavailable
	}
	if len(salt) != SaltSize {
		return nil, ErrInvalidSalt
	}

	return pbkdf2.Key(passphrase, salt, p.iterations, KeySize, sha256.New), nil
}
