// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"
)

// aesGCMEngine is the private implementation of [CipherEngine] using
// AES-256-GCM with a 12-byte nonce and a 16-byte tag appended to the
// ciphertext.
type aesGCMEngine struct{}

// NewAESGCMEngine constructs a [CipherEngine] backed by AES-256-GCM.
func NewAESGCMEngine() CipherEngine {
	return &aesGCMEngine{}
}

// Encrypt implements [CipherEngine]. Returns [ErrCryptoUnavailable] if the
// key is not KeySize bytes, the iv is not IVSize bytes or the AES/GCM
// primitives cannot be constructed.
func (e *aesGCMEngine) Encrypt(plaintext, key, iv []byte) ([]byte, error) {
	if len(iv) != IVSize {
		return nil, fmt.Errorf("%w: iv length %d", ErrCryptoUnavailable, len(iv))
	}

	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	return gcm.Seal(nil, iv, plaintext, nil), nil
}

// Decrypt implements [CipherEngine]. A wrong key, a modified ciphertext, a
// modified or malformed iv and a truncated payload all return exactly
// [ErrAuthenticationFailure].
func (e *aesGCMEngine) Decrypt(ciphertext, key, iv []byte) ([]byte, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	if len(iv) != gcm.NonceSize() || len(ciphertext) < gcm.Overhead() {
		return nil, ErrAuthenticationFailure
	}

	plaintext, err := gcm.Open(nil, iv, ciphertext, nil)
	if err != nil {
		return nil, ErrAuthenticationFailure
	}

	return plaintext, nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("%w: key length %d", ErrCryptoUnavailable, len(key))
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("%w: create cipher: %v", ErrCryptoUnavailable, err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("%w: create gcm: %v", ErrCryptoUnavailable, err)
	}

	return gcm, nil
}
