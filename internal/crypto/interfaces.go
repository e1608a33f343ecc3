// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto holds the primitives the notebook vault is built on:
// passphrase key derivation, authenticated encryption and a source of fresh
// salts and nonces. It knows nothing about sections, storage or users.
//
// Scheme for one encryption operation:
//
//	Salt, IV   = NonceSource.Salt() + NonceSource.IV()   (fresh every time)
//	Key        = KeyDerivation.Derive(passphrase, Salt)  (PBKDF2-HMAC-SHA256)
//	Ciphertext = CipherEngine.Encrypt(plaintext, Key, IV) (AES-256-GCM, tag appended)
package crypto

const (
	// SaltSize is the length of a key-derivation salt in bytes.
	SaltSize = 16
	// IVSize is the length of a GCM nonce in bytes.
	IVSize = 12
	// KeySize is the length of a derived AES-256 key in bytes.
	KeySize = 32
)

// KeyDerivation turns a passphrase and salt into a symmetric key.
type KeyDerivation interface {
	// Derive returns a KeySize-byte key. Same passphrase and salt always
	// yield the same key. Returns [ErrInvalidSalt] for a salt that is not
	// SaltSize bytes and [ErrCryptoUnavailable] if the host cannot run the
	// derivation.
	Derive(passphrase, salt []byte) ([]byte, error)
}

// CipherEngine performs authenticated encryption of a byte payload.
type CipherEngine interface {
	// Encrypt seals plaintext under key and iv. The authentication tag is
	// bound into the returned ciphertext.
	Encrypt(plaintext, key, iv []byte) ([]byte, error)

	// Decrypt opens ciphertext under key and iv. Any mismatch yields
	// [ErrAuthenticationFailure] and nothing more specific.
	Decrypt(ciphertext, key, iv []byte) ([]byte, error)
}

// NonceSource hands out fresh random salts and IVs.
type NonceSource interface {
	// Salt returns SaltSize random bytes.
	Salt() ([]byte, error)
	// IV returns IVSize random bytes.
	IV() ([]byte, error)
}
