// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package vault

import (
	"bytes"
	"context"
	"fmt"

	"github.com/MKhiriev/go-campaign-vault/internal/crypto"
	"github.com/MKhiriev/go-campaign-vault/models"
)

// Deriver runs key derivation for one logical encrypt or unlock operation.
// [workers.DerivationPool] implements it to keep PBKDF2 off the caller's
// goroutine.
type Deriver interface {
	Derive(ctx context.Context, passphrase, salt []byte) ([]byte, error)
}

// inlineDeriver runs a [crypto.KeyDerivation] on the calling goroutine.
type inlineDeriver struct {
	kdf crypto.KeyDerivation
}

// InlineDeriver adapts kdf to [Deriver] without a worker pool. The
// binaries always derive on a [workers.DerivationPool]; this is for tests
// and single-shot tools that do not start one.
func InlineDeriver(kdf crypto.KeyDerivation) Deriver {
	return inlineDeriver{kdf: kdf}
}

func (d inlineDeriver) Derive(_ context.Context, passphrase, salt []byte) ([]byte, error) {
	return d.kdf.Derive(passphrase, salt)
}

// Machine drives sections through their lifecycle:
//
//	Plaintext --Encrypt--> Locked
//	Locked    --Unlock---> Unlocked | Locked (authentication failure)
//	Unlocked  --Edit-----> Unlocked (memory only)
//	Unlocked  --Encrypt--> Locked   (fresh salt and iv)
//	Unlocked  --Lock-----> Locked   (buffer dropped)
//	Plaintext --Edit-----> Plaintext
//
// Crypto runs while the section sits in a transient state with its lock
// released, so other sections stay usable. A second encrypt or unlock on
// the same section during that window gets [ErrSectionBusy].
type Machine struct {
	deriver Deriver
	cipher  crypto.CipherEngine
	nonces  crypto.NonceSource
}

// NewMachine wires the state machine to its crypto collaborators.
func NewMachine(deriver Deriver, cipher crypto.CipherEngine, nonces crypto.NonceSource) *Machine {
	return &Machine{deriver: deriver, cipher: cipher, nonces: nonces}
}

// Encrypt seals the section's current text (content when Plaintext, the
// decrypted buffer when Unlocked) under passphrase and leaves it Locked.
// Previous ciphertext, salt and iv are discarded. On failure the section
// keeps its previous state and data.
func (m *Machine) Encrypt(ctx context.Context, s *Section, passphrase []byte) error {
	s.mu.Lock()
	var plaintext []byte
	switch s.state {
	case models.StatePlaintext:
		plaintext = []byte(s.content)
	case models.StateUnlocked:
		plaintext = bytes.Clone(s.decrypted)
	case models.StateLocked:
		s.mu.Unlock()
		return fmt.Errorf("encrypt locked section %s: %w", s.id, ErrInvalidSectionState)
	default:
		s.mu.Unlock()
		return ErrSectionBusy
	}
	prev := s.state
	s.state = models.StateEncrypting
	s.mu.Unlock()

	sealed, err := m.seal(ctx, plaintext, passphrase)
	clear(plaintext)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.state = prev
		return err
	}

	s.sealed = sealed
	s.content = ""
	s.dropDecryptedLocked()
	s.state = models.StateLocked
	return nil
}

// Unlock opens a Locked section. On success the plaintext is held in
// memory and the section is Unlocked; the persisted ciphertext is not
// touched. A wrong passphrase or corrupted payload leaves it Locked and
// returns [crypto.ErrAuthenticationFailure].
func (m *Machine) Unlock(ctx context.Context, s *Section, passphrase []byte) error {
	s.mu.Lock()
	switch s.state {
	case models.StateLocked:
	case models.StateEncrypting, models.StateUnlocking:
		s.mu.Unlock()
		return ErrSectionBusy
	default:
		state := s.state
		s.mu.Unlock()
		return fmt.Errorf("unlock %s section %s: %w", state, s.id, ErrInvalidSectionState)
	}
	sealed := *s.sealed
	s.state = models.StateUnlocking
	s.mu.Unlock()

	plaintext, err := m.open(ctx, sealed, passphrase)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.state = models.StateLocked
		return err
	}

	s.decrypted = plaintext
	s.state = models.StateUnlocked
	return nil
}

// Edit replaces the section text. For a Plaintext section the content
// changes and persist is true. For an Unlocked section only the in-memory
// buffer changes and persist is false. Locked sections cannot be edited.
func (m *Machine) Edit(s *Section, content string) (persist bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.state {
	case models.StatePlaintext:
		s.content = content
		return true, nil
	case models.StateUnlocked:
		s.dropDecryptedLocked()
		s.decrypted = []byte(content)
		return false, nil
	case models.StateLocked:
		return false, fmt.Errorf("edit locked section %s: %w", s.id, ErrInvalidSectionState)
	default:
		return false, ErrSectionBusy
	}
}

// Lock drops the decrypted buffer of an Unlocked section without
// persisting it. Locking a Locked section is a no-op.
func (m *Machine) Lock(s *Section) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.state {
	case models.StateUnlocked:
		s.dropDecryptedLocked()
		s.state = models.StateLocked
		return nil
	case models.StateLocked:
		return nil
	case models.StatePlaintext:
		return fmt.Errorf("lock plaintext section %s: %w", s.id, ErrInvalidSectionState)
	default:
		return ErrSectionBusy
	}
}

func (m *Machine) seal(ctx context.Context, plaintext, passphrase []byte) (*sealedPayload, error) {
	salt, err := m.nonces.Salt()
	if err != nil {
		return nil, fmt.Errorf("generate salt: %w", err)
	}
	iv, err := m.nonces.IV()
	if err != nil {
		return nil, fmt.Errorf("generate iv: %w", err)
	}

	key, err := m.deriver.Derive(ctx, passphrase, salt)
	if err != nil {
		return nil, fmt.Errorf("derive key: %w", err)
	}
	defer clear(key)

	ciphertext, err := m.cipher.Encrypt(plaintext, key, iv)
	if err != nil {
		return nil, fmt.Errorf("encrypt content: %w", err)
	}

	return &sealedPayload{ciphertext: ciphertext, iv: iv, salt: salt}, nil
}

func (m *Machine) open(ctx context.Context, sealed sealedPayload, passphrase []byte) ([]byte, error) {
	key, err := m.deriver.Derive(ctx, passphrase, sealed.salt)
	if err != nil {
		return nil, fmt.Errorf("derive key: %w", err)
	}
	defer clear(key)

	plaintext, err := m.cipher.Decrypt(sealed.ciphertext, key, sealed.iv)
	if err != nil {
		return nil, err
	}
	return plaintext, nil
}
