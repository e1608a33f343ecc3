// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package vault

import (
	"bytes"
	"sync"

	"github.com/MKhiriev/go-campaign-vault/models"
)

// sealedPayload is the persisted ciphertext form of a section.
type sealedPayload struct {
	ciphertext []byte
	iv         []byte
	salt       []byte
}

// Section is the in-memory entity behind one notebook tab.
//
// Every field is guarded by mu. The decrypted buffer exists only while the
// section is Unlocked and is never part of [Section.Persisted].
type Section struct {
	mu sync.Mutex

	id    string
	title string
	state models.SectionState

	content   string
	sealed    *sealedPayload
	decrypted []byte
}

// NewSection creates a Plaintext section with empty content.
func NewSection(id, title string) *Section {
	return &Section{id: id, title: title, state: models.StatePlaintext}
}

// SectionFromModel restores a section from its persisted form. Encrypted
// sections come back Locked, others Plaintext. The model is expected to be
// validated beforehand.
func SectionFromModel(m models.Section) *Section {
	s := &Section{id: m.ID, title: m.Title}
	if m.Encrypted {
		s.state = models.StateLocked
		s.sealed = &sealedPayload{
			ciphertext: bytes.Clone(m.Ciphertext),
			iv:         bytes.Clone(m.IV),
			salt:       bytes.Clone(m.Salt),
		}
		return s
	}

	s.state = models.StatePlaintext
	if m.Content != nil {
		s.content = *m.Content
	}
	return s
}

// ID returns the stable section identifier.
func (s *Section) ID() string {
	return s.id
}

// Title returns the current display title.
func (s *Section) Title() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.title
}

// SetTitle renames the section. Titles are persisted in clear in every state.
func (s *Section) SetTitle(title string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.title = title
}

// State returns the current lifecycle state.
func (s *Section) State() models.SectionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Persisted returns the persisted-safe representation. A section whose
// encrypt is in flight still reports its previous persisted form.
func (s *Section) Persisted() models.Section {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := models.Section{ID: s.id, Title: s.title}
	if s.sealed == nil {
		content := s.content
		out.Content = &content
		return out
	}

	out.Encrypted = true
	out.Ciphertext = bytes.Clone(s.sealed.ciphertext)
	out.IV = bytes.Clone(s.sealed.iv)
	out.Salt = bytes.Clone(s.sealed.salt)
	return out
}

// View returns the presentation snapshot at the given tab position.
func (s *Section) View(position int) models.SectionView {
	s.mu.Lock()
	defer s.mu.Unlock()

	v := models.SectionView{
		ID:        s.id,
		Title:     s.title,
		State:     s.state,
		Encrypted: s.sealed != nil,
		Position:  position,
	}
	switch s.state {
	case models.StatePlaintext:
		v.Content = s.content
	case models.StateUnlocked:
		v.Content = string(s.decrypted)
	}
	return v
}

// discard drops the decrypted buffer of an Unlocked section. Other states
// are left alone.
func (s *Section) discard() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == models.StateUnlocked {
		s.dropDecryptedLocked()
		s.state = models.StateLocked
	}
}

// overwriteLocked replaces everything but the id with the persisted form
// m, dropping any decrypted buffer. Caller holds mu.
func (s *Section) overwriteLocked(m models.Section) {
	s.dropDecryptedLocked()
	fresh := SectionFromModel(m)
	s.title = fresh.title
	s.state = fresh.state
	s.content = fresh.content
	s.sealed = fresh.sealed
}

// dropDecryptedLocked zeroes and releases the decrypted buffer. Caller
// holds mu.
func (s *Section) dropDecryptedLocked() {
	clear(s.decrypted)
	s.decrypted = nil
}
