// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

// SectionState is the lifecycle state of a section held in memory.
type SectionState int

const (
	// StatePlaintext: content in clear, editable, persisted in clear.
	StatePlaintext SectionState = iota
	// StateLocked: ciphertext persisted, no plaintext held anywhere.
	StateLocked
	// StateUnlocked: ciphertext persisted, plaintext held in memory only.
	StateUnlocked
	// StateEncrypting is transient while a seal is in flight.
	StateEncrypting
	// StateUnlocking is transient while an open is in flight.
	StateUnlocking
)

var sectionStateNames = map[SectionState]string{
	StatePlaintext:  "plaintext",
	StateLocked:     "locked",
	StateUnlocked:   "unlocked",
	StateEncrypting: "encrypting",
	StateUnlocking:  "unlocking",
}

// String returns the lowercase state name used in logs and API payloads.
func (s SectionState) String() string {
	if name, ok := sectionStateNames[s]; ok {
		return name
	}
	return "unknown"
}

// MarshalText implements [encoding.TextMarshaler].
func (s SectionState) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler]. Unknown names are
// rejected.
func (s *SectionState) UnmarshalText(text []byte) error {
	for state, name := range sectionStateNames {
		if name == string(text) {
			*s = state
			return nil
		}
	}
	return fmt.Errorf("unknown section state %q", text)
}

// Transient reports whether a crypto operation is in flight.
func (s SectionState) Transient() bool {
	return s == StateEncrypting || s == StateUnlocking
}
