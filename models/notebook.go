// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Notebook is the persisted, campaign-scoped collection of sections.
//
// It is the exact JSON document written to the persistence adapter and the
// shape produced by export. It never carries decrypted section content.
type Notebook struct {
	// Sections keeps the user-visible tab order.
	Sections []Section `json:"sections"`

	// Hint is the optional notebook-wide passphrase hint. It is stored in
	// clear and returned without any passphrase check.
	Hint *string `json:"hint,omitempty"`
}

// Section is the persisted form of a single notebook section.
//
// Exactly one representation is present: Content when Encrypted is false,
// Ciphertext/IV/Salt when Encrypted is true. Byte slices are encoded by
// encoding/json as standard base64.
type Section struct {
	// ID is an opaque identifier assigned at creation and stable for the
	// lifetime of the section.
	ID string `json:"id"`

	// Title is the display name of the section. Not unique.
	Title string `json:"title"`

	// Encrypted reports which representation is persisted.
	Encrypted bool `json:"encrypted"`

	// Content is the plaintext body, present iff !Encrypted.
	Content *string `json:"content,omitempty"`

	// Ciphertext is the AES-256-GCM output with the authentication tag
	// appended, present iff Encrypted.
	Ciphertext []byte `json:"ciphertext,omitempty"`

	// IV is the 12-byte GCM nonce, present iff Encrypted.
	IV []byte `json:"iv,omitempty"`

	// Salt is the 16-byte key-derivation salt, present iff Encrypted.
	Salt []byte `json:"salt,omitempty"`
}

// ImportReport summarises the outcome of a notebook import merge.
type ImportReport struct {
	// Added lists ids of sections appended from the import.
	Added []string `json:"added"`
	// Replaced lists ids of existing sections overwritten by the import.
	Replaced []string `json:"replaced"`
	// Kept is the number of existing sections the import did not touch.
	Kept int `json:"kept"`
	// HintUpdated reports whether the import carried a hint.
	HintUpdated bool `json:"hint_updated"`
}
