// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SectionView is the presentation snapshot of a section handed to the UI
// layers. Content holds the plaintext of a Plaintext section or the
// decrypted buffer of an Unlocked section and is empty otherwise.
//
// A SectionView is never persisted.
type SectionView struct {
	ID        string       `json:"id"`
	Title     string       `json:"title"`
	State     SectionState `json:"state"`
	Encrypted bool         `json:"encrypted"`
	Content   string       `json:"content,omitempty"`
	Position  int          `json:"position"`
}

// Readable reports whether Content carries the section text.
func (v SectionView) Readable() bool {
	return v.State == StatePlaintext || v.State == StateUnlocked
}

// NotebookView is the presentation snapshot of the active notebook.
type NotebookView struct {
	CampaignID string        `json:"campaign_id"`
	Sections   []SectionView `json:"sections"`
	HasHint    bool          `json:"has_hint"`
}
