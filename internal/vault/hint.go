// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package vault

import "sync"

// HintRegistry holds the optional notebook-wide passphrase hint.
//
// The hint is advisory text stored in clear. Reading it never involves a
// passphrase, key derivation or decryption.
type HintRegistry struct {
	mu   sync.RWMutex
	hint *string
}

// NewHintRegistry returns a registry holding hint, which may be nil.
func NewHintRegistry(hint *string) *HintRegistry {
	r := &HintRegistry{}
	r.Replace(hint)
	return r
}

// Hint returns the hint and whether one is set.
func (r *HintRegistry) Hint() (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.hint == nil {
		return "", false
	}
	return *r.hint, true
}

// Record stores hint after a successful encryption. A nil hint leaves the
// current value in place.
func (r *HintRegistry) Record(hint *string) {
	if hint == nil {
		return
	}
	r.Replace(hint)
}

// Replace overwrites the hint, including clearing it with nil.
func (r *HintRegistry) Replace(hint *string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if hint == nil {
		r.hint = nil
		return
	}
	h := *hint
	r.hint = &h
}

func (r *HintRegistry) snapshot() *string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.hint == nil {
		return nil
	}
	h := *r.hint
	return &h
}
