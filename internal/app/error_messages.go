// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer messages used by the
// campaign vault front ends.
//
// All Msg* constants are human-readable strings shown to the person at the
// terminal. UserMessage picks the one that matches an error returned by the
// service layer, so the wording stays the same on every screen.
package app

import (
	"errors"

	"github.com/MKhiriev/go-campaign-vault/internal/crypto"
	"github.com/MKhiriev/go-campaign-vault/internal/service"
	"github.com/MKhiriev/go-campaign-vault/internal/validators"
	"github.com/MKhiriev/go-campaign-vault/internal/vault"
)

const (
	// MsgWrongPassphrase is shown when a section cannot be opened with the
	// passphrase given. It never says whether the data was tampered with.
	MsgWrongPassphrase = "wrong passphrase"

	// MsgCryptoUnavailable is shown when the host cannot run the cipher or
	// the key derivation at all.
	MsgCryptoUnavailable = "encryption is not available on this system"

	// MsgSectionBusy is shown when a section is still being encrypted or
	// unlocked.
	MsgSectionBusy = "section is busy, try again in a moment"

	// MsgInvalidSectionState is shown when the action does not apply to the
	// section in its current state (e.g. unlocking a plaintext section).
	MsgInvalidSectionState = "this action is not available for the section right now"

	// MsgSectionNotFound is shown when the section was removed meanwhile.
	MsgSectionNotFound = "section not found"

	// MsgNotebookNotLoaded is shown when no campaign is open.
	MsgNotebookNotLoaded = "open a campaign first"

	// MsgPersistenceFailure is shown when the notebook could not be saved
	// or read. The in-memory state is kept and the next change retries.
	MsgPersistenceFailure = "could not save the notebook, changes are kept in memory"

	// MsgInvalidNotebook is shown when a stored or imported notebook is
	// malformed.
	MsgInvalidNotebook = "the notebook document is malformed"

	// MsgInvalidCampaignID is shown for a campaign name the vault cannot
	// key records by.
	MsgInvalidCampaignID = "invalid campaign name"

	// MsgTooManySections is shown when the notebook is full.
	MsgTooManySections = "the notebook has too many sections"

	// MsgContentTooLarge is shown when section text exceeds the size limit.
	MsgContentTooLarge = "section text is too large"

	// MsgEmptyPassphrase is shown when the passphrase field is blank.
	MsgEmptyPassphrase = "passphrase is required"

	// MsgEmptyTitle is shown when a section title is blank.
	MsgEmptyTitle = "title is required"

	// MsgTitleTooLong is shown when a section title exceeds the limit.
	MsgTitleTooLong = "title is too long"
)

var userMessages = []struct {
	target error
	msg    string
}{
	{crypto.ErrAuthenticationFailure, MsgWrongPassphrase},
	{crypto.ErrCryptoUnavailable, MsgCryptoUnavailable},
	{vault.ErrSectionBusy, MsgSectionBusy},
	{vault.ErrInvalidSectionState, MsgInvalidSectionState},
	{vault.ErrSectionNotFound, MsgSectionNotFound},
	{service.ErrNotebookNotLoaded, MsgNotebookNotLoaded},
	{service.ErrPersistenceFailure, MsgPersistenceFailure},
	{validators.ErrTooManySections, MsgTooManySections},
	{validators.ErrContentTooLarge, MsgContentTooLarge},
	{validators.ErrInvalidCampaignID, MsgInvalidCampaignID},
	{validators.ErrInvalidNotebook, MsgInvalidNotebook},
	{service.ErrEmptyPassphrase, MsgEmptyPassphrase},
	{service.ErrEmptyTitle, MsgEmptyTitle},
	{service.ErrTitleTooLong, MsgTitleTooLong},
}

// UserMessage returns the message for the first known error in err's chain
// and falls back to err.Error().
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	for _, m := range userMessages {
		if errors.Is(err, m.target) {
			return m.msg
		}
	}
	return err.Error()
}
