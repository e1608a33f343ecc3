// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-campaign-vault/internal/app"
)

// ErrUserQuit is returned by Run when the user leaves with ctrl+c.
var ErrUserQuit = errors.New("user quit")

var (
	errPassphraseMismatch = errors.New("passphrases do not match")
	errEmptyClipboard     = errors.New("the clipboard is empty")
)

const msgRecordServiceUnavailable = "network is unavailable or the record service is down"

// errorText turns err into the text of the error overlay.
func errorText(err error) string {
	msg := app.UserMessage(err)
	if isNetworkError(err) {
		msg += " (" + msgRecordServiceUnavailable + ")"
	}
	return msg
}

func isNetworkError(err error) bool {
	if err == nil {
		return false
	}

	s := strings.ToLower(err.Error())
	return strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout")
}
