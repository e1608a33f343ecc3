// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger wraps zerolog for the vault binaries. Loggers travel by
// pointer and request-scoped ones are recovered with [FromContext] or
// [FromRequest].
//
// Vault code must never log passphrases, derived keys or decrypted section
// content. Identifiers (campaign and section ids) are fine.
package logger

import (
	"context"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// ClientLogFile is the file the terminal client writes its log to.
const ClientLogFile = "campaign-vault.log"

type Logger struct {
	zerolog.Logger
}

// NewLogger returns a JSON logger on stdout tagged with role. It resets
// the global level to debug; [SetLevel] narrows it once config is read.
func NewLogger(role string) *Logger {
	return newLogger(os.Stdout, role)
}

// NewClientLogger is [NewLogger] for the TUI. Writing to the terminal
// would tear the screen, so entries go to [ClientLogPath] and only fall
// back to stdout when that file cannot be opened.
func NewClientLogger(role string) *Logger {
	var out io.Writer = os.Stdout
	if f, err := os.OpenFile(ClientLogPath(), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600); err == nil {
		out = f
	}
	return newLogger(out, role)
}

// ClientLogPath is ClientLogFile in the user cache directory, or next to
// the executable when there is no cache directory.
func ClientLogPath() string {
	if dir, err := os.UserCacheDir(); err == nil {
		dir = filepath.Join(dir, "campaign-vault")
		if err = os.MkdirAll(dir, 0o700); err == nil {
			return filepath.Join(dir, ClientLogFile)
		}
	}
	execPath, _ := os.Executable()
	return filepath.Join(filepath.Dir(execPath), ClientLogFile)
}

func newLogger(w io.Writer, role string) *Logger {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	zerolog.CallerFieldName = "func"
	zerolog.CallerMarshalFunc = func(pc uintptr, _ string, _ int) string {
		return runtime.FuncForPC(pc).Name()
	}

	return &Logger{zerolog.New(w).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()}
}

// SetLevel applies a level name such as "info" globally. Unknown names
// keep the current level.
func SetLevel(level string) error {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return err
	}
	zerolog.SetGlobalLevel(lvl)
	return nil
}

// Nop discards everything. Used by tests.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger copies l so fields can be added without touching l.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// WithCampaign returns a child logger tagged with campaign_id.
func (l *Logger) WithCampaign(campaignID string) *Logger {
	return &Logger{l.With().Str("campaign_id", campaignID).Logger()}
}

// FromRequest is [FromContext] for r's context.
func FromRequest(r *http.Request) *Logger {
	return FromContext(r.Context())
}

// FromContext returns the logger attached by zerolog's WithContext, or
// zerolog's default logger when there is none.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
