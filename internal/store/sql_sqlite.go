// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-campaign-vault/internal/config"
	"github.com/MKhiriev/go-campaign-vault/internal/logger"
	"github.com/MKhiriev/go-campaign-vault/migrations"
)

// sqliteBusyTimeoutMS lets a second vault process wait for the file lock
// instead of failing at once with SQLITE_BUSY.
const sqliteBusyTimeoutMS = 5000

// NewConnectSQLite opens the single-file vault database at cfg.DSN,
// creating the file and its directory with owner-only permissions.
func NewConnectSQLite(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	path, _, _ := strings.Cut(cfg.DSN, "?")
	if err := ensureDBFile(path); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Str("path", path).Msg("cannot prepare database file")
		return nil, err
	}

	return openDB(ctx, dbOptions{
		driver:     "sqlite3",
		dsn:        sqliteDSN(cfg.DSN),
		dialect:    migrations.DialectSQLite,
		classifier: NewSQLiteErrorClassifier(),
		// sqlite has one writer; a single connection keeps it that way
		maxOpen: 1,
	}, log)
}

func sqliteDSN(dsn string) string {
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return fmt.Sprintf("%s%s_busy_timeout=%d", dsn, sep, sqliteBusyTimeoutMS)
}

func ensureDBFile(path string) error {
	_, err := os.Stat(path)
	if err == nil {
		return nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("stat database file: %w", err)
	}

	if err = os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("create database directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return fmt.Errorf("create database file: %w", err)
	}
	return f.Close()
}
