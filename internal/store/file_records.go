// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/MKhiriev/go-campaign-vault/internal/logger"
)

// fileRecordStore keeps one JSON document per key in a directory. Writes go
// to a temporary file in the same directory which is then renamed over the
// target, so a reader never sees a half-written notebook.
type fileRecordStore struct {
	dir    string
	mu     sync.Mutex
	logger *logger.Logger
}

// NewFileRecordStore returns a [RecordStore] rooted at dir, creating the
// directory when needed.
func NewFileRecordStore(dir string, logger *logger.Logger) (RecordStore, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("create record directory %s: %w", dir, err)
	}
	logger.Debug().Str("dir", dir).Msg("file record store opened")

	return &fileRecordStore{dir: dir, logger: logger}, nil
}

// path maps key to a file name that is safe on every platform.
func (f *fileRecordStore) path(key string) string {
	return filepath.Join(f.dir, base64.RawURLEncoding.EncodeToString([]byte(key))+".json")
}

func (f *fileRecordStore) Get(ctx context.Context, key string) (json.RawMessage, error) {
	if key == "" {
		return nil, ErrEmptyKey
	}

	data, err := os.ReadFile(f.path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrRecordNotFound, key)
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "fileRecordStore.Get").
			Str("key", key).
			Msg("failed to read record file")
		return nil, fmt.Errorf("read record %s: %w", key, err)
	}

	return json.RawMessage(data), nil
}

func (f *fileRecordStore) Set(ctx context.Context, key string, value json.RawMessage) error {
	if key == "" {
		return ErrEmptyKey
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.writeAtomic(f.path(key), value); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "fileRecordStore.Set").
			Str("key", key).
			Msg("failed to write record file")
		return fmt.Errorf("write record %s: %w", key, err)
	}

	return nil
}

func (f *fileRecordStore) writeAtomic(target string, value []byte) (err error) {
	tmp, err := os.CreateTemp(f.dir, ".record-*.tmp")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(value); err != nil {
		tmp.Close()
		return err
	}
	if err = tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), target)
}

func (f *fileRecordStore) Close() error {
	return nil
}
