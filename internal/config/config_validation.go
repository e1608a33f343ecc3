// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/rs/zerolog"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if err := cfg.Storage.validate(); err != nil {
		return err
	}

	if cfg.Crypto.KDFIterations < 0 || cfg.Crypto.DerivationWorkers < 0 {
		return ErrInvalidCryptoConfigs
	}

	if _, err := zerolog.ParseLevel(cfg.Logging.Level); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidLoggingConfigs, err)
	}

	return nil
}

func (s Storage) validate() error {
	switch s.Backend {
	case BackendSQLite, BackendPostgres:
		if s.DB.DSN == "" {
			return fmt.Errorf("%w: %s backend needs a DSN", ErrInvalidStorageConfigs, s.Backend)
		}
	case BackendFile:
		if s.Dir == "" {
			return fmt.Errorf("%w: file backend needs a directory", ErrInvalidStorageConfigs)
		}
	case BackendRemote:
		if s.Remote.URL == "" {
			return fmt.Errorf("%w: remote backend needs a URL", ErrInvalidStorageConfigs)
		}
	case BackendBadger, BackendMemory:
	default:
		return fmt.Errorf("%w: unknown backend %q", ErrInvalidStorageConfigs, s.Backend)
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if err := cfg.Storage.validate(); err != nil {
		return err
	}

	if cfg.Crypto.KDFIterations <= 0 || cfg.Crypto.DerivationWorkers <= 0 {
		return ErrInvalidCryptoConfigs
	}

	return nil
}
