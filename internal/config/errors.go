// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an unknown backend or a postgres backend without DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidCryptoConfigs indicates negative or zero key derivation
	// settings.
	ErrInvalidCryptoConfigs = errors.New("invalid crypto configuration")
	// ErrInvalidLoggingConfigs indicates an unknown log level.
	ErrInvalidLoggingConfigs = errors.New("invalid logging configuration")
)
