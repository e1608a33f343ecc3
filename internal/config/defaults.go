// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

// Defaults applied to fields left empty by every source.
const (
	DefaultBackend           = BackendSQLite
	DefaultSQLiteDSN         = "campaign-vault.db"
	DefaultKDFIterations     = 100_000
	DefaultDerivationWorkers = 2
	DefaultHTTPAddress       = "127.0.0.1:8080"
	DefaultGRPCAddress       = "127.0.0.1:9090"
	DefaultRequestTimeout    = 30 * time.Second
	DefaultRemoteTimeout     = 10 * time.Second
	DefaultTokenIssuer       = "campaign-vault"
	DefaultTokenDuration     = 24 * time.Hour
	DefaultLogLevel          = "info"
)

func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Storage.Backend == "" {
		cfg.Storage.Backend = DefaultBackend
	}
	if cfg.Storage.Backend == BackendSQLite && cfg.Storage.DB.DSN == "" {
		cfg.Storage.DB.DSN = DefaultSQLiteDSN
	}
	if cfg.Storage.Remote.RequestTimeout == 0 {
		cfg.Storage.Remote.RequestTimeout = DefaultRemoteTimeout
	}

	if cfg.Crypto.KDFIterations == 0 {
		cfg.Crypto.KDFIterations = DefaultKDFIterations
	}
	if cfg.Crypto.DerivationWorkers == 0 {
		cfg.Crypto.DerivationWorkers = DefaultDerivationWorkers
	}

	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = DefaultHTTPAddress
	}
	if cfg.Server.GRPCAddress == "" {
		cfg.Server.GRPCAddress = DefaultGRPCAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = DefaultRequestTimeout
	}

	if cfg.App.TokenIssuer == "" {
		cfg.App.TokenIssuer = DefaultTokenIssuer
	}
	if cfg.App.TokenDuration == 0 {
		cfg.App.TokenDuration = DefaultTokenDuration
	}

	if cfg.Logging.Level == "" {
		cfg.Logging.Level = DefaultLogLevel
	}
}
