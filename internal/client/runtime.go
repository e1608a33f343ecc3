// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-campaign-vault/internal/config"
	"github.com/MKhiriev/go-campaign-vault/internal/crypto"
	"github.com/MKhiriev/go-campaign-vault/internal/logger"
	"github.com/MKhiriev/go-campaign-vault/internal/service"
	"github.com/MKhiriev/go-campaign-vault/internal/store"
	"github.com/MKhiriev/go-campaign-vault/internal/vault"
	"github.com/MKhiriev/go-campaign-vault/internal/workers"
)

// Runtime owns everything behind the service layer.
type Runtime struct {
	Services *service.Services

	records store.RecordStore
	workers *workers.Workers
	logger  *logger.Logger
}

// NewRuntime wires records into the services. Key derivation runs on a
// [workers.DerivationPool] sized by cfg.DerivationWorkers.
func NewRuntime(records store.RecordStore, cfg config.Crypto, app config.App, log *logger.Logger) (*Runtime, error) {
	kdf := crypto.NewPBKDF2Derivation(cfg.KDFIterations)
	pool := workers.NewDerivationPool(kdf, cfg.DerivationWorkers, log)

	machine := vault.NewMachine(pool, crypto.NewAESGCMEngine(), crypto.NewNonceSource())

	services, err := service.NewServices(records, machine, app, log)
	if err != nil {
		return nil, fmt.Errorf("create services: %w", err)
	}

	log.Info().
		Int("kdf_iterations", max(cfg.KDFIterations, crypto.MinIterations)).
		Int("derivation_workers", pool.Size()).
		Msg("vault runtime ready")

	return &Runtime{
		Services: services,
		records:  records,
		workers:  workers.NewWorkers(pool),
		logger:   log,
	}, nil
}

// OpenRuntime opens the configured record store and builds a [Runtime] on it.
func OpenRuntime(ctx context.Context, storage config.Storage, cfg config.Crypto, app config.App, log *logger.Logger) (*Runtime, error) {
	records, err := NewRecordStore(ctx, storage, log)
	if err != nil {
		return nil, fmt.Errorf("open record store: %w", err)
	}

	rt, err := NewRuntime(records, cfg, app, log)
	if err != nil {
		_ = records.Close()
		return nil, err
	}
	return rt, nil
}

// Start launches the background workers.
func (r *Runtime) Start() {
	r.workers.Run()
}

// Close stops the workers and closes the record store.
func (r *Runtime) Close() error {
	r.workers.Stop()
	if err := r.records.Close(); err != nil {
		r.logger.Error().Err(err).Msg("close record store")
		return fmt.Errorf("close record store: %w", err)
	}
	return nil
}
