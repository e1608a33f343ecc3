// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"sync"

	"github.com/MKhiriev/go-campaign-vault/internal/crypto"
	"github.com/MKhiriev/go-campaign-vault/internal/logger"
)

// ErrPoolStopped is returned by [DerivationPool.Derive] after Stop.
var ErrPoolStopped = errors.New("derivation pool is stopped")

// DefaultDerivationWorkers is used when a non-positive size is configured.
const DefaultDerivationWorkers = 2

type derivationResult struct {
	key []byte
	err error
}

type derivationJob struct {
	passphrase []byte
	salt       []byte
	result     chan derivationResult
}

// DerivationPool runs key derivation on dedicated goroutines so that the
// CPU-bound PBKDF2 never blocks the caller's interactive goroutine.
//
// The jobs channel is unbuffered: a job is handed over only when a worker
// takes it, and from that moment it runs to completion. The derived key is
// delivered to the submitting call alone.
type DerivationPool struct {
	kdf  crypto.KeyDerivation
	size int

	jobs chan derivationJob
	quit chan struct{}

	startOnce sync.Once
	stopOnce  sync.Once
	wg        sync.WaitGroup

	logger *logger.Logger
}

// NewDerivationPool builds a pool of size workers over kdf. The pool starts
// lazily on first use or explicitly via Run.
func NewDerivationPool(kdf crypto.KeyDerivation, size int, log *logger.Logger) *DerivationPool {
	if size <= 0 {
		size = DefaultDerivationWorkers
	}
	return &DerivationPool{
		kdf:    kdf,
		size:   size,
		jobs:   make(chan derivationJob),
		quit:   make(chan struct{}),
		logger: log,
	}
}

// Size returns the number of worker goroutines, after defaulting.
func (p *DerivationPool) Size() int {
	return p.size
}

// Run implements [Worker]. It starts the worker goroutines once.
func (p *DerivationPool) Run() {
	p.startOnce.Do(func() {
		p.logger.Debug().Int("workers", p.size).Msg("starting key derivation pool")
		for i := 0; i < p.size; i++ {
			p.wg.Add(1)
			go p.loop()
		}
	})
}

// Stop implements [Stopper]. In-flight derivations finish first.
func (p *DerivationPool) Stop() {
	p.stopOnce.Do(func() {
		close(p.quit)
		p.wg.Wait()
		p.logger.Debug().Msg("key derivation pool stopped")
	})
}

// Derive hands the derivation to a worker and waits for its result.
//
// ctx bounds only the wait for a free worker. Once a worker has accepted the
// job there is no cancellation: Derive waits for the result.
func (p *DerivationPool) Derive(ctx context.Context, passphrase, salt []byte) ([]byte, error) {
	p.Run()

	job := derivationJob{
		passphrase: passphrase,
		salt:       salt,
		result:     make(chan derivationResult, 1),
	}

	select {
	case p.jobs <- job:
	case <-p.quit:
		return nil, ErrPoolStopped
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	res := <-job.result
	return res.key, res.err
}

func (p *DerivationPool) loop() {
	defer p.wg.Done()
	for {
		select {
		case <-p.quit:
			return
		case job := <-p.jobs:
			key, err := p.kdf.Derive(job.passphrase, job.salt)
			job.result <- derivationResult{key: key, err: err}
		}
	}
}
