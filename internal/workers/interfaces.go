// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers holds the vault's background goroutines. The main one is
// [DerivationPool], which runs PBKDF2 away from the goroutine that serves
// the UI or a request.
package workers

// Worker starts its goroutines in Run and returns right away.
type Worker interface {
	Run()
}

// Stopper is a Worker that must be told to release its goroutines.
type Stopper interface {
	Stop()
}
