// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client assembles the vault runtime shared by the terminal client
// and the daemon: record store, key derivation pool, section state machine
// and services. App runs the terminal client on top of it.
package client
