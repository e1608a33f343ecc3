// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the vault daemon's transports: the local REST API over
// HTTP and the gRPC health endpoint. Both stop together when the context
// given to [Server.Run] ends or either of them fails.
package server
