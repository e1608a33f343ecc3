// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "context"

// Server runs the daemon's transports.
type Server interface {
	// Run blocks until ctx is cancelled or a transport fails, then stops
	// every transport. A clean stop returns nil.
	Run(ctx context.Context) error
}
