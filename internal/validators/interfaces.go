// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks notebooks before the vault trusts them. A
// notebook arrives either from the record store on load or from a user
// file on import; both paths run the same rules, so the vault core can
// rely on the persisted shape without re-checking it.
package validators

import "context"

// Validator checks v. Passing field names limits the check to those
// fields; with none, every rule runs.
type Validator interface {
	Validate(ctx context.Context, v any, fields ...string) error
}
