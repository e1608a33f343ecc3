// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import "github.com/google/uuid"

// UUIDGenerator hands out section ids. Version 7 ids sort by creation
// time, which keeps freshly added sections together in a database index.
type UUIDGenerator struct{}

func NewUUIDGenerator() *UUIDGenerator { return &UUIDGenerator{} }

// Generate falls back to a random v4 id if the v7 clock read fails.
func (UUIDGenerator) Generate() string {
	if id, err := uuid.NewV7(); err == nil {
		return id.String()
	}
	return uuid.NewString()
}
