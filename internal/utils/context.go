// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, HTTP response
// writing, HTTP client initialization, JWT token generation and validation,
// and id generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// SubjectCtxKey is the key under which the auth middleware stores the token
// subject of the calling API client.
var SubjectCtxKey = contextKey("subject")

// TraceIDCtxKey is the key under which the trace middleware stores the
// request trace id.
var TraceIDCtxKey = contextKey("traceID")

// GetSubjectFromContext returns the API client subject and whether it is set.
func GetSubjectFromContext(ctx context.Context) (string, bool) {
	subject, ok := ctx.Value(SubjectCtxKey).(string)
	return subject, ok
}

// GetTraceIDFromContext returns the request trace id and whether it is set.
func GetTraceIDFromContext(ctx context.Context) (string, bool) {
	traceID, ok := ctx.Value(TraceIDCtxKey).(string)
	return traceID, ok
}
