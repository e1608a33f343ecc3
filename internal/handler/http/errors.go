// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Errors raised by the transport itself, before a request reaches the
// vault service. errors_mapper.go assigns each a status code.
var (
	ErrEmptyAuthorizationHeader   = errors.New("missing Authorization header")
	ErrInvalidAuthorizationHeader = errors.New("bearer token expected in Authorization header")

	ErrInvalidJSON     = errors.New("request body is not valid JSON")
	ErrPayloadTooLarge = errors.New("request body too large")
	ErrNothingToUpdate = errors.New("neither title nor position given")

	ErrRouteNotFound    = errors.New("route not found")
	ErrMethodNotAllowed = errors.New("method not allowed")
)
