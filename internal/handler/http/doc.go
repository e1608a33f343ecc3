// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the local REST API of the vault daemon.
//
// It exposes route wiring, request handlers, and middleware for the notebook
// of the active campaign. Request tracing, access logging, response
// compression and the optional bearer-token guard are handled here before
// requests are delegated to the service layer. Passphrases and section text
// travel in request and response bodies and are never logged.
package http
