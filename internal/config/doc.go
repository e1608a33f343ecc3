// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config assembles vault settings from three layers: environment
// variables, command-line flags and an optional JSON file named by either
// of them (CONFIG, -c). The environment outranks flags, flags outrank the
// file, and anything still unset takes a Default* value.
//
// The daemon reads [GetStructuredConfig]; the terminal client reads the
// narrower [GetClientConfig].
package config
