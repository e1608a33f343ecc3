// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/caarlos0/env/v11"
)

// envOptions trims surrounding whitespace from every string variable, so a
// value like "STORAGE_BACKEND=sqlite " copied out of a .env file still
// names a known backend.
func envOptions() env.Options {
	return env.Options{
		FuncMap: map[reflect.Type]env.ParserFunc{
			reflect.TypeOf(""): func(v string) (any, error) {
				return strings.TrimSpace(v), nil
			},
		},
	}
}

// parseEnv fills cfg from the environment. Field names come from the `env`
// and `envPrefix` tags on [StructuredConfig] and [ClientConfig].
func parseEnv(cfg any) error {
	if err := env.ParseWithOptions(cfg, envOptions()); err != nil {
		return fmt.Errorf("error reading vault env configs: %w", err)
	}
	return nil
}
