// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

// configBuilder stacks configuration layers. Source errors are collected
// rather than returned at once so the user sees every broken source in one
// run.
type configBuilder struct {
	layers []*StructuredConfig
	errs   []error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{layers: make([]*StructuredConfig, 0, 3)}
}

func (b *configBuilder) add(source string, cfg *StructuredConfig, err error) *configBuilder {
	if err != nil {
		b.errs = append(b.errs, fmt.Errorf("%s: %w", source, err))
		return b
	}
	b.layers = append(b.layers, cfg)
	return b
}

func (b *configBuilder) withEnv() *configBuilder {
	cfg := &StructuredConfig{}
	return b.add("environment", cfg, parseEnv(cfg))
}

func (b *configBuilder) withFlags(args []string) *configBuilder {
	cfg, err := parseFlags(args)
	return b.add("flags", cfg, err)
}

// withJSON adds the file named by the first layer that sets JSONFilePath.
func (b *configBuilder) withJSON() *configBuilder {
	for _, layer := range b.layers {
		if layer.JSONFilePath == "" {
			continue
		}
		cfg, err := parseJSON(layer.JSONFilePath)
		return b.add("config file "+layer.JSONFilePath, cfg, err)
	}
	return b
}

func (b *configBuilder) build() (*StructuredConfig, error) {
	if err := errors.Join(b.errs...); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	merged := &StructuredConfig{}
	for _, layer := range b.layers {
		if err := mergo.Merge(merged, layer); err != nil {
			return nil, fmt.Errorf("merge config layers: %w", err)
		}
	}
	merged.applyDefaults()

	if err := merged.validate(); err != nil {
		return nil, err
	}
	return merged, nil
}
