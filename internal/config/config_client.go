// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
)

// ClientApp holds client-side application settings derived from the shared
// structured config.
type ClientApp struct {
	// Version is shown on the build info screen.
	Version string
	// Campaign is opened right away instead of showing the campaign prompt.
	Campaign string
}

// ClientConfig is the configuration view used by the terminal client. The
// client has no listening sockets, so server and token settings are left out.
type ClientConfig struct {
	// App contains application-level client settings.
	App ClientApp
	// Storage selects the record store the notebook is kept in.
	Storage Storage
	// Crypto tunes key derivation.
	Crypto Crypto
	// Logging holds the log level of the file logger.
	Logging Logging
}

// GetClientConfig is [GetStructuredConfig] narrowed to what the terminal
// client uses, validated with the client's stricter crypto rules.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("client config: %w", err)
	}

	return newClientConfig(cfg)
}

func newClientConfig(cfg *StructuredConfig) (*ClientConfig, error) {
	clientCfg := &ClientConfig{
		App:     ClientApp{Version: cfg.App.Version, Campaign: cfg.App.Campaign},
		Storage: cfg.Storage,
		Crypto:  cfg.Crypto,
		Logging: cfg.Logging,
	}

	return clientCfg, clientCfg.validate()
}
