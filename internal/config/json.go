// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// jsonConfig is the layout of the config file. Durations are written as
// strings ("30s") and unknown keys are rejected so a typo does not silently
// fall back to a default.
type jsonConfig struct {
	App     jsonApp     `json:"app"`
	Storage jsonStorage `json:"storage"`
	Crypto  jsonCrypto  `json:"crypto"`
	Server  jsonServer  `json:"server"`
	Logging struct {
		Level string `json:"level"`
	} `json:"logging"`
}

type jsonApp struct {
	TokenSignKey  string   `json:"token_sign_key"`
	TokenIssuer   string   `json:"token_issuer"`
	TokenDuration Duration `json:"token_duration"`
	Version       string   `json:"version"`
	Campaign      string   `json:"campaign"`
}

type jsonStorage struct {
	Backend string `json:"backend"`
	DB      struct {
		DSN string `json:"dsn"`
	} `json:"db"`
	Dir    string `json:"dir"`
	Remote struct {
		URL            string   `json:"url"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"remote"`
}

type jsonCrypto struct {
	KDFIterations     int `json:"kdf_iterations"`
	DerivationWorkers int `json:"derivation_workers"`
}

type jsonServer struct {
	HTTPAddress    string   `json:"http_address"`
	GRPCAddress    string   `json:"grpc_address"`
	RequestTimeout Duration `json:"request_timeout"`
}

func (j jsonConfig) structured() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenSignKey:  j.App.TokenSignKey,
			TokenIssuer:   j.App.TokenIssuer,
			TokenDuration: j.App.TokenDuration.Std(),
			Version:       j.App.Version,
			Campaign:      j.App.Campaign,
		},
		Storage: Storage{
			Backend: j.Storage.Backend,
			DB:      DB{DSN: j.Storage.DB.DSN},
			Dir:     j.Storage.Dir,
			Remote: Remote{
				URL:            j.Storage.Remote.URL,
				RequestTimeout: j.Storage.Remote.RequestTimeout.Std(),
			},
		},
		Crypto: Crypto(j.Crypto),
		Server: Server{
			HTTPAddress:    j.Server.HTTPAddress,
			GRPCAddress:    j.Server.GRPCAddress,
			RequestTimeout: j.Server.RequestTimeout.Std(),
		},
		Logging: Logging{Level: j.Logging.Level},
	}
}

func parseJSON(path string) (*StructuredConfig, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config file: %w", err)
	}
	defer f.Close()

	dec := json.NewDecoder(f)
	dec.DisallowUnknownFields()

	var raw jsonConfig
	if err = dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode config file: %w", err)
	}
	return raw.structured(), nil
}

// Duration reads a JSON string such as "1h30m". A bare number is taken as
// seconds.
type Duration time.Duration

func (d Duration) Std() time.Duration { return time.Duration(d) }

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case string:
		parsed, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(parsed)
	case float64:
		*d = Duration(time.Duration(value * float64(time.Second)))
	case nil:
		*d = 0
	default:
		return fmt.Errorf("duration must be a string or a number of seconds, got %s", b)
	}
	return nil
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
