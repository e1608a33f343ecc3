// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the remote persistence adapter: a
// [store.RecordStore] that keeps notebook records on an HTTP record service.
//
// The service contract is two endpoints:
//
//	GET {base}/records/{key}  200 with the JSON document, or 404
//	PUT {base}/records/{key}  JSON document body, any 2xx on success
//
// Status codes are mapped by mapHTTPError so callers can use [errors.Is]
// (404 becomes [store.ErrRecordNotFound]; 5xx and network errors carry
// [store.ErrTransient]).
package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-campaign-vault/internal/config"
	"github.com/MKhiriev/go-campaign-vault/internal/logger"
	"github.com/MKhiriev/go-campaign-vault/internal/store"
	"github.com/MKhiriev/go-campaign-vault/internal/utils"
)

const recordPath = "/records/{key}"

type httpRecordStore struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewHTTPRecordStore constructs the remote [store.RecordStore]. It
// normalises and validates the base URL from cfg.URL and configures the
// underlying HTTP client with the request timeout.
//
// Returns an error if cfg.URL is empty or cannot be parsed as a valid URL.
func NewHTTPRecordStore(cfg config.Remote, logger *logger.Logger) (store.RecordStore, error) {
	baseURL, err := normalizeBaseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("invalid remote store url: %w", err)
	}

	client := utils.NewHTTPClient(baseURL, cfg.RequestTimeout)

	logger.Debug().Str("base_url", baseURL).Msg("remote record store configured")

	return &httpRecordStore{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Get implements [store.RecordStore] with GET /records/{key}.
func (h *httpRecordStore) Get(ctx context.Context, key string) (json.RawMessage, error) {
	if key == "" {
		return nil, store.ErrEmptyKey
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("key", key).
		Get(recordPath)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "httpRecordStore.Get").Str("key", key).Msg("remote get failed")
		return nil, mapTransportError("get record", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	body := resp.Body()
	if !json.Valid(body) {
		return nil, fmt.Errorf("%w: record %s is not valid JSON", ErrBadGateway, key)
	}

	return json.RawMessage(body), nil
}

// Set implements [store.RecordStore] with PUT /records/{key}.
func (h *httpRecordStore) Set(ctx context.Context, key string, value json.RawMessage) error {
	if key == "" {
		return store.ErrEmptyKey
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("key", key).
		SetHeader("Content-Type", "application/json").
		SetBody([]byte(value)).
		Put(recordPath)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "httpRecordStore.Set").Str("key", key).Msg("remote put failed")
		return mapTransportError("put record", err)
	}

	return mapHTTPError(resp)
}

// Close releases idle connections of the underlying client.
func (h *httpRecordStore) Close() error {
	h.client.GetClient().CloseIdleConnections()
	return nil
}
