// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-campaign-vault/internal/config"
	"github.com/MKhiriev/go-campaign-vault/internal/logger"
	"github.com/MKhiriev/go-campaign-vault/internal/store"
)

// newTestStore points an httpRecordStore at the test server.
func newTestStore(t *testing.T, serverURL string) store.RecordStore {
	t.Helper()
	s, err := NewHTTPRecordStore(config.Remote{URL: serverURL, RequestTimeout: 2 * time.Second}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

// ── constructor ─────────────────────────────────────────────────────────────

func TestNewHTTPRecordStore_InvalidURL(t *testing.T) {
	_, err := NewHTTPRecordStore(config.Remote{URL: "  "}, logger.Nop())
	assert.Error(t, err)

	_, err = NewHTTPRecordStore(config.Remote{URL: "http://"}, logger.Nop())
	assert.Error(t, err)
}

func TestNormalizeBaseURL(t *testing.T) {
	got, err := normalizeBaseURL("localhost:8081/")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8081", got)

	got, err = normalizeBaseURL("https://records.example/")
	require.NoError(t, err)
	assert.Equal(t, "https://records.example", got)
}

// ── Get ─────────────────────────────────────────────────────────────────────

func TestGet_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/records/notebook:c1", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"sections":[],"hint":"first pet"}`))
	}))
	defer srv.Close()

	got, err := newTestStore(t, srv.URL).Get(context.Background(), "notebook:c1")
	require.NoError(t, err)
	assert.JSONEq(t, `{"sections":[],"hint":"first pet"}`, string(got))
}

func TestGet_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := newTestStore(t, srv.URL).Get(context.Background(), "notebook:c1")
	assert.ErrorIs(t, err, store.ErrRecordNotFound)
	assert.False(t, store.IsRetryable(err))
}

func TestGet_InvalidJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>`))
	}))
	defer srv.Close()

	_, err := newTestStore(t, srv.URL).Get(context.Background(), "notebook:c1")
	assert.ErrorIs(t, err, ErrBadGateway)
}

func TestGet_EmptyKey(t *testing.T) {
	_, err := newTestStore(t, "http://127.0.0.1:1").Get(context.Background(), "")
	assert.ErrorIs(t, err, store.ErrEmptyKey)
}

func TestGet_TransportErrorIsRetryable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := newTestStore(t, url).Get(context.Background(), "notebook:c1")
	require.Error(t, err)
	assert.True(t, store.IsRetryable(err))
}

// ── Set ─────────────────────────────────────────────────────────────────────

func TestSet_Success(t *testing.T) {
	var gotBody []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/records/notebook:c1", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	value := json.RawMessage(`{"sections":[{"id":"a","title":"A","encrypted":false,"content":"x"}]}`)
	require.NoError(t, newTestStore(t, srv.URL).Set(context.Background(), "notebook:c1", value))
	assert.JSONEq(t, string(value), string(gotBody))
}

func TestSet_StatusMapping(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		wantErr   error
		retryable bool
	}{
		{name: "bad request", status: http.StatusBadRequest, wantErr: ErrBadRequest},
		{name: "unauthorized", status: http.StatusUnauthorized, wantErr: ErrUnauthorized},
		{name: "forbidden", status: http.StatusForbidden, wantErr: ErrForbidden},
		{name: "conflict", status: http.StatusConflict, wantErr: ErrConflict},
		{name: "too large", status: http.StatusRequestEntityTooLarge, wantErr: ErrPayloadTooLarge},
		{name: "internal", status: http.StatusInternalServerError, wantErr: ErrInternalServerError, retryable: true},
		{name: "bad gateway", status: http.StatusBadGateway, wantErr: ErrBadGateway, retryable: true},
		{name: "unavailable", status: http.StatusServiceUnavailable, wantErr: ErrServiceUnavailable, retryable: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte("nope"))
			}))
			defer srv.Close()

			err := newTestStore(t, srv.URL).Set(context.Background(), "notebook:c1", json.RawMessage(`{}`))
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, tt.retryable, store.IsRetryable(err))
		})
	}
}

func TestSet_UnknownStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	defer srv.Close()

	err := newTestStore(t, srv.URL).Set(context.Background(), "notebook:c1", json.RawMessage(`{}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "http 418")
	assert.False(t, store.IsRetryable(err))
}

func TestSet_CanceledContextIsNotRetryable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := newTestStore(t, srv.URL).Set(ctx, "notebook:c1", json.RawMessage(`{}`))
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, store.IsRetryable(err))
}
