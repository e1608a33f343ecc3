// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSON(t *testing.T) {
	type section struct {
		ID    string `json:"id"`
		State string `json:"state"`
	}

	tests := []struct {
		name   string
		data   any
		status int
		body   string
	}{
		{"struct", section{ID: "s1", State: "locked"}, http.StatusOK, `{"id":"s1","state":"locked"}`},
		{"created", section{ID: "s2", State: "plaintext"}, http.StatusCreated, `{"id":"s2","state":"plaintext"}`},
		{"error body", map[string]string{"error": "section not found"}, http.StatusNotFound, `{"error":"section not found"}`},
		{"nil", nil, http.StatusOK, `null`},
		{"slice", []section{}, http.StatusOK, `[]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()

			n, err := WriteJSON(w, tt.data, tt.status)

			require.NoError(t, err)
			assert.Equal(t, len(tt.body), n)
			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
			assert.Equal(t, "no-store", w.Header().Get("Cache-Control"))
			assert.JSONEq(t, tt.body, w.Body.String())
		})
	}
}

func TestWriteJSON_Unmarshalable(t *testing.T) {
	w := httptest.NewRecorder()

	_, err := WriteJSON(w, make(chan int), http.StatusOK)

	require.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Empty(t, w.Header().Get("Cache-Control"))
}
