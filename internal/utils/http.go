// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// WriteJSON marshals data and writes it with statusCode. Responses may
// carry decrypted section content, so they are marked no-store.
//
// When data cannot be marshaled the client gets a plain 500 and the
// marshal error is returned to the caller for logging.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	body, err := json.Marshal(data)
	if err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return 0, fmt.Errorf("encode response body: %w", err)
	}

	h := w.Header()
	h.Set("Content-Type", "application/json")
	h.Set("Cache-Control", "no-store")
	w.WriteHeader(statusCode)

	return w.Write(body)
}
