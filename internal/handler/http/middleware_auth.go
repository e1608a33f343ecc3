// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-campaign-vault/internal/utils"
)

// auth admits requests carrying a bearer token issued by this daemon. The
// token subject is stored under [utils.SubjectCtxKey] for the handlers.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" {
			writeError(w, r, ErrEmptyAuthorizationHeader)
			return
		}
		raw, err := utils.ParseBearerToken(header)
		if err != nil {
			writeError(w, r, ErrInvalidAuthorizationHeader)
			return
		}

		token, err := h.services.AuthService.ParseToken(r.Context(), raw)
		if err != nil {
			writeError(w, r, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), utils.SubjectCtxKey, token.Subject)))
	})
}
