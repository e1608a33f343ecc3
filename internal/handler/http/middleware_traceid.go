// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-campaign-vault/internal/utils"
)

const (
	traceIDHeader   = "X-Trace-ID"
	maxTraceIDBytes = 64
)

// withTraceID tags the request with a trace id. A caller supplied id is
// kept when it is short and printable; anything else is replaced so it
// cannot smuggle junk into the logs.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(traceIDHeader)
		if !acceptableTraceID(traceID) {
			traceID = uuid.NewString()
		}
		w.Header().Set(traceIDHeader, traceID)

		reqLog := h.logger.GetChildLogger()
		reqLog.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("trace_id", traceID)
		})

		ctx := context.WithValue(r.Context(), utils.TraceIDCtxKey, traceID)
		next.ServeHTTP(w, r.WithContext(reqLog.WithContext(ctx)))
	})
}

func acceptableTraceID(id string) bool {
	if id == "" || len(id) > maxTraceIDBytes {
		return false
	}
	for i := 0; i < len(id); i++ {
		c := id[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		case c == '-', c == '_', c == '.', c == ':':
		default:
			return false
		}
	}
	return true
}
