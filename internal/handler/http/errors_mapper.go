// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-campaign-vault/internal/crypto"
	"github.com/MKhiriev/go-campaign-vault/internal/logger"
	"github.com/MKhiriev/go-campaign-vault/internal/service"
	"github.com/MKhiriev/go-campaign-vault/internal/utils"
	"github.com/MKhiriev/go-campaign-vault/internal/validators"
	"github.com/MKhiriev/go-campaign-vault/internal/vault"
)

// errorStatuses is walked in order and the first match wins. An error
// chain may wrap more than one sentinel, for example a persistence failure
// around a busy section, so the more specific entries come first.
var errorStatuses = []struct {
	target error
	status int
}{
	{ErrPayloadTooLarge, http.StatusRequestEntityTooLarge},
	{ErrInvalidJSON, http.StatusBadRequest},
	{ErrNothingToUpdate, http.StatusBadRequest},
	{ErrEmptyAuthorizationHeader, http.StatusUnauthorized},
	{ErrInvalidAuthorizationHeader, http.StatusUnauthorized},
	{ErrRouteNotFound, http.StatusNotFound},
	{ErrMethodNotAllowed, http.StatusMethodNotAllowed},

	{crypto.ErrCryptoUnavailable, http.StatusInternalServerError},
	{crypto.ErrAuthenticationFailure, http.StatusUnauthorized},

	{vault.ErrSectionBusy, http.StatusConflict},
	{vault.ErrInvalidSectionState, http.StatusConflict},
	{vault.ErrSectionNotFound, http.StatusNotFound},
	{vault.ErrInvalidPosition, http.StatusBadRequest},

	{validators.ErrInvalidCampaignID, http.StatusBadRequest},
	{validators.ErrInvalidNotebook, http.StatusBadRequest},

	{service.ErrEmptyPassphrase, http.StatusBadRequest},
	{service.ErrEmptyTitle, http.StatusBadRequest},
	{service.ErrTitleTooLong, http.StatusBadRequest},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized},
	{service.ErrNotebookNotLoaded, http.StatusPreconditionFailed},
	{service.ErrPersistenceFailure, http.StatusServiceUnavailable},
}

func statusFromError(err error) int {
	for _, e := range errorStatuses {
		if errors.Is(err, e.target) {
			return e.status
		}
	}
	return http.StatusInternalServerError
}

type errorResponse struct {
	Error string `json:"error"`
}

// writeError logs err and answers with its mapped status and a JSON body.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)

	event := logger.FromRequest(r).Warn()
	if status >= http.StatusInternalServerError {
		event = logger.FromRequest(r).Error()
	}
	event.Err(err).Int("status", status).Msg("request failed")

	_, _ = utils.WriteJSON(w, errorResponse{Error: err.Error()}, status)
}
