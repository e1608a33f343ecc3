// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-campaign-vault/internal/store"
)

// statusErrors lists the remote statuses that have a sentinel of their own.
var statusErrors = map[int]error{
	http.StatusBadRequest:            ErrBadRequest,
	http.StatusUnauthorized:          ErrUnauthorized,
	http.StatusForbidden:             ErrForbidden,
	http.StatusNotFound:              store.ErrRecordNotFound,
	http.StatusConflict:              ErrConflict,
	http.StatusRequestEntityTooLarge: ErrPayloadTooLarge,
	http.StatusInternalServerError:   ErrInternalServerError,
	http.StatusBadGateway:            ErrBadGateway,
	http.StatusServiceUnavailable:    ErrServiceUnavailable,
	http.StatusGatewayTimeout:        ErrServiceUnavailable,
}

// mapHTTPError returns nil for 2xx. Any 5xx is also marked
// [store.ErrTransient] so the store retry loop picks it up.
func mapHTTPError(resp *resty.Response) error {
	code := resp.StatusCode()
	if code/100 == 2 {
		return nil
	}

	reason := strings.TrimSpace(string(resp.Body()))
	if reason == "" {
		reason = http.StatusText(code)
	}

	var err error
	if sentinel, ok := statusErrors[code]; ok {
		err = fmt.Errorf("%w: %s", sentinel, reason)
	} else {
		err = fmt.Errorf("http %d: %s", code, reason)
	}

	if code >= http.StatusInternalServerError {
		return fmt.Errorf("%w: %w", store.ErrTransient, err)
	}
	return err
}

// mapTransportError wraps a failed round trip. Only a caller cancelling
// its own context is final; every other network failure may be retried.
func mapTransportError(op string, err error) error {
	if errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s request: %w", op, err)
	}
	return fmt.Errorf("%w: %s request: %w", store.ErrTransient, op, err)
}
