// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// UserAgent identifies vault clients to a remote record service.
const UserAgent = "campaign-vault"

// HTTPClient is the resty client used to talk to a record service. Every
// request it builds asks for JSON and carries [UserAgent].
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns a client rooted at baseURL. A zero timeout leaves
// requests bounded only by their context.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	c := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", UserAgent)
	if timeout > 0 {
		c.SetTimeout(timeout)
	}
	return &HTTPClient{Client: c}
}
