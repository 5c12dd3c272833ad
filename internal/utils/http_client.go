// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"github.com/go-resty/resty/v2"
)

// HTTPClient wraps [resty.Client] so callers share one construction point
// for outbound HTTP clients.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns a client with its own connection pool and a
// User-Agent identifying the config-hub client.
func NewHTTPClient() *HTTPClient {
	return &HTTPClient{Client: resty.New().SetHeader("User-Agent", "config-hub-client")}
}
