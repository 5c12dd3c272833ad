// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Request validation errors. All of them are answered with 422.
var (
	// ErrMissingPathHeader is returned when the request has no "path" header.
	// An empty header value is a valid path.
	ErrMissingPathHeader = errors.New("field required: header 'path'")

	// ErrMissingKeyParam is returned when the "key" query parameter is absent.
	ErrMissingKeyParam = errors.New("field required: query parameter 'key'")

	// ErrInvalidBody is returned when the request body is not valid JSON.
	ErrInvalidBody = errors.New("request body is not valid JSON")
)
