// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

var (
	ErrNotFound            = errors.New("not found")
	ErrUnprocessable       = errors.New("unprocessable request")
	ErrInternalServerError = errors.New("internal server error")
	ErrGatewayTimeout      = errors.New("server timed out")

	ErrInvalidAddress = errors.New("invalid server address")
)
