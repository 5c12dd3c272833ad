// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the REST transport of the config store.
//
// It exposes route wiring, request handlers and middleware. Cross-cutting
// concerns such as request tracing, access logging, response compression
// and CORS are handled here before requests are delegated to the service
// layer.
package http
