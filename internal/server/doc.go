// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the HTTP transport of the config store.
//
// It owns the listener lifecycle: startup, signal handling, graceful
// shutdown and the release of resources (such as the database pool) that
// must outlive every in-flight request.
package server
