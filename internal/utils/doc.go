// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides helpers shared across the application: stored
// value coercion, JSON response writing and outbound HTTP client
// construction.
package utils
