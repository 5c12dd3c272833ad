// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/config-hub/models"
)

// ConfigService implements the configuration store operations on top of a
// [store.ConfigRepository]. Lookups that match nothing return a
// [*NotFoundError].
type ConfigService interface {
	// SaveConfigs creates or overwrites every value of the payload under
	// path and returns the saved names in payload order.
	SaveConfigs(ctx context.Context, path string, values models.ConfigValues) ([]string, error)

	// GetConfigs returns all entries of path with their values coerced to
	// bool, number or string.
	GetConfigs(ctx context.Context, path string) (map[string]any, error)

	// GetConfig returns one entry with its value as stored.
	GetConfig(ctx context.Context, path, key string) (models.ConfigEntry, error)

	// UpdateConfigs overwrites existing entries only.
	UpdateConfigs(ctx context.Context, path string, values models.ConfigValues) (models.UpdateResult, error)

	// DeletePath removes every entry of path and returns how many were removed.
	DeletePath(ctx context.Context, path string) (int64, error)

	// DeleteConfig removes one entry.
	DeleteConfig(ctx context.Context, path, key string) error
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
