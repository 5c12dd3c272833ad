// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"

	"github.com/MKhiriev/config-hub/models"
)

// ConfigClient is the client side of the config-hub REST API. Every method
// maps to one route; non-2xx answers are returned as errors wrapping one of
// the package sentinels together with the server's "detail" message.
type ConfigClient interface {
	SaveConfigs(ctx context.Context, path string, values models.ConfigValues) (models.ConfigCreateResponse, error)
	GetConfigs(ctx context.Context, path string) (map[string]any, error)
	GetConfig(ctx context.Context, path, key string) (models.ConfigEntry, error)
	UpdateConfigs(ctx context.Context, path string, values models.ConfigValues) (models.ConfigUpdateResponse, error)
	DeletePath(ctx context.Context, path string) (models.ConfigDeleteResponse, error)
	DeleteConfig(ctx context.Context, path, key string) (models.ConfigDeleteResponse, error)

	Health(ctx context.Context) (models.HealthResponse, error)
	Version(ctx context.Context) (models.VersionResponse, error)
}
