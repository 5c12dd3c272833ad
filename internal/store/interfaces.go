// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/config-hub/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/config_repository_mock.go -package=mock -exclude_interfaces=ErrorClassificator

// ConfigRepository persists configuration entries in the "config" table,
// keyed by (path, key).
type ConfigRepository interface {
	// Upsert creates or overwrites every entry in one transaction.
	// An empty slice is a successful no-op.
	Upsert(ctx context.Context, entries []models.ConfigEntry) error

	// GetByPath returns all entries of a path ordered by key. A path without
	// entries yields an empty slice and no error.
	GetByPath(ctx context.Context, path string) ([]models.ConfigEntry, error)

	// GetByKey returns a single entry or [ErrConfigNotFound].
	GetByKey(ctx context.Context, path, key string) (models.ConfigEntry, error)

	// Update overwrites the values of existing entries only, in one
	// transaction, and reports which keys were updated and which were
	// missing. When no key exists nothing is written and
	// [ErrConfigNotFound] is returned.
	Update(ctx context.Context, entries []models.ConfigEntry) (updated, notFound []string, err error)

	// DeleteByPath removes every entry of a path and returns how many were
	// removed, or [ErrConfigNotFound] when the path was empty.
	DeleteByPath(ctx context.Context, path string) (int64, error)

	// DeleteByKey removes a single entry or returns [ErrConfigNotFound].
	DeleteByKey(ctx context.Context, path, key string) error
}

// ErrorClassificator decides whether a failed database operation is worth
// retrying.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
