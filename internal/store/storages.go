// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/config-hub/internal/config"
	"github.com/MKhiriev/config-hub/internal/logger"
)

// Storages bundles the repositories built on one database handle.
type Storages struct {
	ConfigRepository ConfigRepository

	db *DB
}

// NewStorages connects to the configured database, applies migrations and
// builds the repositories. Callers own the result and must Close it.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	log.Info().Str("driver", cfg.DB.Driver).Msg("creating storages...")

	db, err := NewConnect(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	created, err := db.Migrate()
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("error migrating database: %w", err)
	}
	if created {
		log.Info().Msg("database initialized successfully")
	} else {
		log.Info().Msg("database already exists, tables verified")
	}

	return &Storages{
		ConfigRepository: NewConfigRepository(db, log),
		db:               db,
	}, nil
}

// Close releases the database connection pool.
func (s *Storages) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
