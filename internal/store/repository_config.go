// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/config-hub/internal/logger"
	"github.com/MKhiriev/config-hub/models"
)

// configRepository is the SQL implementation of [ConfigRepository]. It runs
// every statement against the "config" table through the embedded [*DB],
// which supplies the dialect-specific statement builder.
//
// Every public method obtains a context-scoped logger via
// [logger.FromContext] so that database failures are traced with the
// request's trace ID.
type configRepository struct {
	*DB
	logger *logger.Logger
}

// NewConfigRepository constructs a [ConfigRepository] backed by the provided
// database connection and logger.
func NewConfigRepository(db *DB, logger *logger.Logger) ConfigRepository {
	logger.Debug().Msg("creating config repository")
	return &configRepository{
		DB:     db,
		logger: logger,
	}
}

// Upsert writes all entries in one transaction, in batches of
// [upsertBatchSize] rows. Existing (path, key) rows get their value
// overwritten; new ones are inserted.
func (r *configRepository) Upsert(ctx context.Context, entries []models.ConfigEntry) error {
	if len(entries) == 0 {
		return nil
	}

	log := logger.FromContext(ctx)

	return r.inTx(ctx, func(tx *sql.Tx) error {
		for _, batch := range batches(entries, upsertBatchSize) {
			query, args, err := r.buildUpsertQuery(batch)
			if err != nil {
				log.Err(err).Str("func", "*configRepository.Upsert").Msg("failed to build upsert query")
				return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
			}

			if _, err = tx.ExecContext(ctx, query, args...); err != nil {
				log.Err(err).
					Str("func", "*configRepository.Upsert").
					Str("path", batch[0].Path).
					Int("entries", len(batch)).
					Bool("retryable", r.retryable(err)).
					Str("pg_code", postgresError(err)).
					Msg("failed to upsert configs")
				return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
			}
		}
		return nil
	})
}

// GetByPath returns every entry stored under path, ordered by key.
func (r *configRepository) GetByPath(ctx context.Context, path string) ([]models.ConfigEntry, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.buildSelectByPathQuery(path)
	if err != nil {
		log.Err(err).Str("func", "*configRepository.GetByPath").Msg("failed to build select query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*configRepository.GetByPath").
			Str("path", path).
			Bool("retryable", r.retryable(err)).
			Msg("failed to execute query for getting configs by path")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	entries := make([]models.ConfigEntry, 0)
	for rows.Next() {
		var entry models.ConfigEntry
		if err := rows.Scan(&entry.Path, &entry.Key, &entry.Value); err != nil {
			log.Err(err).
				Str("func", "*configRepository.GetByPath").
				Str("path", path).
				Msg("failed to scan config row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).
			Str("func", "*configRepository.GetByPath").
			Str("path", path).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return entries, nil
}

// GetByKey returns the entry stored under (path, key).
func (r *configRepository) GetByKey(ctx context.Context, path, key string) (models.ConfigEntry, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.buildSelectByKeyQuery(path, key)
	if err != nil {
		log.Err(err).Str("func", "*configRepository.GetByKey").Msg("failed to build select query")
		return models.ConfigEntry{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var entry models.ConfigEntry
	err = r.QueryRowContext(ctx, query, args...).Scan(&entry.Path, &entry.Key, &entry.Value)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.ConfigEntry{}, ErrConfigNotFound
	case err != nil:
		log.Err(err).
			Str("func", "*configRepository.GetByKey").
			Str("path", path).
			Str("key", key).
			Bool("retryable", r.retryable(err)).
			Msg("failed to get config by key")
		return models.ConfigEntry{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return entry, nil
}

// Update overwrites existing entries inside one transaction. Entries whose
// (path, key) does not exist are reported in notFound and never created.
// If nothing matched, the transaction is rolled back and
// [ErrConfigNotFound] is returned.
func (r *configRepository) Update(ctx context.Context, entries []models.ConfigEntry) ([]string, []string, error) {
	log := logger.FromContext(ctx)

	updated := make([]string, 0, len(entries))
	notFound := make([]string, 0)

	err := r.inTx(ctx, func(tx *sql.Tx) error {
		for _, entry := range entries {
			query, args, err := r.buildUpdateQuery(entry)
			if err != nil {
				log.Err(err).Str("func", "*configRepository.Update").Msg("failed to build update query")
				return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
			}

			result, err := tx.ExecContext(ctx, query, args...)
			if err != nil {
				log.Err(err).
					Str("func", "*configRepository.Update").
					Str("path", entry.Path).
					Str("key", entry.Key).
					Bool("retryable", r.retryable(err)).
					Msg("failed to update config")
				return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
			}

			affected, err := result.RowsAffected()
			if err != nil {
				return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
			}

			if affected == 0 {
				notFound = append(notFound, entry.Key)
				continue
			}
			updated = append(updated, entry.Key)
		}

		if len(updated) == 0 {
			return ErrConfigNotFound
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	return updated, notFound, nil
}

// DeleteByPath removes all entries of path in one transaction.
func (r *configRepository) DeleteByPath(ctx context.Context, path string) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.buildDeleteByPathQuery(path)
	if err != nil {
		log.Err(err).Str("func", "*configRepository.DeleteByPath").Msg("failed to build delete query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var deleted int64
	err = r.inTx(ctx, func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			log.Err(err).
				Str("func", "*configRepository.DeleteByPath").
				Str("path", path).
				Bool("retryable", r.retryable(err)).
				Msg("failed to delete configs by path")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		deleted, err = result.RowsAffected()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		if deleted == 0 {
			return ErrConfigNotFound
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return deleted, nil
}

// DeleteByKey removes the entry stored under (path, key).
func (r *configRepository) DeleteByKey(ctx context.Context, path, key string) error {
	log := logger.FromContext(ctx)

	query, args, err := r.buildDeleteByKeyQuery(path, key)
	if err != nil {
		log.Err(err).Str("func", "*configRepository.DeleteByKey").Msg("failed to build delete query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*configRepository.DeleteByKey").
			Str("path", path).
			Str("key", key).
			Bool("retryable", r.retryable(err)).
			Msg("failed to delete config by key")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrConfigNotFound
	}

	return nil
}
