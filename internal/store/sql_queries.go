// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"github.com/MKhiriev/config-hub/models"
)

const (
	configTable = "config"

	// upsertBatchSize bounds the rows of one INSERT so the statement stays
	// under the bind-parameter limits of both SQLite and PostgreSQL.
	upsertBatchSize = 500

	upsertConflictClause = "ON CONFLICT (path, key) DO UPDATE SET value = excluded.value"
)

var configColumns = []string{"path", "key", "value"}

// buildUpsertQuery builds one multi-row INSERT that overwrites the value of
// rows whose (path, key) already exists.
func (db *DB) buildUpsertQuery(entries []models.ConfigEntry) (string, []any, error) {
	query := db.builder.
		Insert(configTable).
		Columns(configColumns...)

	for _, entry := range entries {
		query = query.Values(entry.Path, entry.Key, entry.Value)
	}

	return query.Suffix(upsertConflictClause).ToSql()
}

func (db *DB) buildSelectByPathQuery(path string) (string, []any, error) {
	return db.builder.
		Select(configColumns...).
		From(configTable).
		Where("path = ?", path).
		OrderBy("key").
		ToSql()
}

func (db *DB) buildSelectByKeyQuery(path, key string) (string, []any, error) {
	return db.builder.
		Select(configColumns...).
		From(configTable).
		Where("path = ? AND key = ?", path, key).
		ToSql()
}

func (db *DB) buildUpdateQuery(entry models.ConfigEntry) (string, []any, error) {
	return db.builder.
		Update(configTable).
		Set("value", entry.Value).
		Where("path = ? AND key = ?", entry.Path, entry.Key).
		ToSql()
}

func (db *DB) buildDeleteByPathQuery(path string) (string, []any, error) {
	return db.builder.
		Delete(configTable).
		Where("path = ?", path).
		ToSql()
}

func (db *DB) buildDeleteByKeyQuery(path, key string) (string, []any, error) {
	return db.builder.
		Delete(configTable).
		Where("path = ? AND key = ?", path, key).
		ToSql()
}

// batches splits entries into chunks of at most size elements.
func batches(entries []models.ConfigEntry, size int) [][]models.ConfigEntry {
	chunks := make([][]models.ConfigEntry, 0, len(entries)/size+1)
	for start := 0; start < len(entries); start += size {
		end := min(start+size, len(entries))
		chunks = append(chunks, entries[start:end])
	}
	return chunks
}
