// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package migrations embeds the SQL schema of the config store and applies it
// with goose.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed *.sql
var embedMigrations embed.FS

var errNilDB = errors.New("db is nil")

// Migrate applies all pending migrations using the goose dialect matching
// the database/sql driver name ("sqlite3" or "pgx").
//
// created reports whether the schema was created by this call, i.e. the
// database had no migrations applied before.
func Migrate(db *sql.DB, dialect string) (created bool, err error) {
	if db == nil {
		return false, fmt.Errorf("migration error: %w", errNilDB)
	}

	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect(dialect); err != nil {
		return false, fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	before, err := goose.GetDBVersion(db)
	if err != nil {
		return false, fmt.Errorf("migration error reading db version: %w", err)
	}

	if err := goose.Up(db, "."); err != nil {
		return false, fmt.Errorf("migration error: %w", err)
	}

	return before == 0, nil
}
