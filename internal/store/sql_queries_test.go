// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"

	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/config-hub/models"
)

func newQueryDB(format sq.PlaceholderFormat) *DB {
	return &DB{builder: sq.StatementBuilder.PlaceholderFormat(format)}
}

func Test_buildUpsertQuery_SQLite(t *testing.T) {
	db := newQueryDB(sq.Question)

	query, args, err := db.buildUpsertQuery([]models.ConfigEntry{
		{Path: "svc", Key: "a", Value: "1"},
		{Path: "svc", Key: "b", Value: "2"},
	})
	require.NoError(t, err)

	assert.Equal(t, upsertTwoRowsSQL, query)
	assert.Equal(t, []any{"svc", "a", "1", "svc", "b", "2"}, args)
}

func Test_buildUpsertQuery_PostgresPlaceholders(t *testing.T) {
	db := newQueryDB(sq.Dollar)

	query, _, err := db.buildUpsertQuery([]models.ConfigEntry{{Path: "svc", Key: "a", Value: "1"}})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(query, "INSERT INTO config (path,key,value) VALUES ($1,$2,$3)"))
	assert.Contains(t, query, "ON CONFLICT (path, key) DO UPDATE SET value = excluded.value")
}

func Test_buildSelectByPathQuery(t *testing.T) {
	query, args, err := newQueryDB(sq.Question).buildSelectByPathQuery("svc")
	require.NoError(t, err)
	assert.Equal(t, selectByPathSQL, query)
	assert.Equal(t, []any{"svc"}, args)
}

func Test_buildSelectByKeyQuery_Postgres(t *testing.T) {
	query, args, err := newQueryDB(sq.Dollar).buildSelectByKeyQuery("svc", "port")
	require.NoError(t, err)
	assert.Equal(t, "SELECT path, key, value FROM config WHERE path = $1 AND key = $2", query)
	assert.Equal(t, []any{"svc", "port"}, args)
}

func Test_buildUpdateQuery(t *testing.T) {
	query, args, err := newQueryDB(sq.Question).buildUpdateQuery(models.ConfigEntry{Path: "svc", Key: "a", Value: "v"})
	require.NoError(t, err)
	assert.Equal(t, updateSQL, query)
	assert.Equal(t, []any{"v", "svc", "a"}, args)
}

func Test_buildDeleteQueries(t *testing.T) {
	db := newQueryDB(sq.Question)

	query, args, err := db.buildDeleteByPathQuery("svc")
	require.NoError(t, err)
	assert.Equal(t, deleteByPathSQL, query)
	assert.Equal(t, []any{"svc"}, args)

	query, args, err = db.buildDeleteByKeyQuery("svc", "a")
	require.NoError(t, err)
	assert.Equal(t, deleteByKeySQL, query)
	assert.Equal(t, []any{"svc", "a"}, args)
}

func Test_batches(t *testing.T) {
	entries := make([]models.ConfigEntry, 5)

	tests := []struct {
		name string
		in   []models.ConfigEntry
		size int
		want []int
	}{
		{name: "empty", in: nil, size: 2, want: []int{}},
		{name: "exact", in: entries[:4], size: 2, want: []int{2, 2}},
		{name: "remainder", in: entries, size: 2, want: []int{2, 2, 1}},
		{name: "single batch", in: entries, size: 10, want: []int{5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := batches(tt.in, tt.size)
			sizes := make([]int, 0, len(got))
			for _, b := range got {
				sizes = append(sizes, len(b))
			}
			assert.Equal(t, tt.want, sizes)
		})
	}
}
