// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/config-hub/internal/config"
	"github.com/MKhiriev/config-hub/internal/logger"
	"github.com/MKhiriev/config-hub/models"
)

func newSQLiteStorages(t *testing.T) *Storages {
	t.Helper()

	cfg := config.Storage{DB: config.DB{
		Driver: config.DriverSQLite,
		DSN:    filepath.Join(t.TempDir(), "config.db"),
	}}

	s, err := NewStorages(context.Background(), cfg, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	return s
}

func TestNewStorages_UnsupportedDriver(t *testing.T) {
	_, err := NewStorages(context.Background(), config.Storage{DB: config.DB{Driver: "oracle", DSN: "x"}}, logger.Nop())
	assert.ErrorIs(t, err, ErrUnsupportedDriver)
}

func TestNewStorages_ReopenKeepsData(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "config.db")
	cfg := config.Storage{DB: config.DB{Driver: config.DriverSQLite, DSN: dsn}}
	ctx := context.Background()

	first, err := NewStorages(ctx, cfg, logger.Nop())
	require.NoError(t, err)
	require.NoError(t, first.ConfigRepository.Upsert(ctx, []models.ConfigEntry{{Path: "svc", Key: "a", Value: "1"}}))
	require.NoError(t, first.Close())

	second, err := NewStorages(ctx, cfg, logger.Nop())
	require.NoError(t, err)
	defer second.Close()

	entry, err := second.ConfigRepository.GetByKey(ctx, "svc", "a")
	require.NoError(t, err)
	assert.Equal(t, "1", entry.Value)
}

func TestSQLite_UpsertOverwrites(t *testing.T) {
	repo := newSQLiteStorages(t).ConfigRepository
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, []models.ConfigEntry{
		{Path: "svc", Key: "b", Value: "x"},
		{Path: "svc", Key: "a", Value: "1"},
	}))
	require.NoError(t, repo.Upsert(ctx, []models.ConfigEntry{{Path: "svc", Key: "a", Value: "2"}}))

	entries, err := repo.GetByPath(ctx, "svc")
	require.NoError(t, err)
	assert.Equal(t, []models.ConfigEntry{
		{Path: "svc", Key: "a", Value: "2"},
		{Path: "svc", Key: "b", Value: "x"},
	}, entries)
}

func TestSQLite_PathsAreIndependent(t *testing.T) {
	repo := newSQLiteStorages(t).ConfigRepository
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, []models.ConfigEntry{
		{Path: "a", Key: "k", Value: "1"},
		{Path: "b", Key: "k", Value: "2"},
	}))

	deleted, err := repo.DeleteByPath(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	entry, err := repo.GetByKey(ctx, "b", "k")
	require.NoError(t, err)
	assert.Equal(t, "2", entry.Value)

	_, err = repo.GetByKey(ctx, "a", "k")
	assert.ErrorIs(t, err, ErrConfigNotFound)
}

func TestSQLite_ConcurrentUpsertKeepsOneRow(t *testing.T) {
	repo := newSQLiteStorages(t).ConfigRepository
	ctx := context.Background()

	const writers = 16

	written := make([]string, 0, writers)
	for i := range writers {
		written = append(written, fmt.Sprint(i))
	}

	var wg sync.WaitGroup
	errs := make(chan error, writers)
	for i := range writers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- repo.Upsert(ctx, []models.ConfigEntry{{Path: "svc", Key: "k", Value: fmt.Sprint(i)}})
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}

	entries, err := repo.GetByPath(ctx, "svc")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "k", entries[0].Key)
	assert.Contains(t, written, entries[0].Value)
}

func TestSQLite_UpdateWritesNothingWhenNoneExist(t *testing.T) {
	repo := newSQLiteStorages(t).ConfigRepository
	ctx := context.Background()

	_, _, err := repo.Update(ctx, []models.ConfigEntry{{Path: "svc", Key: "ghost", Value: "1"}})
	assert.ErrorIs(t, err, ErrConfigNotFound)

	entries, err := repo.GetByPath(ctx, "svc")
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestSQLite_UpdateDoesNotCreate(t *testing.T) {
	repo := newSQLiteStorages(t).ConfigRepository
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, []models.ConfigEntry{{Path: "svc", Key: "a", Value: "1"}}))

	updated, notFound, err := repo.Update(ctx, []models.ConfigEntry{
		{Path: "svc", Key: "a", Value: "2"},
		{Path: "svc", Key: "zz", Value: "3"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, updated)
	assert.Equal(t, []string{"zz"}, notFound)

	_, err = repo.GetByKey(ctx, "svc", "zz")
	assert.ErrorIs(t, err, ErrConfigNotFound)

	entry, err := repo.GetByKey(ctx, "svc", "a")
	require.NoError(t, err)
	assert.Equal(t, "2", entry.Value)
}

func TestSQLite_DeleteByKey(t *testing.T) {
	repo := newSQLiteStorages(t).ConfigRepository
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, []models.ConfigEntry{{Path: "svc", Key: "a", Value: "1"}}))
	require.NoError(t, repo.DeleteByKey(ctx, "svc", "a"))
	assert.ErrorIs(t, repo.DeleteByKey(ctx, "svc", "a"), ErrConfigNotFound)

	_, err := repo.DeleteByPath(ctx, "svc")
	assert.ErrorIs(t, err, ErrConfigNotFound)
}
