// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/config-hub/internal/config"
	"github.com/MKhiriev/config-hub/internal/logger"
	"github.com/MKhiriev/config-hub/internal/store"
)

// newSQLiteConfigSvc wires the config service to a fresh SQLite database.
func newSQLiteConfigSvc(t *testing.T) ConfigService {
	t.Helper()

	cfg := config.Storage{DB: config.DB{
		Driver: config.DriverSQLite,
		DSN:    filepath.Join(t.TempDir(), "config.db"),
	}}

	storages, err := store.NewStorages(context.Background(), cfg, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = storages.Close() })

	return NewConfigService(storages.ConfigRepository, logger.Nop())
}

func TestConfigService_SQLite_SaveThenReadAllCoerces(t *testing.T) {
	svc := newSQLiteConfigSvc(t)
	ctx := context.Background()

	saved, err := svc.SaveConfigs(ctx, "app/db", values(t,
		`{"host":"localhost","port":5432,"debug":true,"ratio":1.50,"big":1e5,"neg":-5,"ver":"1.2.3","tags":["a"],"off":"FALSE"}`))
	require.NoError(t, err)
	assert.Equal(t, []string{"host", "port", "debug", "ratio", "big", "neg", "ver", "tags", "off"}, saved)

	configs, err := svc.GetConfigs(ctx, "app/db")
	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"host":  "localhost",
		"port":  int64(5432),
		"debug": true,
		"ratio": 1.5,
		"big":   100000.0,
		"neg":   "-5",
		"ver":   "1.2.3",
		"tags":  `["a"]`,
		"off":   false,
	}, configs)

	entry, err := svc.GetConfig(ctx, "app/db", "debug")
	require.NoError(t, err)
	assert.Equal(t, "True", entry.Value)
}

func TestConfigService_SQLite_ReadAllNotFoundUntilSaved(t *testing.T) {
	svc := newSQLiteConfigSvc(t)
	ctx := context.Background()

	_, err := svc.GetConfigs(ctx, "G")
	require.ErrorIs(t, err, ErrNotFound)
	assert.EqualError(t, err, "No configs found for path: G")

	_, err = svc.SaveConfigs(ctx, "G", values(t, `{"a":"b"}`))
	require.NoError(t, err)

	configs, err := svc.GetConfigs(ctx, "G")
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"a": "b"}, configs)

	_, err = svc.GetConfigs(ctx, "other")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestConfigService_SQLite_DeletePathThenReadAllNotFound(t *testing.T) {
	svc := newSQLiteConfigSvc(t)
	ctx := context.Background()

	_, err := svc.SaveConfigs(ctx, "G", values(t, `{"a":1,"b":2}`))
	require.NoError(t, err)
	_, err = svc.SaveConfigs(ctx, "kept", values(t, `{"a":1}`))
	require.NoError(t, err)

	deleted, err := svc.DeletePath(ctx, "G")
	require.NoError(t, err)
	assert.Equal(t, int64(2), deleted)

	_, err = svc.GetConfigs(ctx, "G")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.DeletePath(ctx, "G")
	assert.ErrorIs(t, err, ErrNotFound)

	configs, err := svc.GetConfigs(ctx, "kept")
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"a": int64(1)}, configs)
}

func TestConfigService_SQLite_UpdateNeverCreates(t *testing.T) {
	svc := newSQLiteConfigSvc(t)
	ctx := context.Background()

	_, err := svc.UpdateConfigs(ctx, "G", values(t, `{"a":1}`))
	require.ErrorIs(t, err, ErrNotFound)
	assert.EqualError(t, err, "No matching configs found in path 'G'")

	_, err = svc.GetConfig(ctx, "G", "a")
	require.ErrorIs(t, err, ErrNotFound)

	_, err = svc.SaveConfigs(ctx, "G", values(t, `{"a":1}`))
	require.NoError(t, err)

	result, err := svc.UpdateConfigs(ctx, "G", values(t, `{"a":2,"x":3}`))
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, result.Updated)
	assert.Equal(t, []string{"x"}, result.NotFound)

	_, err = svc.GetConfig(ctx, "G", "x")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, svc.DeleteConfig(ctx, "G", "a"))
	err = svc.DeleteConfig(ctx, "G", "a")
	assert.EqualError(t, err, "Key 'a' not found in path 'G'")
}
