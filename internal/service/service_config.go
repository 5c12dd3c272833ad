// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/config-hub/internal/logger"
	"github.com/MKhiriev/config-hub/internal/store"
	"github.com/MKhiriev/config-hub/internal/utils"
	"github.com/MKhiriev/config-hub/models"
)

type configService struct {
	configRepository store.ConfigRepository

	logger *logger.Logger
}

func NewConfigService(configRepository store.ConfigRepository, logger *logger.Logger) ConfigService {
	return &configService{
		configRepository: configRepository,
		logger:           logger,
	}
}

func (s *configService) SaveConfigs(ctx context.Context, path string, values models.ConfigValues) ([]string, error) {
	entries, err := toEntries(path, values)
	if err != nil {
		return nil, err
	}

	if err = s.configRepository.Upsert(ctx, entries); err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Debug().
		Str("path", path).
		Int("count", len(entries)).
		Msg("configs saved")

	return values.Keys(), nil
}

func (s *configService) GetConfigs(ctx context.Context, path string) (map[string]any, error) {
	entries, err := s.configRepository.GetByPath(ctx, path)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, pathNotFound(path)
	}

	configs := make(map[string]any, len(entries))
	for _, entry := range entries {
		configs[entry.Key] = utils.ParseValue(entry.Value)
	}

	return configs, nil
}

func (s *configService) GetConfig(ctx context.Context, path, key string) (models.ConfigEntry, error) {
	entry, err := s.configRepository.GetByKey(ctx, path, key)
	if errors.Is(err, store.ErrConfigNotFound) {
		return models.ConfigEntry{}, keyNotFound(path, key)
	}
	if err != nil {
		return models.ConfigEntry{}, err
	}

	return entry, nil
}

func (s *configService) UpdateConfigs(ctx context.Context, path string, values models.ConfigValues) (models.UpdateResult, error) {
	entries, err := toEntries(path, values)
	if err != nil {
		return models.UpdateResult{}, err
	}
	if len(entries) == 0 {
		return models.UpdateResult{}, noMatchingConfigs(path)
	}

	updated, notFound, err := s.configRepository.Update(ctx, entries)
	if errors.Is(err, store.ErrConfigNotFound) {
		return models.UpdateResult{}, noMatchingConfigs(path)
	}
	if err != nil {
		return models.UpdateResult{}, err
	}

	return models.UpdateResult{Updated: updated, NotFound: notFound}, nil
}

func (s *configService) DeletePath(ctx context.Context, path string) (int64, error) {
	deleted, err := s.configRepository.DeleteByPath(ctx, path)
	if errors.Is(err, store.ErrConfigNotFound) {
		return 0, pathNotFound(path)
	}
	if err != nil {
		return 0, err
	}

	logger.FromContext(ctx).Debug().
		Str("path", path).
		Int64("deleted", deleted).
		Msg("path deleted")

	return deleted, nil
}

func (s *configService) DeleteConfig(ctx context.Context, path, key string) error {
	err := s.configRepository.DeleteByKey(ctx, path, key)
	if errors.Is(err, store.ErrConfigNotFound) {
		return keyNotFound(path, key)
	}

	return err
}

// toEntries stringifies every payload value for storage under path.
func toEntries(path string, values models.ConfigValues) ([]models.ConfigEntry, error) {
	entries := make([]models.ConfigEntry, 0, len(values))
	for _, v := range values {
		text, err := utils.FormatValue(v.Raw)
		if err != nil {
			return nil, fmt.Errorf("invalid value for '%s': %w", v.Key, err)
		}
		entries = append(entries, models.ConfigEntry{Path: path, Key: v.Key, Value: text})
	}
	return entries, nil
}
