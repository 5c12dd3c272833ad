// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/config-hub/internal/config"
	"github.com/MKhiriev/config-hub/internal/logger"
	"github.com/MKhiriev/config-hub/internal/utils"
	"github.com/MKhiriev/config-hub/models"
)

const (
	pathHeader = "path"
	keyParam   = "key"
)

type httpConfigClient struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPConfigClient constructs a resty based [ConfigClient] for the server
// at cfg.HTTPAddress. A bare host:port is treated as http.
func NewHTTPConfigClient(cfg config.ClientConfig, logger *logger.Logger) (ConfigClient, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout).
		SetHeader("Accept", "application/json")

	return &httpConfigClient{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (c *httpConfigClient) SaveConfigs(ctx context.Context, path string, values models.ConfigValues) (models.ConfigCreateResponse, error) {
	var result models.ConfigCreateResponse

	resp, err := c.pathRequest(ctx, path).
		SetHeader("Content-Type", "application/json").
		SetBody(values).
		SetResult(&result).
		Post("/config/")
	if err != nil {
		return result, fmt.Errorf("save configs request: %w", err)
	}

	return result, mapHTTPError(resp)
}

// GetConfigs keeps integers exact by decoding numbers as [json.Number].
func (c *httpConfigClient) GetConfigs(ctx context.Context, path string) (map[string]any, error) {
	resp, err := c.pathRequest(ctx, path).Get("/config/")
	if err != nil {
		return nil, fmt.Errorf("get configs request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	dec := json.NewDecoder(bytes.NewReader(resp.Body()))
	dec.UseNumber()

	var configs map[string]any
	if err = dec.Decode(&configs); err != nil {
		return nil, fmt.Errorf("decode configs response: %w", err)
	}

	return configs, nil
}

func (c *httpConfigClient) GetConfig(ctx context.Context, path, key string) (models.ConfigEntry, error) {
	var entry models.ConfigEntry

	resp, err := c.pathRequest(ctx, path).
		SetQueryParam(keyParam, key).
		SetResult(&entry).
		Get("/config/key/")
	if err != nil {
		return entry, fmt.Errorf("get config request: %w", err)
	}

	return entry, mapHTTPError(resp)
}

func (c *httpConfigClient) UpdateConfigs(ctx context.Context, path string, values models.ConfigValues) (models.ConfigUpdateResponse, error) {
	var result models.ConfigUpdateResponse

	resp, err := c.pathRequest(ctx, path).
		SetHeader("Content-Type", "application/json").
		SetBody(values).
		SetResult(&result).
		Put("/config/")
	if err != nil {
		return result, fmt.Errorf("update configs request: %w", err)
	}

	return result, mapHTTPError(resp)
}

func (c *httpConfigClient) DeletePath(ctx context.Context, path string) (models.ConfigDeleteResponse, error) {
	var result models.ConfigDeleteResponse

	resp, err := c.pathRequest(ctx, path).
		SetResult(&result).
		Delete("/config/path/")
	if err != nil {
		return result, fmt.Errorf("delete path request: %w", err)
	}

	return result, mapHTTPError(resp)
}

func (c *httpConfigClient) DeleteConfig(ctx context.Context, path, key string) (models.ConfigDeleteResponse, error) {
	var result models.ConfigDeleteResponse

	resp, err := c.pathRequest(ctx, path).
		SetQueryParam(keyParam, key).
		SetResult(&result).
		Delete("/config/key/")
	if err != nil {
		return result, fmt.Errorf("delete config request: %w", err)
	}

	return result, mapHTTPError(resp)
}

func (c *httpConfigClient) Health(ctx context.Context) (models.HealthResponse, error) {
	var result models.HealthResponse

	resp, err := c.client.R().
		SetContext(ctx).
		SetResult(&result).
		Get("/health")
	if err != nil {
		return result, fmt.Errorf("health request: %w", err)
	}

	return result, mapHTTPError(resp)
}

func (c *httpConfigClient) Version(ctx context.Context) (models.VersionResponse, error) {
	var result models.VersionResponse

	resp, err := c.client.R().
		SetContext(ctx).
		SetResult(&result).
		Get("/version")
	if err != nil {
		return result, fmt.Errorf("version request: %w", err)
	}

	return result, mapHTTPError(resp)
}

func (c *httpConfigClient) pathRequest(ctx context.Context, path string) *resty.Request {
	c.logger.Debug().Str("path", path).Msg("sending config request")
	return c.client.R().
		SetContext(ctx).
		SetHeader(pathHeader, path)
}
