// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/config-hub/models"
)

const (
	pathHeader = "path"
	keyParam   = "key"
)

// pathFromRequest returns the value of the "path" header. The header must be
// present but may be empty.
func pathFromRequest(r *http.Request) (string, error) {
	values := r.Header.Values(pathHeader)
	if len(values) == 0 {
		return "", ErrMissingPathHeader
	}
	return values[0], nil
}

// keyFromRequest returns the "key" query parameter, which must be present.
func keyFromRequest(r *http.Request) (string, error) {
	query := r.URL.Query()
	if !query.Has(keyParam) {
		return "", ErrMissingKeyParam
	}
	return query.Get(keyParam), nil
}

// valuesFromRequest decodes the request body as a JSON object.
func valuesFromRequest(r *http.Request) (models.ConfigValues, error) {
	var values models.ConfigValues
	if err := json.NewDecoder(r.Body).Decode(&values); err != nil {
		if errors.Is(err, models.ErrNotJSONObject) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalidBody, err)
	}
	return values, nil
}
