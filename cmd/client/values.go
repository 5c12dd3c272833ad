// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/MKhiriev/config-hub/models"
)

// parsePairs turns "name=value" arguments into a payload. Values are sent as
// JSON strings unless raw is set, in which case each value must be valid
// JSON. A repeated name keeps its first position and its last value.
func parsePairs(args []string, raw bool) (models.ConfigValues, error) {
	values := make(models.ConfigValues, 0, len(args))
	index := make(map[string]int, len(args))

	for _, arg := range args {
		name, value, ok := strings.Cut(arg, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid argument %q: expected name=value", arg)
		}

		var encoded json.RawMessage
		if raw {
			if !json.Valid([]byte(value)) {
				return nil, fmt.Errorf("value of %q is not valid JSON: %s", name, value)
			}
			encoded = json.RawMessage(value)
		} else {
			b, err := json.Marshal(value)
			if err != nil {
				return nil, fmt.Errorf("encoding value of %q: %w", name, err)
			}
			encoded = b
		}

		if i, seen := index[name]; seen {
			values[i].Raw = encoded
			continue
		}
		index[name] = len(values)
		values = append(values, models.ConfigValue{Key: name, Raw: encoded})
	}

	return values, nil
}
