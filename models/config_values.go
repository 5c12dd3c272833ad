// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrNotJSONObject is returned when a configuration payload is valid JSON
// but not an object.
var ErrNotJSONObject = errors.New("configuration payload must be a JSON object")

// ConfigValue is one member of a configuration payload: the entry name and
// its JSON value as received.
type ConfigValue struct {
	Key string
	Raw json.RawMessage
}

// ConfigValues is a configuration payload ({"name": value, ...}) decoded with
// its member order preserved. A repeated member keeps the position of its
// first occurrence and the value of its last one.
type ConfigValues []ConfigValue

// Keys returns the entry names in payload order.
func (v ConfigValues) Keys() []string {
	keys := make([]string, 0, len(v))
	for _, value := range v {
		keys = append(keys, value.Key)
	}
	return keys
}

// UnmarshalJSON implements [json.Unmarshaler].
func (v *ConfigValues) UnmarshalJSON(b []byte) error {
	dec := json.NewDecoder(bytes.NewReader(b))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return ErrNotJSONObject
	}

	values := make(ConfigValues, 0)
	positions := make(map[string]int)

	for dec.More() {
		keyToken, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyToken.(string)
		if !ok {
			return fmt.Errorf("unexpected object key %v", keyToken)
		}

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return fmt.Errorf("error decoding value of %q: %w", key, err)
		}

		if i, seen := positions[key]; seen {
			values[i].Raw = raw
			continue
		}
		positions[key] = len(values)
		values = append(values, ConfigValue{Key: key, Raw: raw})
	}

	// closing '}'
	if _, err := dec.Token(); err != nil {
		return err
	}

	*v = values
	return nil
}

// MarshalJSON implements [json.Marshaler], writing members in order.
func (v ConfigValues) MarshalJSON() ([]byte, error) {
	buf := new(bytes.Buffer)
	buf.WriteByte('{')
	for i, value := range v {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(value.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')

		raw := value.Raw
		if len(raw) == 0 {
			raw = json.RawMessage("null")
		}
		buf.Write(raw)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
