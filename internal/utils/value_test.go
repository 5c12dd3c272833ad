// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseValue(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected any
	}{
		{name: "lower true", input: "true", expected: true},
		{name: "capitalised true", input: "True", expected: true},
		{name: "upper false", input: "FALSE", expected: false},
		{name: "integer", input: "42", expected: int64(42)},
		{name: "zero", input: "0", expected: int64(0)},
		{name: "leading zeros", input: "007", expected: int64(7)},
		{name: "float", input: "3.14", expected: 3.14},
		{name: "trailing dot", input: "5.", expected: 5.0},
		{name: "leading dot", input: ".5", expected: 0.5},
		{name: "negative stays string", input: "-5", expected: "-5"},
		{name: "negative float stays string", input: "-1.5", expected: "-1.5"},
		{name: "two dots stay string", input: "1.2.3", expected: "1.2.3"},
		{name: "scientific stays string", input: "1e5", expected: "1e5"},
		{name: "lone dot stays string", input: ".", expected: "."},
		{name: "empty stays string", input: "", expected: ""},
		{name: "spaces stay string", input: " 42", expected: " 42"},
		{name: "non-ASCII digits stay string", input: "٣", expected: "٣"},
		{name: "plain text", input: "hello", expected: "hello"},
		{name: "json object text", input: `{"a":1}`, expected: `{"a":1}`},
		{name: "int64 overflow", input: "99999999999999999999", expected: json.Number("99999999999999999999")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseValue(tt.input))
		})
	}
}

// TestParseValue_IdempotentOnOutput verifies that re-stringifying a coerced
// value and coercing it again yields the same value.
func TestParseValue_IdempotentOnOutput(t *testing.T) {
	inputs := []string{"true", "False", "42", "3.25", "-5", "1.2.3", "text"}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			first := ParseValue(input)
			second := ParseValue(fmt.Sprint(first))
			assert.Equal(t, first, second)
		})
	}
}

func TestParseValue_OverflowRendersAsJSONNumber(t *testing.T) {
	data, err := json.Marshal(map[string]any{"big": ParseValue("123456789012345678901234")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"big": 123456789012345678901234}`, string(data))
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected string
	}{
		{name: "string", raw: `"hello"`, expected: "hello"},
		{name: "escaped string", raw: `"a\"b\n"`, expected: "a\"b\n"},
		{name: "empty string", raw: `""`, expected: ""},
		{name: "integer", raw: `42`, expected: "42"},
		{name: "big integer keeps digits", raw: `123456789012345678901234`, expected: "123456789012345678901234"},
		{name: "negative zero integer", raw: `-0`, expected: "0"},
		{name: "negative", raw: `-5`, expected: "-5"},
		{name: "float trailing zero dropped", raw: `1.50`, expected: "1.5"},
		{name: "float", raw: `3.10`, expected: "3.1"},
		{name: "integral float", raw: `2.0`, expected: "2.0"},
		{name: "exponent", raw: `1e5`, expected: "100000.0"},
		{name: "upper exponent", raw: `2.5E2`, expected: "250.0"},
		{name: "negative float", raw: `-1.25`, expected: "-1.25"},
		{name: "small float", raw: `0.0001`, expected: "0.0001"},
		{name: "tiny float", raw: `0.00001`, expected: "1e-05"},
		{name: "large float", raw: `1e16`, expected: "1e+16"},
		{name: "below large threshold", raw: `1e15`, expected: "1000000000000000.0"},
		{name: "float zero", raw: `0.0`, expected: "0.0"},
		{name: "overflow", raw: `1e400`, expected: "inf"},
		{name: "true", raw: `true`, expected: "True"},
		{name: "false", raw: `false`, expected: "False"},
		{name: "null", raw: `null`, expected: "null"},
		{name: "object is compacted", raw: `{ "a" : [1, 2] }`, expected: `{"a":[1,2]}`},
		{name: "array", raw: `[ "x", 1 ]`, expected: `["x",1]`},
		{name: "surrounding whitespace", raw: "  7 ", expected: "7"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FormatValue(json.RawMessage(tt.raw))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestFormatValue_Errors(t *testing.T) {
	_, err := FormatValue(nil)
	assert.ErrorIs(t, err, ErrEmptyValue)

	_, err = FormatValue(json.RawMessage(`tru`))
	assert.Error(t, err)

	_, err = FormatValue(json.RawMessage(`{"a":`))
	assert.Error(t, err)
}

// TestFormatThenParse checks the value a client reads back from a group
// after writing a JSON value.
func TestFormatThenParse(t *testing.T) {
	tests := []struct {
		raw      string
		expected any
	}{
		{raw: `true`, expected: true},
		{raw: `false`, expected: false},
		{raw: `12`, expected: int64(12)},
		{raw: `2.5`, expected: 2.5},
		{raw: `1.50`, expected: 1.5},
		{raw: `1e5`, expected: 100000.0},
		{raw: `3E0`, expected: 3.0},
		{raw: `"b"`, expected: "b"},
		{raw: `"42"`, expected: int64(42)},
		{raw: `-3`, expected: "-3"},
		{raw: `-1.5`, expected: "-1.5"},
		{raw: `null`, expected: "null"},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			stored, err := FormatValue(json.RawMessage(tt.raw))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, ParseValue(stored))
		})
	}
}
