// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"
)

// ErrEmptyValue is returned by [FormatValue] when no JSON value is given.
var ErrEmptyValue = errors.New("empty JSON value")

// ParseValue converts a stored text value into a typed scalar. The rules are
// applied in order:
//
//  1. "true" / "false" in any letter case become a bool;
//  2. a non-empty run of ASCII digits becomes an int64 (a [json.Number] when
//     it does not fit, so it is still rendered as a JSON number);
//  3. digits with exactly one '.' somewhere in them become a float64;
//  4. anything else is returned unchanged as a string.
//
// A leading sign or an exponent is not recognised: "-5" and "1e3" stay strings.
func ParseValue(value string) any {
	switch strings.ToLower(value) {
	case "true":
		return true
	case "false":
		return false
	}

	if isDigits(value) {
		n, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return json.Number(value)
		}
		return n
	}

	if strings.Count(value, ".") == 1 && isDigits(strings.Replace(value, ".", "", 1)) {
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return value
		}
		return f
	}

	return value
}

// FormatValue returns the text form under which a JSON value is stored.
//
// Strings are stored without quotes and objects or arrays as compact JSON.
// Booleans are stored as True/False and null as null. Integers keep their
// digits; numbers written with a fraction or an exponent are stored in their
// shortest float form with a trailing ".0" when integral (1e5 becomes
// "100000.0", 1.50 becomes "1.5"), so a plain positive float reads back as a
// number.
func FormatValue(raw json.RawMessage) (string, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return "", ErrEmptyValue
	}

	switch trimmed[0] {
	case '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return "", fmt.Errorf("error decoding JSON string: %w", err)
		}
		return s, nil
	case '{', '[':
		buf := new(bytes.Buffer)
		if err := json.Compact(buf, trimmed); err != nil {
			return "", fmt.Errorf("error compacting JSON value: %w", err)
		}
		return buf.String(), nil
	}

	if !json.Valid(trimmed) {
		return "", fmt.Errorf("invalid JSON value: %s", trimmed)
	}

	switch literal := string(trimmed); literal {
	case "true":
		return "True", nil
	case "false":
		return "False", nil
	case "null":
		return literal, nil
	default:
		return formatNumber(literal)
	}
}

// formatNumber renders a valid JSON number literal.
func formatNumber(literal string) (string, error) {
	if !strings.ContainsAny(literal, ".eE") {
		n, ok := new(big.Int).SetString(literal, 10)
		if !ok {
			return "", fmt.Errorf("invalid JSON integer: %s", literal)
		}
		return n.String(), nil
	}

	f, err := strconv.ParseFloat(literal, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return "", fmt.Errorf("invalid JSON number: %w", err)
	}
	return formatFloat(f), nil
}

// formatFloat writes f in fixed notation for 1e-4 <= |f| < 1e16 and in
// exponent notation otherwise ("1e+16", "1e-05").
func formatFloat(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}

	abs := math.Abs(f)
	if abs >= 1e16 || (abs != 0 && abs < 1e-4) {
		return strconv.FormatFloat(f, 'e', -1, 64)
	}

	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
