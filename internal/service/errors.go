// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is matched by every [*NotFoundError].
	ErrNotFound = errors.New("not found")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)

// NotFoundError reports a lookup that matched no entry. Detail is the
// message shown to API clients.
type NotFoundError struct {
	Detail string
}

func (e *NotFoundError) Error() string {
	return e.Detail
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

func pathNotFound(path string) error {
	return &NotFoundError{Detail: fmt.Sprintf("No configs found for path: %s", path)}
}

func keyNotFound(path, key string) error {
	return &NotFoundError{Detail: fmt.Sprintf("Key '%s' not found in path '%s'", key, path)}
}

func noMatchingConfigs(path string) error {
	return &NotFoundError{Detail: fmt.Sprintf("No matching configs found in path '%s'", path)}
}
