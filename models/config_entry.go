// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ConfigEntry is a single stored configuration record.
//
// The pair (Path, Key) is unique: it forms the composite primary key of the
// "config" table. Value is the raw text representation exactly as it was
// stored; typed coercion happens only on group-wide reads.
type ConfigEntry struct {
	// Path is the hierarchical group the entry belongs to
	// (e.g. "pos-app/local/frontend").
	Path string `json:"path"`

	// Key is the entry's name within its path.
	Key string `json:"key"`

	// Value is the stored text form of the entry's value.
	Value string `json:"value"`
}

// UpdateResult reports the outcome of a batch update within one path.
type UpdateResult struct {
	// Updated lists the keys whose values were overwritten, in request order.
	Updated []string

	// NotFound lists the requested keys that did not exist. No entry is
	// created for them.
	NotFound []string
}
