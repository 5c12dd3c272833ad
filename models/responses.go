// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ConfigCreateResponse is returned after configurations were stored.
type ConfigCreateResponse struct {
	Message   string   `json:"message"`
	Path      string   `json:"path"`
	SavedKeys []string `json:"saved_keys"`
}

// ConfigUpdateResponse is returned after a batch update. NotFoundKeys is
// omitted when every requested key existed.
type ConfigUpdateResponse struct {
	Message      string   `json:"message"`
	UpdatedKeys  []string `json:"updated_keys"`
	NotFoundKeys []string `json:"not_found_keys,omitempty"`
}

// ConfigDeleteResponse is returned after a deletion. DeletedCount is only
// set when a whole path was deleted.
type ConfigDeleteResponse struct {
	Message      string `json:"message"`
	DeletedCount *int64 `json:"deleted_count,omitempty"`
}

// HealthResponse is the body of the health check endpoint.
type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// VersionResponse reports the running application version.
type VersionResponse struct {
	Version string `json:"version"`
}

// ErrorResponse carries a human-readable failure description.
type ErrorResponse struct {
	Detail string `json:"detail"`
}
