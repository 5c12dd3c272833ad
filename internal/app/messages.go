// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// config-hub server handlers and the confctl client.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies to describe the outcome of an operation.
package app

const (
	// MsgConfigsStored is returned by a successful POST /config/.
	MsgConfigsStored = "Configs stored successfully"

	// MsgConfigsUpdated is returned by a PUT /config/ that updated at least
	// one entry.
	MsgConfigsUpdated = "Config(s) updated successfully"

	// MsgPathDeleted is returned by a successful DELETE /config/path/.
	MsgPathDeleted = "All configs deleted successfully"

	// MsgKeyDeletedFormat is formatted with the key and the path.
	MsgKeyDeletedFormat = "Config '%s' deleted successfully from path '%s'"

	// MsgInternalServerError is the only detail a 500 response carries.
	MsgInternalServerError = "Internal Server Error"

	// MsgNotFound answers requests for unknown routes.
	MsgNotFound = "Not Found"

	// MsgMethodNotAllowed answers a known route called with a method it does
	// not serve.
	MsgMethodNotAllowed = "Method Not Allowed"

	// StatusHealthy and MsgHealthy form the /health response.
	StatusHealthy = "healthy"
	MsgHealthy    = "ServerHub API is running"
)
