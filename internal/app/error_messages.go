// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// auth service handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or log entries to describe the outcome of an operation.
// Keeping them in one place ensures consistent wording throughout the API.
package app

const (
	// MsgInvalidJSON is returned when the request body cannot be decoded.
	MsgInvalidJSON = "invalid JSON was passed"

	// MsgInvalidGzip is returned when a gzip-encoded request body is corrupt.
	MsgInvalidGzip = "invalid gzip data"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal error"

	// MsgNoUserIDProvided is returned when a protected handler runs without
	// an authenticated user ID in the request context.
	MsgNoUserIDProvided = "unauthorized"

	// MsgRouteNotFound is returned for unknown paths and for known paths
	// requested with an unsupported method.
	MsgRouteNotFound = "not found"
)
