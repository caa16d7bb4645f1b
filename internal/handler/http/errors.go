// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Request-level errors raised by the transport before the service layer is
// reached. Match with [errors.Is].
var (
	// ErrInvalidJSON is returned when a request body is not a valid client
	// draft document.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrIntegrityCheckFailed is returned when the HashSHA256 header is
	// missing or does not match the request body.
	ErrIntegrityCheckFailed = errors.New("integrity check failed")

	// ErrReadingBody is returned when the request body cannot be read.
	ErrReadingBody = errors.New("failed to read request body")

	// ErrRouteNotFound is returned for unknown paths and for known paths
	// requested with an unsupported method.
	ErrRouteNotFound = errors.New("route was not found")
)

// ErrDatabaseUnavailable is reported by the health route when the database
// does not answer a ping.
var ErrDatabaseUnavailable = errors.New("database is unavailable")
