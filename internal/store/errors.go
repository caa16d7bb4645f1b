// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods. Match with [errors.Is].
var (
	// ErrClientNotFound is returned when no client has the requested ID.
	ErrClientNotFound = errors.New("client was not found")

	// ErrClientAlreadyExists is returned when an insert collides with an
	// existing ID.
	ErrClientAlreadyExists = errors.New("client already exists")

	// ErrUnsupportedDSN is returned when the DSN names no known database.
	ErrUnsupportedDSN = errors.New("unsupported database DSN")
)

// Low-level database operation errors, wrapped around the driver error.
var (
	ErrBuildingSQLQuery   = errors.New("error building sql query")
	ErrExecutingQuery     = errors.New("error executing sql query")
	ErrExecutingStatement = errors.New("failed to execute statement")
	ErrScanningRow        = errors.New("failed to scan client row")
	ErrScanningRows       = errors.New("failed to scan client rows")
)

// Cache errors.
var (
	ErrCacheUnavailable = errors.New("client list cache is unavailable")
	ErrCacheCorrupted   = errors.New("client list cache holds an unreadable value")
)
