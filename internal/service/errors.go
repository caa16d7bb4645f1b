// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
	ErrNoPinger              = errors.New("no database to check")
)

// Errors reported by RecordManager. Each wraps the underlying transport
// error, so errors.Is works for both.
var (
	// ErrLoadFailed means the client list could not be fetched. The
	// manager's records are left as they were.
	ErrLoadFailed = errors.New("failed to load clients")

	// ErrSaveFailed means a create or update was rejected or never reached
	// the server. Nothing changed locally.
	ErrSaveFailed = errors.New("failed to save client")

	// ErrDeleteFailed means a delete was rejected or never reached the
	// server. The record stays in the local list.
	ErrDeleteFailed = errors.New("failed to delete client")

	// ErrNotFound means the server does not know the client ID.
	ErrNotFound = errors.New("client not found")
)
