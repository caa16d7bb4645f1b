// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned when a merged configuration is unusable.
var (
	// ErrInvalidServerConfigs indicates a bad listen address or timeout.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidAdapterConfigs indicates a missing server address or
	// request timeout on the client.
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs indicates an empty DSN or a cache without TTL.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
)
