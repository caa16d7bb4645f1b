// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client wires the terminal client together: configuration, the
// HTTP entity store, the record manager and the terminal UI.
package client
