// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the CRM's HTTP transport and stops it gracefully on
// SIGTERM, SIGINT or SIGQUIT.
package server
