// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config loads, merges and validates bloom-crm configuration.
//
// Sources, from lowest to highest precedence:
//  1. Built-in defaults
//  2. A .env file in the working directory (never overrides real variables)
//  3. Environment variables
//  4. Command-line flags
//  5. A JSON or YAML config file named by CONFIG / -c
//
// [GetStructuredConfig] serves the server binary, [GetClientConfig] the
// terminal client.
package config
