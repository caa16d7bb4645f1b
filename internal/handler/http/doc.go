// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the REST transport of the CRM server.
//
// It wires the chi router, the client and service routes, and the
// middleware chain (trace IDs, access logging, gzip, request timeouts and
// HashSHA256 integrity checks) in front of the service layer. Errors leave
// the package as application/problem+json documents.
package http
