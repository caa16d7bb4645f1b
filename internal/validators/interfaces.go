// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators holds the input validation rules of bloom-crm.
//
// Validation lives outside the transport and storage layers so the same
// rules run in the terminal client (before anything is sent) and in the
// server (before anything is stored).
package validators

import "context"

// Validator validates an arbitrary value. Optional field names restrict
// validation to that subset of fields.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
