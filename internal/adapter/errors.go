// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

// Status errors, one per HTTP status the server uses.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
	ErrServiceUnavailable  = errors.New("service unavailable")
	ErrUnexpectedStatus    = errors.New("unexpected response status")
)

var (
	// ErrUnsuccessfulResponse is returned for a list envelope with
	// success=false.
	ErrUnsuccessfulResponse = errors.New("server reported an unsuccessful response")

	ErrInvalidAddress  = errors.New("invalid server address")
	ErrRequestFailed   = errors.New("request failed")
	ErrDecodeResponse  = errors.New("cannot decode server response")
	ErrEmptyIdentifier = errors.New("empty client id")
)
