// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Problem is an RFC 7807 problem document, the body of every API error
// response.
type Problem struct {
	Type     string `json:"type,omitempty"`
	Title    string `json:"title,omitempty"`
	Status   int    `json:"status,omitempty"`
	Detail   string `json:"detail,omitempty"`
	Instance string `json:"instance,omitempty"`

	// Errors maps a client field name to its validation message. Only set
	// on 400 responses for invalid client data.
	Errors map[string]string `json:"errors,omitempty"`

	// TraceID echoes the X-Trace-ID of the failed request.
	TraceID string `json:"traceId,omitempty"`
}
