// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils holds small helpers shared by the server and the client:
// typed context keys, HMAC request signing, JSON response writing, the
// resty client wrapper and identifier generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys so that keys cannot collide
// with string keys set by other packages.
type contextKey string

func (c contextKey) String() string {
	return string(c)
}

// TraceIDHeader carries the request trace identifier between client and
// server.
const TraceIDHeader = "X-Trace-ID"

// TraceIDCtxKey stores the request trace identifier in a context.
var TraceIDCtxKey = contextKey("traceID")

// WithTraceID returns a copy of ctx carrying traceID.
func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, TraceIDCtxKey, traceID)
}

// GetTraceIDFromContext returns the trace identifier stored in ctx. ok is
// false when none is stored or the stored value is not a non-empty string.
func GetTraceIDFromContext(ctx context.Context) (string, bool) {
	traceID, ok := ctx.Value(TraceIDCtxKey).(string)
	return traceID, ok && traceID != ""
}
