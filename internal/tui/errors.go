// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/bloom-crm/internal/adapter"
	"github.com/MKhiriev/bloom-crm/internal/app"
	"github.com/MKhiriev/bloom-crm/internal/service"
)

// noticeForError picks the notification text for a failed operation.
// fallback names the operation ("Failed to save client", ...).
func noticeForError(err error, fallback string) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, service.ErrNotFound):
		return app.MsgNotFound
	case isServerUnavailable(err):
		return fallback + ". " + app.MsgServerUnavailable
	default:
		return fallback
	}
}

func isServerUnavailable(err error) bool {
	if errors.Is(err, adapter.ErrRequestFailed) || errors.Is(err, adapter.ErrServiceUnavailable) {
		return true
	}

	s := strings.ToLower(err.Error())
	return strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded")
}
