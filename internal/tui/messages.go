// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/MKhiriev/bloom-crm/models"

type recordsLoadedMsg struct {
	clients []models.Client
	err     error
}

type recordSavedMsg struct {
	client  models.Client
	created bool
	err     error
}

type recordDeletedMsg struct {
	err error
}

// clearNoticeMsg clears the notification with the same seq. A newer
// notification has a higher seq and survives older timers.
type clearNoticeMsg struct {
	seq int
}
