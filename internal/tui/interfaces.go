// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"

	"github.com/MKhiriev/bloom-crm/models"
)

// ClientManager is the record cache the UI renders from and writes through.
// *service.RecordManager implements it.
type ClientManager interface {
	Records() []models.Client
	Loading() bool
	LoadAll(ctx context.Context) ([]models.Client, error)
	CreateRecord(ctx context.Context, draft models.ClientDraft) (models.Client, error)
	UpdateRecord(ctx context.Context, id string, draft models.ClientDraft) (models.Client, error)
	DeleteRecord(ctx context.Context, id string) error
}
