// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/bloom-crm/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// ClientService is the server-side business logic for client records.
type ClientService interface {
	// ListClients returns every stored client, oldest first.
	ListClients(ctx context.Context) ([]models.Client, error)

	// GetClient returns one client or store.ErrClientNotFound.
	GetClient(ctx context.Context, id string) (models.Client, error)

	// CreateClient assigns an ID and timestamps to draft and stores it.
	CreateClient(ctx context.Context, draft models.ClientDraft) (models.Client, error)

	// UpdateClient overwrites the editable fields of the client with id.
	UpdateClient(ctx context.Context, id string, draft models.ClientDraft) (models.Client, error)

	// DeleteClient removes the client with id.
	DeleteClient(ctx context.Context, id string) error
}

// AppInfoService reports build metadata and liveness.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string

	// CheckHealth returns nil when the database answers.
	CheckHealth(ctx context.Context) error
}

// IDGenerator issues identifiers for new clients.
type IDGenerator interface {
	Generate() string
}

// Pinger is implemented by backends that can report their liveness.
type Pinger interface {
	HealthCheck(ctx context.Context) error
}
