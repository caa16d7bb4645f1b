// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport-layer contract between the CRM
// client and the bloom-crm server.
//
// [EntityStore] decouples the record manager from the protocol. The package
// ships an HTTP/REST implementation ([NewHTTPEntityStore]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] regardless of transport
// (e.g. [ErrNotFound] for 404, [ErrBadRequest] for 400).
package adapter

import (
	"context"

	"github.com/MKhiriev/bloom-crm/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/entity_store_mock.go -package=mock

// EntityStore is the remote persistence of client records.
type EntityStore interface {
	// List returns every client wrapped in the list envelope. An envelope
	// with Success=false is reported as an error.
	List(ctx context.Context) (models.ListClientsResponse, error)

	// Create stores draft and returns the client with its server-assigned
	// ID and timestamps.
	Create(ctx context.Context, draft models.ClientDraft) (models.Client, error)

	// Update overwrites the client with id. An unknown id yields
	// [ErrNotFound].
	Update(ctx context.Context, id string, draft models.ClientDraft) (models.Client, error)

	// Delete removes the client with id. An unknown id yields [ErrNotFound].
	Delete(ctx context.Context, id string) error
}
