// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/bloom-crm/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// ClientRepository persists client records.
type ClientRepository interface {
	// List returns every client ordered by creation time.
	List(ctx context.Context) ([]models.Client, error)
	// Get returns one client or ErrClientNotFound.
	Get(ctx context.Context, id string) (models.Client, error)
	// Create inserts c as is. A duplicate ID yields ErrClientAlreadyExists.
	Create(ctx context.Context, c models.Client) (models.Client, error)
	// Update overwrites the editable fields and UpdatedAt of the client with
	// c.ID. An unknown ID yields ErrClientNotFound.
	Update(ctx context.Context, c models.Client) (models.Client, error)
	// Delete removes the client. An unknown ID yields ErrClientNotFound.
	Delete(ctx context.Context, id string) error
}

// ClientListCache caches the full client list between writes.
//
// Lists are versioned by a generation that every write bumps. A reader takes
// gen from Get before reading the repository and hands it back to Set, so a
// list read before a write is never served after it.
type ClientListCache interface {
	// Get returns the list cached for the current generation. ok is false on
	// a miss; gen is still the current generation unless err matches
	// ErrCacheUnavailable.
	Get(ctx context.Context) (clients []models.Client, gen int64, ok bool, err error)
	// Set stores clients as the list of generation gen.
	Set(ctx context.Context, gen int64, clients []models.Client) error
	// Invalidate starts a new generation.
	Invalidate(ctx context.Context) error
}

// ErrorClassificator tells retryable driver errors from permanent ones and
// recognises duplicate-key failures for its database.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
	IsUniqueViolation(err error) bool
}
