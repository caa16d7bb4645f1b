// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/MKhiriev/bloom-crm/internal/adapter"
	"github.com/MKhiriev/bloom-crm/internal/logger"
	"github.com/MKhiriev/bloom-crm/internal/validators"
	"github.com/MKhiriev/bloom-crm/models"
)

// RecordManager mediates between the presentation layer and the remote
// EntityStore. It owns the local copy of the client list; callers read it
// through Records and Loading and change it only through the four
// operations.
//
// Every successful mutation is followed by a full LoadAll. The manager never
// patches its list locally, so a failed mutation leaves the list exactly as
// it was.
//
// Operations are neither queued nor deduplicated. Overlapping loads are
// allowed; the last one to finish wins.
type RecordManager struct {
	store     adapter.EntityStore
	validator validators.Validator

	mu       sync.RWMutex
	records  []models.Client
	inFlight int
}

// NewRecordManager returns a manager with an empty list.
func NewRecordManager(store adapter.EntityStore, validator validators.Validator) *RecordManager {
	return &RecordManager{
		store:     store,
		validator: validator,
		records:   []models.Client{},
	}
}

// Records returns a copy of the last successfully loaded list.
func (m *RecordManager) Records() []models.Client {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return slices.Clone(m.records)
}

// Loading reports whether a LoadAll is in flight.
func (m *RecordManager) Loading() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.inFlight > 0
}

// Record returns the cached client with id.
func (m *RecordManager) Record(id string) (models.Client, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	i := slices.IndexFunc(m.records, func(c models.Client) bool { return c.ID == id })
	if i < 0 {
		return models.Client{}, false
	}
	return m.records[i], true
}

// LoadAll fetches the full list and replaces the local copy. On failure the
// local copy is kept and the error matches ErrLoadFailed.
func (m *RecordManager) LoadAll(ctx context.Context) ([]models.Client, error) {
	log := logger.FromContext(ctx)

	m.mu.Lock()
	m.inFlight++
	m.mu.Unlock()
	defer func() {
		m.mu.Lock()
		m.inFlight--
		m.mu.Unlock()
	}()

	resp, err := m.store.List(ctx)
	if err == nil && !resp.Success {
		err = adapter.ErrUnsuccessfulResponse
	}
	if err != nil {
		log.Err(err).Str("func", "RecordManager.LoadAll").Msg("failed to load clients")
		return nil, fmt.Errorf("%w: %w", ErrLoadFailed, err)
	}

	records := resp.Data
	if records == nil {
		records = []models.Client{}
	}

	m.mu.Lock()
	m.records = records
	m.mu.Unlock()

	log.Debug().Str("func", "RecordManager.LoadAll").Int("clients", len(records)).Msg("clients loaded")
	return slices.Clone(records), nil
}

// CreateRecord validates draft, sends it to the store and reloads the list.
//
// A draft that fails validation never reaches the store; the error is a
// *validators.ValidationError. A store failure matches ErrSaveFailed. If the
// create succeeds but the reload fails, the created client is returned
// together with an error matching ErrLoadFailed.
func (m *RecordManager) CreateRecord(ctx context.Context, draft models.ClientDraft) (models.Client, error) {
	log := logger.FromContext(ctx)

	draft = draft.Normalize()
	if err := m.validator.Validate(ctx, draft); err != nil {
		log.Debug().Err(err).Str("func", "RecordManager.CreateRecord").Msg("draft rejected")
		return models.Client{}, err
	}

	created, err := m.store.Create(ctx, draft)
	if err != nil {
		log.Err(err).Str("func", "RecordManager.CreateRecord").Msg("failed to save client")
		return models.Client{}, fmt.Errorf("%w: %w", ErrSaveFailed, err)
	}
	log.Info().Str("func", "RecordManager.CreateRecord").Str("id", created.ID).Msg("client added")

	if _, err = m.LoadAll(ctx); err != nil {
		return created, err
	}
	return created, nil
}

// UpdateRecord is CreateRecord for an existing client. An ID the store does
// not know yields an error matching ErrNotFound; any other store failure
// matches ErrSaveFailed.
func (m *RecordManager) UpdateRecord(ctx context.Context, id string, draft models.ClientDraft) (models.Client, error) {
	log := logger.FromContext(ctx).With().Str("id", id).Logger()

	draft = draft.Normalize()
	if err := m.validator.Validate(ctx, draft.Apply(models.Client{ID: id})); err != nil {
		log.Debug().Err(err).Str("func", "RecordManager.UpdateRecord").Msg("draft rejected")
		return models.Client{}, err
	}

	updated, err := m.store.Update(ctx, id, draft)
	if err != nil {
		log.Err(err).Str("func", "RecordManager.UpdateRecord").Msg("failed to save client")
		if errors.Is(err, adapter.ErrNotFound) {
			return models.Client{}, fmt.Errorf("%w: %w", ErrNotFound, err)
		}
		return models.Client{}, fmt.Errorf("%w: %w", ErrSaveFailed, err)
	}
	log.Info().Str("func", "RecordManager.UpdateRecord").Msg("client updated")

	if _, err = m.LoadAll(ctx); err != nil {
		return updated, err
	}
	return updated, nil
}

// DeleteRecord removes the client and reloads the list. A store failure
// matches ErrDeleteFailed; an unknown ID matches ErrNotFound as well, so
// deleting twice is safe.
func (m *RecordManager) DeleteRecord(ctx context.Context, id string) error {
	log := logger.FromContext(ctx).With().Str("id", id).Logger()

	if id == "" {
		return fmt.Errorf("%w: %w", ErrDeleteFailed, ErrNotFound)
	}

	if err := m.store.Delete(ctx, id); err != nil {
		log.Err(err).Str("func", "RecordManager.DeleteRecord").Msg("failed to delete client")
		if errors.Is(err, adapter.ErrNotFound) {
			return fmt.Errorf("%w: %w: %w", ErrDeleteFailed, ErrNotFound, err)
		}
		return fmt.Errorf("%w: %w", ErrDeleteFailed, err)
	}
	log.Info().Str("func", "RecordManager.DeleteRecord").Msg("client deleted")

	_, err := m.LoadAll(ctx)
	return err
}
