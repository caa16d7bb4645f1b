// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/bloom-crm/internal/logger"
	"github.com/MKhiriev/bloom-crm/internal/store"
	"github.com/MKhiriev/bloom-crm/models"
)

type clientService struct {
	repository store.ClientRepository
	cache      store.ClientListCache
	ids        IDGenerator
	now        func() time.Time

	logger *logger.Logger
}

// NewClientService returns the core ClientService. cache may be nil.
func NewClientService(repository store.ClientRepository, cache store.ClientListCache, ids IDGenerator, logger *logger.Logger) ClientService {
	return &clientService{
		repository: repository,
		cache:      cache,
		ids:        ids,
		now:        func() time.Time { return time.Now().UTC().Truncate(time.Microsecond) },
		logger:     logger,
	}
}

func (s *clientService) ListClients(ctx context.Context) ([]models.Client, error) {
	log := logger.FromContext(ctx)

	// the generation must be read before the repository: a write that lands
	// in between bumps it and the fill below goes to a dead key
	fill := false
	var gen int64
	if s.cache != nil {
		clients, g, ok, err := s.cache.Get(ctx)
		if err != nil {
			log.Warn().Err(err).Str("func", "clientService.ListClients").Msg("client list cache read failed")
		}
		if ok {
			return clients, nil
		}
		gen, fill = g, !errors.Is(err, store.ErrCacheUnavailable)
	}

	clients, err := s.repository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}

	if fill {
		if err = s.cache.Set(ctx, gen, clients); err != nil {
			log.Warn().Err(err).Str("func", "clientService.ListClients").Msg("client list cache write failed")
		}
	}

	return clients, nil
}

func (s *clientService) GetClient(ctx context.Context, id string) (models.Client, error) {
	return s.repository.Get(ctx, id)
}

func (s *clientService) CreateClient(ctx context.Context, draft models.ClientDraft) (models.Client, error) {
	now := s.now()
	c := draft.Normalize().Apply(models.Client{
		ID:        s.ids.Generate(),
		CreatedAt: now,
		UpdatedAt: now,
	})

	created, err := s.repository.Create(ctx, c)
	if err != nil {
		return models.Client{}, err
	}
	s.invalidate(ctx, "clientService.CreateClient")

	logger.FromContext(ctx).Info().Str("id", created.ID).Msg("client created")
	return created, nil
}

func (s *clientService) UpdateClient(ctx context.Context, id string, draft models.ClientDraft) (models.Client, error) {
	c := draft.Normalize().Apply(models.Client{
		ID:        id,
		UpdatedAt: s.now(),
	})

	updated, err := s.repository.Update(ctx, c)
	if err != nil {
		return models.Client{}, err
	}
	s.invalidate(ctx, "clientService.UpdateClient")

	logger.FromContext(ctx).Info().Str("id", id).Msg("client updated")
	return updated, nil
}

func (s *clientService) DeleteClient(ctx context.Context, id string) error {
	if err := s.repository.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx, "clientService.DeleteClient")

	logger.FromContext(ctx).Info().Str("id", id).Msg("client deleted")
	return nil
}

// invalidate drops the cached list after a write. A failure only means the
// list may be served stale until the TTL runs out.
func (s *clientService) invalidate(ctx context.Context, fn string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("func", fn).Msg("client list cache invalidation failed")
	}
}
