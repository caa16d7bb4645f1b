// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/bloom-crm/internal/logger"
	"github.com/MKhiriev/bloom-crm/internal/mock"
	"github.com/MKhiriev/bloom-crm/internal/store"
	"github.com/MKhiriev/bloom-crm/models"
)

// stallingRepo is an in-memory repository whose first List takes its
// snapshot and then waits until release is closed.
type stallingRepo struct {
	mu      sync.Mutex
	clients []models.Client
	stall   bool
	listed  chan struct{}
	release chan struct{}
}

func (r *stallingRepo) List(context.Context) ([]models.Client, error) {
	r.mu.Lock()
	snapshot := append([]models.Client{}, r.clients...)
	stall := r.stall
	r.stall = false
	r.mu.Unlock()

	if stall {
		close(r.listed)
		<-r.release
	}
	return snapshot, nil
}

func (r *stallingRepo) Get(context.Context, string) (models.Client, error) {
	return models.Client{}, store.ErrClientNotFound
}

func (r *stallingRepo) Create(_ context.Context, c models.Client) (models.Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.clients = append(r.clients, c)
	return c, nil
}

func (r *stallingRepo) Update(_ context.Context, c models.Client) (models.Client, error) {
	return c, nil
}

func (r *stallingRepo) Delete(context.Context, string) error {
	return nil
}

// generationCache keeps one list per generation, like the redis cache.
type generationCache struct {
	mu    sync.Mutex
	gen   int64
	lists map[int64][]models.Client
}

func (c *generationCache) Get(context.Context) ([]models.Client, int64, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	list, ok := c.lists[c.gen]
	return list, c.gen, ok, nil
}

func (c *generationCache) Set(_ context.Context, gen int64, clients []models.Client) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lists[gen] = clients
	return nil
}

func (c *generationCache) Invalidate(context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gen++
	return nil
}

// ── Cache consistency ───────────────────────────────────────────────────────

func TestClientService_ListClients_WriteDuringFillIsNotHidden(t *testing.T) {
	ctrl := gomock.NewController(t)
	ids := mock.NewMockIDGenerator(ctrl)
	ids.EXPECT().Generate().Return("c-new")

	repo := &stallingRepo{stall: true, listed: make(chan struct{}), release: make(chan struct{})}
	cache := &generationCache{lists: map[int64][]models.Client{}}
	svc := NewClientService(repo, cache, ids, logger.Nop()).(*clientService)
	svc.now = func() time.Time { return fixedNow }
	ctx := context.Background()

	type result struct {
		clients []models.Client
		err     error
	}
	slow := make(chan result, 1)
	go func() {
		clients, err := svc.ListClients(ctx)
		slow <- result{clients, err}
	}()

	<-repo.listed
	_, err := svc.CreateClient(ctx, models.ClientDraft{FirstName: "Ana", LastName: "Li", Status: models.StatusProspect})
	require.NoError(t, err)
	close(repo.release)

	stale := <-slow
	require.NoError(t, stale.err)
	assert.Empty(t, stale.clients)

	fresh, err := svc.ListClients(ctx)
	require.NoError(t, err)
	require.Len(t, fresh, 1)
	assert.Equal(t, "c-new", fresh[0].ID)
}
