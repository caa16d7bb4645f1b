// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
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

var fixedNow = time.Date(2025, time.March, 1, 9, 30, 0, 0, time.UTC)

// newTestClientSvc is a helper that builds the core service over mocks.
func newTestClientSvc(t *testing.T, ctrl *gomock.Controller, withCache bool) (
	*clientService,
	*mock.MockClientRepository,
	*mock.MockClientListCache,
	*mock.MockIDGenerator,
) {
	t.Helper()
	repo := mock.NewMockClientRepository(ctrl)
	ids := mock.NewMockIDGenerator(ctrl)

	var (
		cache     *mock.MockClientListCache
		cacheIntf store.ClientListCache
	)
	if withCache {
		cache = mock.NewMockClientListCache(ctrl)
		cacheIntf = cache
	}

	svc := NewClientService(repo, cacheIntf, ids, logger.Nop()).(*clientService)
	svc.now = func() time.Time { return fixedNow }
	return svc, repo, cache, ids
}

func sampleClients() []models.Client {
	return []models.Client{
		{ID: "c-1", FirstName: "Ana", LastName: "Li", Status: models.StatusProspect, CreatedAt: fixedNow, UpdatedAt: fixedNow},
		{ID: "c-2", FirstName: "Bo", LastName: "Ek", Status: models.StatusBooked, CreatedAt: fixedNow, UpdatedAt: fixedNow},
	}
}

// ── ListClients ─────────────────────────────────────────────────────────────

func TestClientService_ListClients_NoCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, _, _ := newTestClientSvc(t, ctrl, false)
	ctx := context.Background()

	repo.EXPECT().List(ctx).Return(sampleClients(), nil)

	got, err := svc.ListClients(ctx)
	require.NoError(t, err)
	assert.Equal(t, sampleClients(), got)
}

func TestClientService_ListClients_CacheHit(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, cache, _ := newTestClientSvc(t, ctrl, true)
	ctx := context.Background()

	cache.EXPECT().Get(ctx).Return(sampleClients(), int64(3), true, nil)

	got, err := svc.ListClients(ctx)
	require.NoError(t, err)
	assert.Equal(t, sampleClients(), got)
}

func TestClientService_ListClients_CacheMissFillsCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, cache, _ := newTestClientSvc(t, ctrl, true)
	ctx := context.Background()

	gomock.InOrder(
		cache.EXPECT().Get(ctx).Return(nil, int64(7), false, nil),
		repo.EXPECT().List(ctx).Return(sampleClients(), nil),
		cache.EXPECT().Set(ctx, int64(7), sampleClients()).Return(nil),
	)

	got, err := svc.ListClients(ctx)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestClientService_ListClients_CacheFailuresAreIgnored(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, cache, _ := newTestClientSvc(t, ctrl, true)
	ctx := context.Background()

	cache.EXPECT().Get(ctx).Return(nil, int64(0), false, store.ErrCacheUnavailable)
	repo.EXPECT().List(ctx).Return(sampleClients(), nil)
	cache.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	got, err := svc.ListClients(ctx)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestClientService_ListClients_CorruptedEntryIsRefilled(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, cache, _ := newTestClientSvc(t, ctrl, true)
	ctx := context.Background()

	gomock.InOrder(
		cache.EXPECT().Get(ctx).Return(nil, int64(2), false, store.ErrCacheCorrupted),
		repo.EXPECT().List(ctx).Return(sampleClients(), nil),
		cache.EXPECT().Set(ctx, int64(2), sampleClients()).Return(nil),
	)

	got, err := svc.ListClients(ctx)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestClientService_ListClients_RepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, cache, _ := newTestClientSvc(t, ctrl, true)
	ctx := context.Background()

	cache.EXPECT().Get(ctx).Return(nil, int64(0), false, nil)
	repo.EXPECT().List(ctx).Return(nil, store.ErrExecutingQuery)

	_, err := svc.ListClients(ctx)
	assert.ErrorIs(t, err, store.ErrExecutingQuery)
}

// ── CreateClient ────────────────────────────────────────────────────────────

func TestClientService_CreateClient_AssignsIdentityAndTimestamps(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, cache, ids := newTestClientSvc(t, ctrl, true)
	ctx := context.Background()

	draft := models.ClientDraft{FirstName: "  Ana ", LastName: "Li ", Email: " ana@example.com", Status: models.StatusProspect}

	ids.EXPECT().Generate().Return("0195530c-0000-7000-8000-000000000001")
	repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, c models.Client) (models.Client, error) {
		assert.Equal(t, "0195530c-0000-7000-8000-000000000001", c.ID)
		assert.Equal(t, "Ana", c.FirstName)
		assert.Equal(t, "Li", c.LastName)
		assert.Equal(t, "ana@example.com", c.Email)
		assert.Equal(t, fixedNow, c.CreatedAt)
		assert.Equal(t, fixedNow, c.UpdatedAt)
		assert.Nil(t, c.EventDate)
		assert.Nil(t, c.Budget)
		return c, nil
	})
	cache.EXPECT().Invalidate(ctx).Return(nil)

	created, err := svc.CreateClient(ctx, draft)
	require.NoError(t, err)
	assert.Equal(t, "0195530c-0000-7000-8000-000000000001", created.ID)
}

func TestClientService_CreateClient_RepositoryErrorSkipsInvalidate(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, _, ids := newTestClientSvc(t, ctrl, true)
	ctx := context.Background()

	ids.EXPECT().Generate().Return("dup")
	repo.EXPECT().Create(ctx, gomock.Any()).Return(models.Client{}, store.ErrClientAlreadyExists)

	_, err := svc.CreateClient(ctx, models.ClientDraft{FirstName: "A", LastName: "B", Status: models.StatusQuoted})
	assert.ErrorIs(t, err, store.ErrClientAlreadyExists)
}

func TestClientService_CreateClient_InvalidateFailureIsIgnored(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, cache, ids := newTestClientSvc(t, ctrl, true)
	ctx := context.Background()

	ids.EXPECT().Generate().Return("c-1")
	repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, c models.Client) (models.Client, error) {
		return c, nil
	})
	cache.EXPECT().Invalidate(ctx).Return(errors.New("redis down"))

	_, err := svc.CreateClient(ctx, models.ClientDraft{FirstName: "A", LastName: "B", Status: models.StatusQuoted})
	require.NoError(t, err)
}

// ── UpdateClient ────────────────────────────────────────────────────────────

func TestClientService_UpdateClient(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, _, _ := newTestClientSvc(t, ctrl, false)
	ctx := context.Background()

	draft := models.ClientDraft{
		FirstName: "Ana",
		LastName:  "Li",
		Status:    models.StatusBooked,
		EventDate: models.NewDate(2025, time.June, 14),
	}
	stored := draft.Apply(models.Client{ID: "c-1", CreatedAt: fixedNow.Add(-time.Hour), UpdatedAt: fixedNow})

	repo.EXPECT().Update(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, c models.Client) (models.Client, error) {
		assert.Equal(t, "c-1", c.ID)
		assert.Equal(t, fixedNow, c.UpdatedAt)
		assert.True(t, c.CreatedAt.IsZero(), "created_at is never sent on update")
		assert.Equal(t, "2025-06-14", c.EventDate.String())
		return stored, nil
	})

	got, err := svc.UpdateClient(ctx, "c-1", draft)
	require.NoError(t, err)
	assert.Equal(t, stored, got)
}

func TestClientService_UpdateClient_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, cache, _ := newTestClientSvc(t, ctrl, true)
	ctx := context.Background()

	repo.EXPECT().Update(ctx, gomock.Any()).Return(models.Client{}, store.ErrClientNotFound)
	cache.EXPECT().Invalidate(gomock.Any()).Times(0)

	_, err := svc.UpdateClient(ctx, "missing", models.ClientDraft{FirstName: "A", LastName: "B", Status: models.StatusQuoted})
	assert.ErrorIs(t, err, store.ErrClientNotFound)
}

// ── GetClient / DeleteClient ────────────────────────────────────────────────

func TestClientService_GetClient(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, _, _ := newTestClientSvc(t, ctrl, false)
	ctx := context.Background()

	repo.EXPECT().Get(ctx, "c-2").Return(sampleClients()[1], nil)

	got, err := svc.GetClient(ctx, "c-2")
	require.NoError(t, err)
	assert.Equal(t, "Bo", got.FirstName)
}

func TestClientService_DeleteClient(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, cache, _ := newTestClientSvc(t, ctrl, true)
	ctx := context.Background()

	gomock.InOrder(
		repo.EXPECT().Delete(ctx, "c-1").Return(nil),
		cache.EXPECT().Invalidate(ctx).Return(nil),
	)

	require.NoError(t, svc.DeleteClient(ctx, "c-1"))
}

func TestClientService_DeleteClient_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, _, _ := newTestClientSvc(t, ctrl, true)
	ctx := context.Background()

	repo.EXPECT().Delete(ctx, "gone").Return(store.ErrClientNotFound)

	assert.ErrorIs(t, svc.DeleteClient(ctx, "gone"), store.ErrClientNotFound)
}
