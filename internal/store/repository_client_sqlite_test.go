// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/bloom-crm/internal/logger"
	"github.com/MKhiriev/bloom-crm/migrations"
	"github.com/MKhiriev/bloom-crm/models"
)

func newSQLiteRepo(t *testing.T) ClientRepository {
	t.Helper()
	ctx := context.Background()

	db, err := NewConnect(ctx, filepath.Join(t.TempDir(), "nested", "bloom.db"), logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.Equal(t, migrations.SQLite, db.Dialect())
	require.NoError(t, db.Migrate(ctx))
	require.NoError(t, db.HealthCheck(ctx))

	return NewClientRepository(db, logger.Nop())
}

func TestClientRepository_SQLite_RoundTrip(t *testing.T) {
	repo := newSQLiteRepo(t)
	ctx := context.Background()

	now := time.Date(2025, time.March, 1, 9, 30, 0, 123000, time.UTC)
	withDates := testClient()
	withDates.CreatedAt, withDates.UpdatedAt = now, now

	bare := models.Client{
		ID:        "0195530c-0000-7000-8000-000000000002",
		FirstName: "Bo",
		LastName:  "Ek",
		Status:    models.StatusQuoted,
		CreatedAt: now.Add(time.Second),
		UpdatedAt: now.Add(time.Second),
	}

	created, err := repo.Create(ctx, withDates)
	require.NoError(t, err)
	assert.Equal(t, withDates, created)

	created, err = repo.Create(ctx, bare)
	require.NoError(t, err)
	assert.Nil(t, created.EventDate)
	assert.Nil(t, created.ContactDate)
	assert.Nil(t, created.Budget)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, withDates.ID, list[0].ID)
	assert.Equal(t, bare, list[1])

	got, err := repo.Get(ctx, withDates.ID)
	require.NoError(t, err)
	assert.Equal(t, withDates, got)
	require.NotNil(t, got.Budget)
	assert.InDelta(t, 2500.0, *got.Budget, 0)
}

func TestClientRepository_SQLite_UpdateKeepsCreatedAt(t *testing.T) {
	repo := newSQLiteRepo(t)
	ctx := context.Background()

	c := testClient()
	_, err := repo.Create(ctx, c)
	require.NoError(t, err)

	zero := 0.0
	c.Status = models.StatusBooked
	c.Budget = &zero
	c.EventDate = nil
	c.ContactDate = models.NewDate(2025, time.February, 20)
	c.UpdatedAt = c.CreatedAt.Add(48 * time.Hour)
	changedCreated := c
	changedCreated.CreatedAt = c.CreatedAt.Add(time.Hour)

	updated, err := repo.Update(ctx, changedCreated)
	require.NoError(t, err)
	assert.Equal(t, c, updated)

	got, err := repo.Get(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, c, got)
	assert.Equal(t, testCreated, got.CreatedAt)
}

func TestClientRepository_SQLite_Errors(t *testing.T) {
	repo := newSQLiteRepo(t)
	ctx := context.Background()

	c := testClient()
	_, err := repo.Create(ctx, c)
	require.NoError(t, err)

	_, err = repo.Create(ctx, c)
	assert.ErrorIs(t, err, ErrClientAlreadyExists)

	negative := -1.0
	bad := testClient()
	bad.ID = "0195530c-0000-7000-8000-000000000009"
	bad.Budget = &negative
	_, err = repo.Create(ctx, bad)
	assert.ErrorIs(t, err, ErrExecutingStatement)

	_, err = repo.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrClientNotFound)

	missing := testClient()
	missing.ID = "missing"
	_, err = repo.Update(ctx, missing)
	assert.ErrorIs(t, err, ErrClientNotFound)

	require.NoError(t, repo.Delete(ctx, c.ID))
	assert.ErrorIs(t, repo.Delete(ctx, c.ID), ErrClientNotFound)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}
