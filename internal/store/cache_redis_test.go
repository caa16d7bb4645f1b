// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/bloom-crm/internal/logger"
	"github.com/MKhiriev/bloom-crm/models"
)

// fakeRedis is an in-memory redisKV.
type fakeRedis struct {
	data    map[string]string
	ttl     map[string]time.Duration
	failErr error
	closed  bool
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{data: map[string]string{}, ttl: map[string]time.Duration{}}
}

func (f *fakeRedis) Get(ctx context.Context, key string) *redis.StringCmd {
	if f.failErr != nil {
		return redis.NewStringResult("", f.failErr)
	}
	v, ok := f.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (f *fakeRedis) Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd {
	if f.failErr != nil {
		return redis.NewStatusResult("", f.failErr)
	}
	switch v := value.(type) {
	case []byte:
		f.data[key] = string(v)
	case string:
		f.data[key] = v
	}
	f.ttl[key] = expiration
	return redis.NewStatusResult("OK", nil)
}

func (f *fakeRedis) Incr(ctx context.Context, key string) *redis.IntCmd {
	if f.failErr != nil {
		return redis.NewIntResult(0, f.failErr)
	}
	n, err := strconv.ParseInt(f.data[key], 10, 64)
	if f.data[key] != "" && err != nil {
		return redis.NewIntResult(0, errors.New("ERR value is not an integer or out of range"))
	}
	n++
	f.data[key] = strconv.FormatInt(n, 10)
	return redis.NewIntResult(n, nil)
}

func (f *fakeRedis) Close() error {
	f.closed = true
	return nil
}

func TestRedisClientListCache_MissSetHit(t *testing.T) {
	kv := newFakeRedis()
	cache := newRedisClientListCache(kv, 30*time.Second, logger.Nop())
	ctx := context.Background()

	got, gen, ok, err := cache.Get(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, got)
	assert.Zero(t, gen)

	clients := []models.Client{testClient()}
	require.NoError(t, cache.Set(ctx, gen, clients))
	assert.Equal(t, 30*time.Second, kv.ttl[ClientListKeyPrefix+"0"])

	got, gen, ok, err = cache.Get(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Zero(t, gen)
	assert.Equal(t, clients, got)
}

func TestRedisClientListCache_EmptyListIsAHit(t *testing.T) {
	kv := newFakeRedis()
	cache := newRedisClientListCache(kv, time.Minute, logger.Nop())
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, 0, nil))
	assert.Equal(t, "[]", kv.data[ClientListKeyPrefix+"0"])

	got, _, ok, err := cache.Get(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Empty(t, got)
}

func TestRedisClientListCache_Invalidate(t *testing.T) {
	kv := newFakeRedis()
	cache := newRedisClientListCache(kv, time.Minute, logger.Nop())
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, 0, []models.Client{testClient()}))
	require.NoError(t, cache.Invalidate(ctx))

	_, gen, ok, err := cache.Get(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, int64(1), gen)
	assert.Equal(t, "1", kv.data[ClientListGenerationKey])
	_, hasTTL := kv.ttl[ClientListGenerationKey]
	assert.False(t, hasTTL)

	require.NoError(t, cache.Invalidate(ctx))
	_, gen, _, err = cache.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), gen)
}

func TestRedisClientListCache_FillFromOldGenerationIsNeverServed(t *testing.T) {
	kv := newFakeRedis()
	cache := newRedisClientListCache(kv, time.Minute, logger.Nop())
	ctx := context.Background()

	// a reader misses and goes to the database
	_, gen, ok, err := cache.Get(ctx)
	require.NoError(t, err)
	require.False(t, ok)

	// a write lands before the reader stores what it read
	require.NoError(t, cache.Invalidate(ctx))
	require.NoError(t, cache.Set(ctx, gen, []models.Client{}))

	_, current, ok, err := cache.Get(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, gen+1, current)
}

func TestRedisClientListCache_Corrupted(t *testing.T) {
	kv := newFakeRedis()
	kv.data[ClientListKeyPrefix+"0"] = "{not json"
	cache := newRedisClientListCache(kv, time.Minute, logger.Nop())

	_, gen, ok, err := cache.Get(context.Background())
	assert.False(t, ok)
	assert.Zero(t, gen)
	assert.ErrorIs(t, err, ErrCacheCorrupted)
}

func TestRedisClientListCache_CorruptedGeneration(t *testing.T) {
	kv := newFakeRedis()
	kv.data[ClientListGenerationKey] = "many"
	cache := newRedisClientListCache(kv, time.Minute, logger.Nop())

	_, _, ok, err := cache.Get(context.Background())
	assert.False(t, ok)
	assert.ErrorIs(t, err, ErrCacheUnavailable)
}

func TestRedisClientListCache_Unavailable(t *testing.T) {
	kv := newFakeRedis()
	kv.failErr = errors.New("dial tcp: connection refused")
	cache := newRedisClientListCache(kv, time.Minute, logger.Nop())
	ctx := context.Background()

	_, _, ok, err := cache.Get(ctx)
	assert.False(t, ok)
	assert.ErrorIs(t, err, ErrCacheUnavailable)

	assert.ErrorIs(t, cache.Set(ctx, 0, []models.Client{}), ErrCacheUnavailable)
	assert.ErrorIs(t, cache.Invalidate(ctx), ErrCacheUnavailable)
}

func TestNewRedisClientListCache_BadURL(t *testing.T) {
	_, _, err := NewRedisClientListCache(context.Background(), "://nope", time.Minute, logger.Nop())
	assert.Error(t, err)
}
