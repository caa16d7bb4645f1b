// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/MKhiriev/bloom-crm/internal/logger"
	"github.com/MKhiriev/bloom-crm/models"
)

// Redis keys of the client list cache. The list for generation N lives
// under ClientListKeyPrefix+N; every write bumps ClientListGenerationKey, so
// a list read before the write can only be stored under a generation that
// is never read again.
const (
	ClientListGenerationKey = "bloom:clients:generation"
	ClientListKeyPrefix     = "bloom:clients:list:"
)

// redisKV is the subset of *redis.Client the cache uses.
type redisKV interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
	Incr(ctx context.Context, key string) *redis.IntCmd
	Close() error
}

// redisClientListCache stores the JSON-encoded client list under a
// generation-keyed key with a TTL.
type redisClientListCache struct {
	client redisKV
	ttl    time.Duration
	logger *logger.Logger
}

// NewRedisClientListCache connects to the redis server at url and returns a
// ClientListCache over it, together with a func that closes the connection.
func NewRedisClientListCache(ctx context.Context, url string, ttl time.Duration, log *logger.Logger) (ClientListCache, func() error, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err = client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, nil, fmt.Errorf("%w: %w", ErrCacheUnavailable, err)
	}

	log.Info().Str("func", "NewRedisClientListCache").Str("addr", opts.Addr).Dur("ttl", ttl).Msg("connected to Redis")

	cache := newRedisClientListCache(client, ttl, log)
	return cache, client.Close, nil
}

func newRedisClientListCache(client redisKV, ttl time.Duration, log *logger.Logger) *redisClientListCache {
	return &redisClientListCache{
		client: client,
		ttl:    ttl,
		logger: log,
	}
}

// Get returns the cached list of the current generation. gen is valid
// whenever err does not match ErrCacheUnavailable, also on a miss.
func (c *redisClientListCache) Get(ctx context.Context) ([]models.Client, int64, bool, error) {
	gen, err := c.generation(ctx)
	if err != nil {
		return nil, 0, false, err
	}

	data, err := c.client.Get(ctx, listKey(gen)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, gen, false, nil
	}
	if err != nil {
		return nil, 0, false, fmt.Errorf("%w: %w", ErrCacheUnavailable, err)
	}

	var clients []models.Client
	if err = json.Unmarshal(data, &clients); err != nil {
		return nil, gen, false, fmt.Errorf("%w: %w", ErrCacheCorrupted, err)
	}

	logger.FromContext(ctx).Debug().Str("func", "redisClientListCache.Get").Int64("generation", gen).Int("clients", len(clients)).Msg("client list served from cache")
	return clients, gen, true, nil
}

// Set stores clients as the list of generation gen.
func (c *redisClientListCache) Set(ctx context.Context, gen int64, clients []models.Client) error {
	if clients == nil {
		clients = []models.Client{}
	}

	data, err := json.Marshal(clients)
	if err != nil {
		return fmt.Errorf("failed to marshal client list: %w", err)
	}

	if err = c.client.Set(ctx, listKey(gen), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrCacheUnavailable, err)
	}
	return nil
}

// Invalidate starts a new generation. Lists stored for older generations
// expire on their own.
func (c *redisClientListCache) Invalidate(ctx context.Context) error {
	if err := c.client.Incr(ctx, ClientListGenerationKey).Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrCacheUnavailable, err)
	}
	return nil
}

func (c *redisClientListCache) generation(ctx context.Context) (int64, error) {
	gen, err := c.client.Get(ctx, ClientListGenerationKey).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrCacheUnavailable, err)
	}
	return gen, nil
}

func listKey(gen int64) string {
	return ClientListKeyPrefix + strconv.FormatInt(gen, 10)
}
