// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/bloom-crm/internal/config"
	"github.com/MKhiriev/bloom-crm/internal/logger"
)

// Storages groups the server's persistence backends.
type Storages struct {
	DB               *DB
	ClientRepository ClientRepository

	// ClientListCache is nil when no redis URL is configured or redis is
	// unreachable at startup.
	ClientListCache ClientListCache

	closers []func() error
}

// NewStorages opens the database, applies migrations and, when configured,
// connects the redis list cache. A cache that cannot be reached is logged
// and left out; the server runs without it.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	log.Info().Msg("creating new storages...")

	db, err := NewConnect(ctx, cfg.DB.DSN, log)
	if err != nil {
		return nil, fmt.Errorf("database connection error: %w", err)
	}

	if err = db.Migrate(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	s := &Storages{
		DB:               db,
		ClientRepository: NewClientRepository(db, log),
		closers:          []func() error{db.Close},
	}

	if cfg.Cache.RedisURL != "" {
		cache, closeCache, cacheErr := NewRedisClientListCache(ctx, cfg.Cache.RedisURL, cfg.Cache.TTL, log)
		if cacheErr != nil {
			log.Err(cacheErr).Str("func", "NewStorages").Msg("client list cache disabled")
		} else {
			s.ClientListCache = cache
			s.closers = append(s.closers, closeCache)
		}
	}

	return s, nil
}

// Close releases every backend.
func (s *Storages) Close() error {
	var errs []error
	for i := len(s.closers) - 1; i >= 0; i-- {
		errs = append(errs, s.closers[i]())
	}
	return errors.Join(errs...)
}
