// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/bloom-crm/internal/logger"
	"github.com/MKhiriev/bloom-crm/migrations"
)

// DB is an open database handle together with what the repositories need
// to talk to it: its dialect, placeholder style and error classifier.
type DB struct {
	*sql.DB
	dialect            migrations.Dialect
	placeholder        sq.PlaceholderFormat
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewConnect opens the database named by dsn. postgres:// and
// postgresql:// URLs open PostgreSQL through pgx; anything else is taken as
// a SQLite file path.
func NewConnect(ctx context.Context, dsn string, log *logger.Logger) (*DB, error) {
	if dsn == "" {
		return nil, ErrUnsupportedDSN
	}

	if isPostgresDSN(dsn) {
		return NewConnectPostgres(ctx, dsn, log)
	}
	return NewConnectSQLite(ctx, dsn, log)
}

func isPostgresDSN(dsn string) bool {
	lower := strings.ToLower(dsn)
	return strings.HasPrefix(lower, "postgres://") || strings.HasPrefix(lower, "postgresql://")
}

// Migrate applies the embedded schema for the database's dialect.
func (db *DB) Migrate(ctx context.Context) error {
	return migrations.Migrate(ctx, db.DB, db.dialect)
}

// Dialect reports which schema flavour the database uses.
func (db *DB) Dialect() migrations.Dialect {
	return db.dialect
}

// HealthCheck reports whether the database answers.
func (db *DB) HealthCheck(ctx context.Context) error {
	return db.PingContext(ctx)
}

func (db *DB) builder() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(db.placeholder)
}
