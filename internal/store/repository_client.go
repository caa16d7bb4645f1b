// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/bloom-crm/internal/logger"
	"github.com/MKhiriev/bloom-crm/models"
)

// clientRepository is the SQL implementation of [ClientRepository]. The
// same code serves PostgreSQL and SQLite; DB supplies the placeholder style
// and error classifier.
type clientRepository struct {
	*DB
	logger *logger.Logger
}

// NewClientRepository returns a ClientRepository over db.
func NewClientRepository(db *DB, logger *logger.Logger) ClientRepository {
	logger.Debug().Str("dialect", string(db.dialect)).Msg("creating client repository")
	return &clientRepository{
		DB:     db,
		logger: logger,
	}
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanClient(row rowScanner) (models.Client, error) {
	var (
		c         models.Client
		eventType string
		status    string
		budget    sql.NullFloat64
	)

	err := row.Scan(
		&c.ID,
		&c.FirstName,
		&c.LastName,
		&c.Email,
		&c.Phone,
		&c.Company,
		&eventType,
		&c.EventDate,
		&status,
		&budget,
		&c.ContactDate,
		&c.Notes,
		timestamp{&c.CreatedAt},
		timestamp{&c.UpdatedAt},
	)
	if err != nil {
		return models.Client{}, err
	}

	c.EventType = models.EventType(eventType)
	c.Status = models.Status(status)
	if budget.Valid {
		c.Budget = &budget.Float64
	}
	c.CreatedAt = c.CreatedAt.UTC()
	c.UpdatedAt = c.UpdatedAt.UTC()

	return c, nil
}

// timestamp scans a time column. pgx returns time.Time; SQLite hands back
// text whenever it cannot see the declared column type (RETURNING clauses).
type timestamp struct {
	t *time.Time
}

func (ts timestamp) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		*ts.t = v
		return nil
	case string:
		return ts.parse(v)
	case []byte:
		return ts.parse(string(v))
	default:
		return fmt.Errorf("unsupported timestamp source %T", src)
	}
}

func (ts timestamp) parse(s string) error {
	s = strings.TrimSuffix(s, "Z")
	for _, layout := range sqlite3.SQLiteTimestampFormats {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			*ts.t = t
			return nil
		}
	}
	return fmt.Errorf("unparsable timestamp %q", s)
}

// List returns every client, oldest first.
func (r *clientRepository) List(ctx context.Context) ([]models.Client, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListClientsQuery(r.builder())
	if err != nil {
		log.Err(err).Str("func", "clientRepository.List").Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "clientRepository.List").
			Stringer("classification", r.errorClassificator.Classify(err)).
			Msg("failed to execute query for listing clients")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	clients := make([]models.Client, 0, 32)
	for rows.Next() {
		c, scanErr := scanClient(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "clientRepository.List").Msg("failed to scan client row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		clients = append(clients, c)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "clientRepository.List").Msg("error iterating client rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return clients, nil
}

// Get returns the client with the given id.
func (r *clientRepository) Get(ctx context.Context, id string) (models.Client, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetClientQuery(r.builder(), id)
	if err != nil {
		log.Err(err).Str("func", "clientRepository.Get").Msg("failed to create query")
		return models.Client{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	c, err := scanClient(r.DB.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Client{}, ErrClientNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "clientRepository.Get").Str("id", id).Msg("failed to get client")
		return models.Client{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return c, nil
}

// Create inserts c and returns the stored row.
func (r *clientRepository) Create(ctx context.Context, c models.Client) (models.Client, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertClientQuery(r.builder(), c)
	if err != nil {
		log.Err(err).Str("func", "clientRepository.Create").Msg("failed to create query")
		return models.Client{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := scanClient(r.DB.QueryRowContext(ctx, query, args...))
	if err != nil {
		if r.errorClassificator.IsUniqueViolation(err) {
			log.Warn().Str("func", "clientRepository.Create").Str("id", c.ID).Msg("client id already taken")
			return models.Client{}, ErrClientAlreadyExists
		}

		log.Err(err).
			Str("func", "clientRepository.Create").
			Str("id", c.ID).
			Stringer("classification", r.errorClassificator.Classify(err)).
			Msg("failed to insert client")
		return models.Client{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return created, nil
}

// Update overwrites the client with c.ID and returns the stored row.
func (r *clientRepository) Update(ctx context.Context, c models.Client) (models.Client, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateClientQuery(r.builder(), c)
	if err != nil {
		log.Err(err).Str("func", "clientRepository.Update").Msg("failed to create query")
		return models.Client{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	updated, err := scanClient(r.DB.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Client{}, ErrClientNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "clientRepository.Update").
			Str("id", c.ID).
			Stringer("classification", r.errorClassificator.Classify(err)).
			Msg("failed to update client")
		return models.Client{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return updated, nil
}

// Delete removes the client with the given id.
func (r *clientRepository) Delete(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteClientQuery(r.builder(), id)
	if err != nil {
		log.Err(err).Str("func", "clientRepository.Delete").Msg("failed to create query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "clientRepository.Delete").
			Str("id", id).
			Stringer("classification", r.errorClassificator.Classify(err)).
			Msg("failed to delete client")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrClientNotFound
	}

	return nil
}
