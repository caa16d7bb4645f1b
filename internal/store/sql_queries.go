// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/bloom-crm/models"
)

const clientsTable = "clients"

// clientColumns is the column order used by every SELECT and RETURNING
// clause; scanClient reads in the same order.
var clientColumns = []string{
	"id",
	"first_name",
	"last_name",
	"email",
	"phone",
	"company",
	"event_type",
	"event_date",
	"status",
	"budget",
	"contact_date",
	"notes",
	"created_at",
	"updated_at",
}

func returningClientColumns() string {
	return "RETURNING " + strings.Join(clientColumns, ", ")
}

func buildListClientsQuery(b sq.StatementBuilderType) (string, []any, error) {
	return b.Select(clientColumns...).
		From(clientsTable).
		OrderBy("created_at", "id").
		ToSql()
}

func buildGetClientQuery(b sq.StatementBuilderType, id string) (string, []any, error) {
	return b.Select(clientColumns...).
		From(clientsTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildInsertClientQuery(b sq.StatementBuilderType, c models.Client) (string, []any, error) {
	return b.Insert(clientsTable).
		Columns(clientColumns...).
		Values(
			c.ID,
			c.FirstName,
			c.LastName,
			c.Email,
			c.Phone,
			c.Company,
			string(c.EventType),
			c.EventDate,
			string(c.Status),
			c.Budget,
			c.ContactDate,
			c.Notes,
			c.CreatedAt,
			c.UpdatedAt,
		).
		Suffix(returningClientColumns()).
		ToSql()
}

// buildUpdateClientQuery overwrites every editable column. id and
// created_at are never touched.
func buildUpdateClientQuery(b sq.StatementBuilderType, c models.Client) (string, []any, error) {
	return b.Update(clientsTable).
		Set("first_name", c.FirstName).
		Set("last_name", c.LastName).
		Set("email", c.Email).
		Set("phone", c.Phone).
		Set("company", c.Company).
		Set("event_type", string(c.EventType)).
		Set("event_date", c.EventDate).
		Set("status", string(c.Status)).
		Set("budget", c.Budget).
		Set("contact_date", c.ContactDate).
		Set("notes", c.Notes).
		Set("updated_at", c.UpdatedAt).
		Where(sq.Eq{"id": c.ID}).
		Suffix(returningClientColumns()).
		ToSql()
}

func buildDeleteClientQuery(b sq.StatementBuilderType, id string) (string, []any, error) {
	return b.Delete(clientsTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}
