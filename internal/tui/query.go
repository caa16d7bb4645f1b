// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"cmp"
	"slices"
	"strings"

	"github.com/MKhiriev/bloom-crm/models"
)

type sortKey int

const (
	sortNone sortKey = iota
	sortByName
	sortByEventDate
	sortByBudget
)

func (k sortKey) String() string {
	switch k {
	case sortByName:
		return "name"
	case sortByEventDate:
		return "event date"
	case sortByBudget:
		return "budget"
	default:
		return "none"
	}
}

func (k sortKey) next() sortKey {
	return (k + 1) % (sortByBudget + 1)
}

// pageSizes are the page sizes the table cycles through. The first one is
// the default.
var pageSizes = []int{10, 20, 50}

// tableQuery is everything that decides which rows the table shows.
// The zero value shows every client, unsorted, on the first page of
// pageSizes[0] rows.
type tableQuery struct {
	eventType  models.EventType
	status     models.Status
	sortBy     sortKey
	descending bool
	page       int
	pageSize   int
}

// tablePage is the result of applying a tableQuery.
type tablePage struct {
	rows []models.Client

	// page is the clamped zero-based page index.
	page  int
	pages int

	// matched counts the clients that passed the filters.
	matched int
}

func (q tableQuery) size() int {
	if q.pageSize <= 0 {
		return pageSizes[0]
	}
	return q.pageSize
}

func (q tableQuery) apply(clients []models.Client) tablePage {
	filtered := filterClients(clients, q.eventType, q.status)
	sorted := sortClients(filtered, q.sortBy, q.descending)
	rows, page, pages := paginate(sorted, q.page, q.size())

	return tablePage{rows: rows, page: page, pages: pages, matched: len(filtered)}
}

// filterClients keeps the clients matching eventType and status. An empty
// filter value matches everything. The input is not modified.
func filterClients(clients []models.Client, eventType models.EventType, status models.Status) []models.Client {
	out := make([]models.Client, 0, len(clients))
	for _, c := range clients {
		if eventType != "" && c.EventType != eventType {
			continue
		}
		if status != "" && c.Status != status {
			continue
		}
		out = append(out, c)
	}
	return out
}

// sortClients returns a sorted copy of clients. Missing event dates and
// budgets sort as the smallest value. Ties keep their input order.
func sortClients(clients []models.Client, by sortKey, descending bool) []models.Client {
	out := slices.Clone(clients)
	if by == sortNone {
		return out
	}

	compare := func(a, b models.Client) int {
		switch by {
		case sortByName:
			return cmp.Or(
				strings.Compare(strings.ToLower(a.FirstName), strings.ToLower(b.FirstName)),
				strings.Compare(strings.ToLower(a.LastName), strings.ToLower(b.LastName)),
			)
		case sortByEventDate:
			return compareDates(a.EventDate, b.EventDate)
		case sortByBudget:
			return cmp.Compare(budgetOrZero(a.Budget), budgetOrZero(b.Budget))
		}
		return 0
	}

	slices.SortStableFunc(out, func(a, b models.Client) int {
		if descending {
			return compare(b, a)
		}
		return compare(a, b)
	})
	return out
}

func compareDates(a, b *models.Date) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	}
	return a.Time().Compare(b.Time())
}

func budgetOrZero(b *float64) float64 {
	if b == nil {
		return 0
	}
	return *b
}

// paginate returns the rows of page (zero-based) and the number of pages.
// page is clamped into range; an empty list has one empty page.
func paginate(clients []models.Client, page, size int) ([]models.Client, int, int) {
	if size <= 0 {
		size = pageSizes[0]
	}

	pages := max(1, (len(clients)+size-1)/size)
	page = min(max(page, 0), pages-1)

	start := page * size
	end := min(start+size, len(clients))
	return clients[start:end], page, pages
}

// nextPageSize cycles through pageSizes.
func nextPageSize(current int) int {
	i := slices.Index(pageSizes, current)
	return pageSizes[(i+1)%len(pageSizes)]
}

// nextEventFilter cycles "" (all) → every event type → "".
func nextEventFilter(current models.EventType) models.EventType {
	i := slices.Index(models.EventTypes, current)
	if i == len(models.EventTypes)-1 {
		return ""
	}
	return models.EventTypes[i+1]
}

// nextStatusFilter cycles "" (all) → every status → "".
func nextStatusFilter(current models.Status) models.Status {
	i := slices.Index(models.Statuses, current)
	if i == len(models.Statuses)-1 {
		return ""
	}
	return models.Statuses[i+1]
}
