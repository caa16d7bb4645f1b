// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strconv"
	"strings"

	"github.com/MKhiriev/bloom-crm/models"
)

const (
	emptyCell         = "-"
	displayDateLayout = "Jan 02, 2006"
)

// formatBudget renders a budget as dollars with thousands separators:
// 2500 → "$2,500", 1234.5 → "$1,234.50". Missing budgets render as "-".
func formatBudget(b *float64) string {
	if b == nil {
		return emptyCell
	}

	s := strconv.FormatFloat(*b, 'f', 2, 64)
	whole, frac, _ := strings.Cut(s, ".")

	out := "$" + groupThousands(whole)
	if frac != "00" {
		out += "." + frac
	}
	return out
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// formatDate renders an optional date for the table ("Jun 14, 2025").
func formatDate(d *models.Date) string {
	if d == nil {
		return emptyCell
	}
	return d.Time().Format(displayDateLayout)
}

func formatContact(c models.Client) string {
	parts := make([]string, 0, 2)
	if c.Email != "" {
		parts = append(parts, c.Email)
	}
	if c.Phone != "" {
		parts = append(parts, c.Phone)
	}
	if len(parts) == 0 {
		return emptyCell
	}
	return strings.Join(parts, " / ")
}

func formatTag(s string) string {
	if s == "" {
		return emptyCell
	}
	return strings.ToUpper(s)
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return emptyCell
	}
	return s
}

// fitText cuts v to max runes, marking the cut with "…".
func fitText(v string, max int) string {
	r := []rune(v)
	if max <= 0 || len(r) <= max {
		return v
	}
	if max == 1 {
		return string(r[:1])
	}
	return string(r[:max-1]) + "…"
}

func eventTypeLabel(t models.EventType) string {
	if t == "" {
		return "All"
	}
	return capitalize(string(t))
}

func statusLabel(s models.Status) string {
	if s == "" {
		return "All"
	}
	return capitalize(string(s))
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
