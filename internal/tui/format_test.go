// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"testing"
	"time"

	"github.com/MKhiriev/bloom-crm/models"
	"github.com/stretchr/testify/assert"
)

func TestFormatBudget(t *testing.T) {
	tests := []struct {
		in   *float64
		want string
	}{
		{nil, "-"},
		{budget(0), "$0"},
		{budget(950), "$950"},
		{budget(2500), "$2,500"},
		{budget(1234.5), "$1,234.50"},
		{budget(1000000), "$1,000,000"},
		{budget(123456.78), "$123,456.78"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, formatBudget(tt.in))
	}
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "-", formatDate(nil))
	assert.Equal(t, "Jun 14, 2025", formatDate(models.NewDate(2025, time.June, 14)))
}

func TestFormatContact(t *testing.T) {
	assert.Equal(t, "-", formatContact(models.Client{}))
	assert.Equal(t, "a@b.co", formatContact(models.Client{Email: "a@b.co"}))
	assert.Equal(t, "555-0101", formatContact(models.Client{Phone: "555-0101"}))
	assert.Equal(t, "a@b.co / 555-0101", formatContact(models.Client{Email: "a@b.co", Phone: "555-0101"}))
}

func TestFormatTag(t *testing.T) {
	assert.Equal(t, "-", formatTag(""))
	assert.Equal(t, "WEDDING", formatTag(string(models.EventWedding)))
}

func TestFitText(t *testing.T) {
	assert.Equal(t, "short", fitText("short", 10))
	assert.Equal(t, "Marg…", fitText("Margaret", 5))
	assert.Equal(t, "Żó…", fitText("Żółw", 3))
	assert.Equal(t, "M", fitText("Margaret", 1))
	assert.Equal(t, "Margaret", fitText("Margaret", 0))
}

func TestLabels(t *testing.T) {
	assert.Equal(t, "All", eventTypeLabel(""))
	assert.Equal(t, "Wedding", eventTypeLabel(models.EventWedding))
	assert.Equal(t, "All", statusLabel(""))
	assert.Equal(t, "Booked", statusLabel(models.StatusBooked))
	assert.Equal(t, "-", orDash("  "))
}
