// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// DateLayout is the canonical wire and storage layout of a calendar date.
const DateLayout = "2006-01-02"

// ErrInvalidDate is returned when a value cannot be read as a YYYY-MM-DD
// calendar date.
var ErrInvalidDate = errors.New("invalid calendar date, expected YYYY-MM-DD")

// Date is a calendar date without a time component.
//
// Optional dates are modelled as *Date: nil means "no date" and is encoded
// as JSON null, never as an empty string.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// ParseDate reads s in the YYYY-MM-DD layout. The value must name a day that
// exists on the calendar (2025-02-30 is rejected).
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return DateOf(t), nil
}

// ParseOptionalDate is ParseDate for form input: an empty string yields nil.
func ParseOptionalDate(s string) (*Date, error) {
	if s == "" {
		return nil, nil
	}
	d, err := ParseDate(s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// DateOf returns the calendar date of t in t's own location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// NewDate returns a pointer to the given calendar date. It is a convenience
// for filling optional date fields.
func NewDate(year int, month time.Month, day int) *Date {
	return &Date{Year: year, Month: month, Day: day}
}

// Time returns midnight UTC of the date.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// IsZero reports whether d is the zero Date.
func (d Date) IsZero() bool {
	return d.Year == 0 && d.Month == 0 && d.Day == 0
}

// Before reports whether d is strictly earlier than other.
func (d Date) Before(other Date) bool {
	return d.Time().Before(other.Time())
}

// String formats d as YYYY-MM-DD.
func (d Date) String() string {
	return d.Time().Format(DateLayout)
}

// DateString formats an optional date for form fields: nil yields "".
func DateString(d *Date) string {
	if d == nil {
		return ""
	}
	return d.String()
}

// MarshalJSON encodes d as a "YYYY-MM-DD" string.
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON decodes a "YYYY-MM-DD" string. JSON null leaves d untouched,
// so optional *Date fields stay nil.
func (d *Date) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		return nil
	}

	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidDate, string(b))
	}

	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Value implements [driver.Valuer]. Dates are stored as YYYY-MM-DD text so
// the same value works for a postgres DATE column and a sqlite column.
func (d Date) Value() (driver.Value, error) {
	return d.String(), nil
}

// Scan implements [sql.Scanner]. Drivers hand DATE columns back either as
// time.Time (pgx, mattn/go-sqlite3 for DATE-typed columns) or as text.
func (d *Date) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		*d = DateOf(v)
		return nil
	case string:
		return d.scanText(v)
	case []byte:
		return d.scanText(string(v))
	default:
		return fmt.Errorf("%w: unsupported source type %T", ErrInvalidDate, src)
	}
}

func (d *Date) scanText(s string) error {
	if len(s) > len(DateLayout) {
		// sqlite may keep a full timestamp in a DATE column
		s = s[:len(DateLayout)]
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
