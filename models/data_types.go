// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// EventType classifies the occasion a client books flowers for.
// The empty value means the event type is not known yet.
type EventType string

const (
	// EventWedding is a wedding ceremony or reception.
	EventWedding EventType = "wedding"

	// EventFuneral is a funeral or memorial service.
	EventFuneral EventType = "funeral"

	// EventCorporate is a corporate event (office, conference, launch).
	EventCorporate EventType = "corporate"

	// EventBirthday is a birthday celebration.
	EventBirthday EventType = "birthday"

	// EventAnniversary is an anniversary celebration.
	EventAnniversary EventType = "anniversary"

	// EventOther is any occasion not covered above.
	EventOther EventType = "other"
)

// EventTypes lists every known event type in display order.
var EventTypes = []EventType{
	EventWedding,
	EventFuneral,
	EventCorporate,
	EventBirthday,
	EventAnniversary,
	EventOther,
}

// Valid reports whether t is one of the known event types.
// The empty event type is not valid; callers treat it as "not set".
func (t EventType) Valid() bool {
	for _, known := range EventTypes {
		if t == known {
			return true
		}
	}
	return false
}

// Status is the booking state of a client. Any status may follow any other;
// no workflow order is enforced.
type Status string

const (
	// StatusProspect is a client who has made contact but received no quote.
	StatusProspect Status = "prospect"

	// StatusQuoted is a client who has received a quote.
	StatusQuoted Status = "quoted"

	// StatusBooked is a client who has confirmed the order.
	StatusBooked Status = "booked"

	// StatusCompleted is a client whose event has been delivered.
	StatusCompleted Status = "completed"

	// StatusCancelled is a client who cancelled the order.
	StatusCancelled Status = "cancelled"
)

// Statuses lists every known status in display order.
var Statuses = []Status{
	StatusProspect,
	StatusQuoted,
	StatusBooked,
	StatusCompleted,
	StatusCancelled,
}

// DefaultStatus is the status a new client draft starts with.
const DefaultStatus = StatusProspect

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	for _, known := range Statuses {
		if s == known {
			return true
		}
	}
	return false
}
