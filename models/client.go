// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"strings"
	"time"
)

// Client is a prospective or booked customer of the shop.
//
// ID, CreatedAt and UpdatedAt are assigned by the server: ID once on
// creation (and never changed afterwards), the timestamps on every write.
type Client struct {
	// ID is the opaque identifier assigned by the server on creation.
	ID string `json:"id"`

	// FirstName is the client's given name. Required.
	FirstName string `json:"firstName"`

	// LastName is the client's family name. Required.
	LastName string `json:"lastName"`

	// Email is an optional contact address.
	Email string `json:"email,omitempty"`

	// Phone is an optional contact number.
	Phone string `json:"phone,omitempty"`

	// Company is the optional company or organisation the client represents.
	Company string `json:"company,omitempty"`

	// EventType is the kind of event the order is for. Empty when unknown.
	EventType EventType `json:"eventType,omitempty"`

	// EventDate is the date of the event, nil when not fixed yet.
	EventDate *Date `json:"eventDate"`

	// Status is the booking status. Required.
	Status Status `json:"status"`

	// Budget is the client's budget, nil when not discussed yet.
	Budget *float64 `json:"budget"`

	// ContactDate is the date of the first (or latest) contact.
	ContactDate *Date `json:"contactDate"`

	// Notes holds free-form preferences and requirements.
	Notes string `json:"notes,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// FullName returns "FirstName LastName".
func (c Client) FullName() string {
	return strings.TrimSpace(c.FirstName + " " + c.LastName)
}

// Draft returns the editable fields of c, e.g. to pre-fill an edit form.
func (c Client) Draft() ClientDraft {
	return ClientDraft{
		FirstName:   c.FirstName,
		LastName:    c.LastName,
		Email:       c.Email,
		Phone:       c.Phone,
		Company:     c.Company,
		EventType:   c.EventType,
		EventDate:   cloneDate(c.EventDate),
		Status:      c.Status,
		Budget:      cloneFloat(c.Budget),
		ContactDate: cloneDate(c.ContactDate),
		Notes:       c.Notes,
	}
}

// ClientDraft is the set of values a user submits to create or update a
// client, before the server assigns identity and timestamps.
type ClientDraft struct {
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
	Email       string    `json:"email,omitempty"`
	Phone       string    `json:"phone,omitempty"`
	Company     string    `json:"company,omitempty"`
	EventType   EventType `json:"eventType,omitempty"`
	EventDate   *Date     `json:"eventDate"`
	Status      Status    `json:"status"`
	Budget      *float64  `json:"budget"`
	ContactDate *Date     `json:"contactDate"`
	Notes       string    `json:"notes,omitempty"`
}

// NewClientDraft returns an empty draft with the default status set.
func NewClientDraft() ClientDraft {
	return ClientDraft{Status: DefaultStatus}
}

// Normalize trims surrounding whitespace from all text fields.
func (d ClientDraft) Normalize() ClientDraft {
	d.FirstName = strings.TrimSpace(d.FirstName)
	d.LastName = strings.TrimSpace(d.LastName)
	d.Email = strings.TrimSpace(d.Email)
	d.Phone = strings.TrimSpace(d.Phone)
	d.Company = strings.TrimSpace(d.Company)
	d.Notes = strings.TrimSpace(d.Notes)
	return d
}

// Apply copies the draft's fields onto c, keeping c's identity and
// timestamps.
func (d ClientDraft) Apply(c Client) Client {
	c.FirstName = d.FirstName
	c.LastName = d.LastName
	c.Email = d.Email
	c.Phone = d.Phone
	c.Company = d.Company
	c.EventType = d.EventType
	c.EventDate = cloneDate(d.EventDate)
	c.Status = d.Status
	c.Budget = cloneFloat(d.Budget)
	c.ContactDate = cloneDate(d.ContactDate)
	c.Notes = d.Notes
	return c
}

// ListClientsResponse is the envelope returned by the list endpoint.
type ListClientsResponse struct {
	// Success is false when the server could not produce the list.
	Success bool `json:"success"`

	// Data holds every stored client.
	Data []Client `json:"data"`

	// Length is len(Data).
	Length int `json:"length"`
}

func cloneDate(d *Date) *Date {
	if d == nil {
		return nil
	}
	c := *d
	return &c
}

func cloneFloat(f *float64) *float64 {
	if f == nil {
		return nil
	}
	c := *f
	return &c
}
