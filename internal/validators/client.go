// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"net/mail"
	"strings"

	"github.com/MKhiriev/bloom-crm/models"
)

// Field names accepted by ClientValidator. They match the JSON names of the
// corresponding models.Client fields.
const (
	FieldID          = "id"
	FieldFirstName   = "firstName"
	FieldLastName    = "lastName"
	FieldEmail       = "email"
	FieldEventType   = "eventType"
	FieldEventDate   = "eventDate"
	FieldStatus      = "status"
	FieldBudget      = "budget"
	FieldContactDate = "contactDate"
)

// Messages shown next to invalid fields.
const (
	MsgFirstNameRequired = "Please enter first name"
	MsgLastNameRequired  = "Please enter last name"
	MsgStatusRequired    = "Please select status"
	MsgUnknownStatus     = "Unknown status"
	MsgUnknownEventType  = "Unknown event type"
	MsgInvalidEmail      = "Please enter a valid email"
	MsgNegativeBudget    = "Budget cannot be negative"
	MsgInvalidDate       = "Please enter a date as YYYY-MM-DD"
	MsgIDRequired        = "Client ID is required"
)

var draftFields = []string{
	FieldFirstName,
	FieldLastName,
	FieldEmail,
	FieldEventType,
	FieldEventDate,
	FieldStatus,
	FieldBudget,
	FieldContactDate,
}

// ClientValidator validates models.ClientDraft and models.Client values.
// All failing fields are reported at once in a *ValidationError.
type ClientValidator struct{}

// NewClientValidator returns a ClientValidator as a Validator.
func NewClientValidator() Validator {
	return &ClientValidator{}
}

// Validate accepts models.ClientDraft and models.Client, by value or
// pointer. A Client is additionally checked for a non-empty ID.
func (v *ClientValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.ClientDraft:
		return v.validateDraft(value, fields...)
	case *models.ClientDraft:
		return v.validateDraft(*value, fields...)

	case models.Client:
		return v.validateClient(value, fields...)
	case *models.Client:
		return v.validateClient(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *ClientValidator) validateClient(c models.Client, fields ...string) error {
	if len(fields) == 0 {
		fields = append([]string{FieldID}, draftFields...)
	}

	verr := &ValidationError{}
	for _, f := range fields {
		if f == FieldID {
			if strings.TrimSpace(c.ID) == "" {
				verr.add(FieldID, MsgIDRequired)
			}
			continue
		}
		if err := v.checkDraftField(verr, c.Draft(), f); err != nil {
			return err
		}
	}
	return verr.orNil()
}

func (v *ClientValidator) validateDraft(d models.ClientDraft, fields ...string) error {
	if len(fields) == 0 {
		fields = draftFields
	}

	verr := &ValidationError{}
	for _, f := range fields {
		if err := v.checkDraftField(verr, d, f); err != nil {
			return err
		}
	}
	return verr.orNil()
}

func (v *ClientValidator) checkDraftField(verr *ValidationError, d models.ClientDraft, field string) error {
	switch field {
	case FieldFirstName:
		if strings.TrimSpace(d.FirstName) == "" {
			verr.add(field, MsgFirstNameRequired)
		}
	case FieldLastName:
		if strings.TrimSpace(d.LastName) == "" {
			verr.add(field, MsgLastNameRequired)
		}
	case FieldEmail:
		if d.Email != "" && !isEmail(d.Email) {
			verr.add(field, MsgInvalidEmail)
		}
	case FieldEventType:
		if d.EventType != "" && !d.EventType.Valid() {
			verr.add(field, MsgUnknownEventType)
		}
	case FieldEventDate:
		if !isCalendarDate(d.EventDate) {
			verr.add(field, MsgInvalidDate)
		}
	case FieldContactDate:
		if !isCalendarDate(d.ContactDate) {
			verr.add(field, MsgInvalidDate)
		}
	case FieldStatus:
		switch {
		case d.Status == "":
			verr.add(field, MsgStatusRequired)
		case !d.Status.Valid():
			verr.add(field, MsgUnknownStatus)
		}
	case FieldBudget:
		if d.Budget != nil && *d.Budget < 0 {
			verr.add(field, MsgNegativeBudget)
		}
	default:
		return ErrUnknownField
	}
	return nil
}

// isEmail accepts a bare address ("ana@example.com"), not a display-name
// form.
func isEmail(s string) bool {
	addr, err := mail.ParseAddress(strings.TrimSpace(s))
	return err == nil && addr.Name == "" && strings.Contains(addr.Address, ".")
}

// isCalendarDate rejects hand-built dates like 2025-02-30. nil is valid.
func isCalendarDate(d *models.Date) bool {
	if d == nil {
		return true
	}
	return models.DateOf(d.Time()) == *d
}
