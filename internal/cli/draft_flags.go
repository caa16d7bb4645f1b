// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/bloom-crm/models"
	"github.com/spf13/pflag"
)

var ErrInvalidFlag = errors.New("invalid flag value")

const (
	flagFirstName   = "first-name"
	flagLastName    = "last-name"
	flagEmail       = "email"
	flagPhone       = "phone"
	flagCompany     = "company"
	flagEventType   = "event-type"
	flagEventDate   = "event-date"
	flagStatus      = "status"
	flagBudget      = "budget"
	flagContactDate = "contact-date"
	flagNotes       = "notes"
)

// draftFlags are the add/edit flags. Only flags set on the command line
// are applied, so edit changes nothing the user did not name. An empty
// --event-date, --contact-date or --budget clears the field.
type draftFlags struct {
	firstName   string
	lastName    string
	email       string
	phone       string
	company     string
	eventType   string
	eventDate   string
	status      string
	budget      string
	contactDate string
	notes       string
}

func bindDraftFlags(fs *pflag.FlagSet) *draftFlags {
	f := &draftFlags{}

	fs.StringVar(&f.firstName, flagFirstName, "", "first name")
	fs.StringVar(&f.lastName, flagLastName, "", "last name")
	fs.StringVar(&f.email, flagEmail, "", "email address")
	fs.StringVar(&f.phone, flagPhone, "", "phone number")
	fs.StringVar(&f.company, flagCompany, "", "company or organisation")
	fs.StringVar(&f.eventType, flagEventType, "", "event type: "+joinValues(models.EventTypes))
	fs.StringVar(&f.eventDate, flagEventDate, "", "event date ("+models.DateLayout+")")
	fs.StringVar(&f.status, flagStatus, "", "status: "+joinValues(models.Statuses))
	fs.StringVar(&f.budget, flagBudget, "", "budget in dollars")
	fs.StringVar(&f.contactDate, flagContactDate, "", "contact date ("+models.DateLayout+")")
	fs.StringVar(&f.notes, flagNotes, "", "preferences and requirements")

	return f
}

// apply copies the changed flags onto d. Values are parsed but not
// validated; the manager does that.
func (f *draftFlags) apply(fs *pflag.FlagSet, d models.ClientDraft) (models.ClientDraft, error) {
	var err error
	set := fs.Changed

	if set(flagFirstName) {
		d.FirstName = f.firstName
	}
	if set(flagLastName) {
		d.LastName = f.lastName
	}
	if set(flagEmail) {
		d.Email = f.email
	}
	if set(flagPhone) {
		d.Phone = f.phone
	}
	if set(flagCompany) {
		d.Company = f.company
	}
	if set(flagEventType) {
		d.EventType = models.EventType(strings.ToLower(strings.TrimSpace(f.eventType)))
	}
	if set(flagStatus) {
		d.Status = models.Status(strings.ToLower(strings.TrimSpace(f.status)))
	}
	if set(flagNotes) {
		d.Notes = f.notes
	}
	if set(flagEventDate) {
		if d.EventDate, err = models.ParseOptionalDate(strings.TrimSpace(f.eventDate)); err != nil {
			return d, fmt.Errorf("%w: --%s: %w", ErrInvalidFlag, flagEventDate, err)
		}
	}
	if set(flagContactDate) {
		if d.ContactDate, err = models.ParseOptionalDate(strings.TrimSpace(f.contactDate)); err != nil {
			return d, fmt.Errorf("%w: --%s: %w", ErrInvalidFlag, flagContactDate, err)
		}
	}
	if set(flagBudget) {
		if d.Budget, err = models.ParseBudget(f.budget); err != nil {
			return d, fmt.Errorf("%w: --%s: %q", ErrInvalidFlag, flagBudget, f.budget)
		}
	}

	return d, nil
}

func joinValues[T ~string](values []T) string {
	s := make([]string, 0, len(values))
	for _, v := range values {
		s = append(s, string(v))
	}
	return strings.Join(s, ", ")
}
