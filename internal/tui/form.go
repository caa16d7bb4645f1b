// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/MKhiriev/bloom-crm/internal/validators"
	"github.com/MKhiriev/bloom-crm/models"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// msgInvalidBudget is shown when the budget input is not a number.
const msgInvalidBudget = "Please enter a number"

// JSON names of the free-text fields the validator has no rules for.
const (
	fieldPhone   = "phone"
	fieldCompany = "company"
	fieldNotes   = "notes"
)

type fieldKind int

const (
	kindText fieldKind = iota
	kindEventType
	kindStatus
	kindNotes
)

type formField struct {
	// name is the JSON name of the client field; validation errors are
	// keyed by it.
	name     string
	label    string
	kind     fieldKind
	required bool
}

// formFields is the form layout, top to bottom.
var formFields = []formField{
	{name: validators.FieldFirstName, label: "First Name", required: true},
	{name: validators.FieldLastName, label: "Last Name", required: true},
	{name: validators.FieldEmail, label: "Email"},
	{name: fieldPhone, label: "Phone"},
	{name: fieldCompany, label: "Company"},
	{name: validators.FieldEventType, label: "Event Type", kind: kindEventType},
	{name: validators.FieldEventDate, label: "Event Date"},
	{name: validators.FieldStatus, label: "Status", kind: kindStatus, required: true},
	{name: validators.FieldBudget, label: "Budget"},
	{name: validators.FieldContactDate, label: "Contact Date"},
	{name: fieldNotes, label: "Notes", kind: kindNotes},
}

// eventTypeOptions is the event type selector: "" (not set) first.
var eventTypeOptions = append([]models.EventType{""}, models.EventTypes...)

// clientForm edits one ClientDraft. Text fields are textinputs, event type
// and status are selectors cycled with left/right, notes is a textarea.
type clientForm struct {
	// id is empty for a new client.
	id string

	inputs    map[string]*textinput.Model
	notes     textarea.Model
	eventType int
	status    int
	// statuses are the status selector options: models.Statuses, led by the
	// stored value when it is not one of them.
	statuses []models.Status

	focus      int
	errors     map[string]string
	submitting bool
}

func newClientForm(client *models.Client) clientForm {
	f := clientForm{
		inputs: make(map[string]*textinput.Model),
		errors: map[string]string{},
	}

	for _, field := range formFields {
		if field.kind != kindText {
			continue
		}
		in := textinput.New()
		in.Width = 40
		in.CharLimit = 200
		in.Prompt = ""
		f.inputs[field.name] = &in
	}
	f.inputs[validators.FieldEventDate].Placeholder = models.DateLayout
	f.inputs[validators.FieldContactDate].Placeholder = models.DateLayout
	f.inputs[validators.FieldBudget].Placeholder = "0"

	f.notes = textarea.New()
	f.notes.SetWidth(40)
	f.notes.SetHeight(3)
	f.notes.ShowLineNumbers = false

	draft := models.NewClientDraft()
	if client != nil {
		f.id = client.ID
		draft = client.Draft()
	}
	f.fill(draft)
	f.setFocus(0)

	return f
}

func (f *clientForm) fill(d models.ClientDraft) {
	f.inputs[validators.FieldFirstName].SetValue(d.FirstName)
	f.inputs[validators.FieldLastName].SetValue(d.LastName)
	f.inputs[validators.FieldEmail].SetValue(d.Email)
	f.inputs[fieldPhone].SetValue(d.Phone)
	f.inputs[fieldCompany].SetValue(d.Company)
	f.inputs[validators.FieldEventDate].SetValue(models.DateString(d.EventDate))
	f.inputs[validators.FieldContactDate].SetValue(models.DateString(d.ContactDate))
	if d.Budget != nil {
		f.inputs[validators.FieldBudget].SetValue(strconv.FormatFloat(*d.Budget, 'f', -1, 64))
	}
	f.notes.SetValue(d.Notes)

	f.eventType = max(0, indexOf(eventTypeOptions, d.EventType))
	f.statuses = statusOptions(d.Status)
	f.status = max(0, indexOf(f.statuses, d.Status))
}

// statusOptions keeps a stored status that is not a known one selectable, so
// that saving the form reports it instead of replacing it.
func statusOptions(current models.Status) []models.Status {
	if indexOf(models.Statuses, current) >= 0 {
		return models.Statuses
	}
	return append([]models.Status{current}, models.Statuses...)
}

func indexOf[T comparable](options []T, v T) int {
	for i, o := range options {
		if o == v {
			return i
		}
	}
	return -1
}

func (f clientForm) editing() bool {
	return f.id != ""
}

func (f clientForm) focused() formField {
	return formFields[f.focus]
}

func (f *clientForm) setFocus(i int) {
	n := len(formFields)
	f.focus = ((i % n) + n) % n

	for name, in := range f.inputs {
		if name == f.focused().name {
			in.Focus()
		} else {
			in.Blur()
		}
	}
	if f.focused().kind == kindNotes {
		f.notes.Focus()
	} else {
		f.notes.Blur()
	}
}

func (f *clientForm) cycle(delta int) {
	switch f.focused().kind {
	case kindEventType:
		n := len(eventTypeOptions)
		f.eventType = ((f.eventType+delta)%n + n) % n
	case kindStatus:
		n := len(f.statuses)
		f.status = ((f.status+delta)%n + n) % n
	}
}

// update routes a key or blink message to the focused field.
func (f clientForm) update(msg tea.Msg) (clientForm, tea.Cmd) {
	field := f.focused()

	if keyMsg, ok := msg.(tea.KeyMsg); ok && (field.kind == kindEventType || field.kind == kindStatus) {
		switch keyMsg.String() {
		case "left", "h":
			f.cycle(-1)
		case "right", "l", " ":
			f.cycle(1)
		}
		return f, nil
	}

	var cmd tea.Cmd
	switch field.kind {
	case kindNotes:
		f.notes, cmd = f.notes.Update(msg)
	case kindText:
		in := f.inputs[field.name]
		*in, cmd = in.Update(msg)
	}
	return f, cmd
}

// draft reads the inputs into a ClientDraft. Dates and budget are parsed
// here; parse failures are returned per field.
func (f clientForm) draft() (models.ClientDraft, map[string]string) {
	errs := map[string]string{}
	value := func(name string) string {
		return strings.TrimSpace(f.inputs[name].Value())
	}

	draft := models.ClientDraft{
		FirstName: value(validators.FieldFirstName),
		LastName:  value(validators.FieldLastName),
		Email:     value(validators.FieldEmail),
		Phone:     value(fieldPhone),
		Company:   value(fieldCompany),
		EventType: eventTypeOptions[f.eventType],
		Status:    f.statuses[f.status],
		Notes:     strings.TrimSpace(f.notes.Value()),
	}

	var err error
	if draft.EventDate, err = models.ParseOptionalDate(value(validators.FieldEventDate)); err != nil {
		errs[validators.FieldEventDate] = validators.MsgInvalidDate
	}
	if draft.ContactDate, err = models.ParseOptionalDate(value(validators.FieldContactDate)); err != nil {
		errs[validators.FieldContactDate] = validators.MsgInvalidDate
	}
	if draft.Budget, err = models.ParseBudget(value(validators.FieldBudget)); err != nil {
		errs[validators.FieldBudget] = msgInvalidBudget
	}

	return draft, errs
}

// validate parses and validates the form without contacting the server.
// On failure the field errors are stored on the form and ok is false.
func (f *clientForm) validate(validator validators.Validator) (models.ClientDraft, bool) {
	draft, errs := f.draft()

	if err := validator.Validate(context.Background(), draft); err != nil {
		var verr *validators.ValidationError
		if errors.As(err, &verr) {
			for name, msg := range verr.Fields {
				if _, ok := errs[name]; !ok {
					errs[name] = msg
				}
			}
		}
	}

	f.errors = errs
	return draft, len(errs) == 0
}

func (f *clientForm) setErrors(fields map[string]string) {
	f.errors = fields
}

func (f clientForm) fieldValue(field formField) string {
	switch field.kind {
	case kindEventType:
		if eventTypeOptions[f.eventType] == "" {
			return "‹ not set ›"
		}
		return "‹ " + capitalize(string(eventTypeOptions[f.eventType])) + " ›"
	case kindStatus:
		s := f.statuses[f.status]
		switch {
		case s == "":
			return "‹ not set ›"
		case indexOf(models.Statuses, s) < 0:
			return "‹ " + string(s) + " (unknown) ›"
		}
		return "‹ " + capitalize(string(s)) + " ›"
	case kindNotes:
		return f.notes.View()
	default:
		return f.inputs[field.name].View()
	}
}

func (f clientForm) View() string {
	title := "Add New Client"
	if f.editing() {
		title = "Edit Client"
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n\n")

	for i, field := range formFields {
		label := field.label
		if field.required {
			label = requiredStyle.Render("*") + " " + label
		} else {
			label = "  " + label
		}
		if i == f.focus {
			label = focusedStyle.Render(label)
		}

		b.WriteString(labelStyle.Render(label))
		b.WriteString(" ")
		b.WriteString(f.fieldValue(field))
		b.WriteString("\n")
		if msg, ok := f.errors[field.name]; ok {
			b.WriteString(labelStyle.Render(""))
			b.WriteString(" ")
			b.WriteString(fieldErrorStyle.Render(msg))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	if f.submitting {
		b.WriteString(subtitleStyle.Render("Saving..."))
	} else {
		b.WriteString(helpStyle.Render("tab/shift+tab field  ←/→ choose  enter/ctrl+s save  esc cancel"))
	}
	return b.String()
}
