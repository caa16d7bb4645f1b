// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/bloom-crm/internal/app"
	"github.com/MKhiriev/bloom-crm/internal/logger"
	"github.com/MKhiriev/bloom-crm/internal/service"
	"github.com/MKhiriev/bloom-crm/internal/validators"
	"github.com/MKhiriev/bloom-crm/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// noticeTTL is how long a notification stays on screen.
const noticeTTL = 3 * time.Second

type screen int

const (
	screenTable screen = iota
	screenDetail
	screenForm
	screenConfirm
)

type notice struct {
	text    string
	isError bool
	seq     int
}

type model struct {
	ctx       context.Context
	manager   ClientManager
	validator validators.Validator
	logger    *logger.Logger

	// clients is the last snapshot read from the manager.
	clients []models.Client
	query   tableQuery
	page    tablePage
	table   table.Model
	spinner spinner.Model

	screen screen
	form   clientForm
	// target is the client shown in the detail view or awaiting delete
	// confirmation.
	target models.Client

	// loading is true while a list load started by the UI is in flight.
	// The refresh key is ignored meanwhile.
	loading bool
	notice  notice

	copyToClipboard func(string) error
}

func newModel(ctx context.Context, manager ClientManager, logger *logger.Logger) model {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Name", Width: 22},
			{Title: "Contact", Width: 30},
			{Title: "Event Type", Width: 12},
			{Title: "Event Date", Width: 13},
			{Title: "Status", Width: 10},
			{Title: "Budget", Width: 12},
		}),
		table.WithFocused(true),
		table.WithHeight(pageSizes[0]+1),
	)

	m := model{
		ctx:             ctx,
		manager:         manager,
		validator:       validators.NewClientValidator(),
		logger:          logger,
		query:           tableQuery{pageSize: pageSizes[0]},
		table:           t,
		spinner:         s,
		loading:         true,
		copyToClipboard: clipboard.WriteAll,
	}
	m.clients = manager.Records()
	m.refreshRows()
	return m
}

func (m model) Init() tea.Cmd {
	return tea.Batch(m.cmdLoad(), m.spinner.Tick)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if !m.loading && !m.form.submitting {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case recordsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.logger.Err(msg.err).Str("func", "model.Update").Msg("failed to load clients")
			return m, m.setNotice(noticeForError(msg.err, app.MsgLoadFailed), true)
		}
		m.clients = msg.clients
		m.refreshRows()
		return m, nil

	case recordSavedMsg:
		return m.onSaved(msg)

	case recordDeletedMsg:
		return m.onDeleted(msg)

	case clearNoticeMsg:
		if msg.seq == m.notice.seq {
			m.notice = notice{seq: m.notice.seq}
		}
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		switch m.screen {
		case screenForm:
			return m.updateForm(msg)
		case screenConfirm:
			return m.updateConfirm(msg)
		case screenDetail:
			return m.updateDetail(msg)
		default:
			return m.updateTable(msg)
		}
	}

	if m.screen == screenForm {
		var cmd tea.Cmd
		m.form, cmd = m.form.update(msg)
		return m, cmd
	}
	return m, nil
}

func (m model) updateTable(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.up):
		m.table.MoveUp(1)
	case key.Matches(msg, keys.down):
		m.table.MoveDown(1)
	case key.Matches(msg, keys.prevPage):
		m.query.page--
		m.refreshRows()
		m.table.SetCursor(0)
	case key.Matches(msg, keys.nextPage):
		m.query.page++
		m.refreshRows()
		m.table.SetCursor(0)
	case key.Matches(msg, keys.enter):
		if c, ok := m.selected(); ok {
			m.target = c
			m.screen = screenDetail
		}
	case key.Matches(msg, keys.newItem):
		return m.openForm(nil)
	case key.Matches(msg, keys.edit):
		if c, ok := m.selected(); ok {
			return m.openForm(&c)
		}
	case key.Matches(msg, keys.delete):
		if c, ok := m.selected(); ok {
			m.target = c
			m.screen = screenConfirm
		}
	case key.Matches(msg, keys.refresh):
		if m.loading {
			return m, nil
		}
		m.loading = true
		return m, tea.Batch(m.cmdLoad(), m.spinner.Tick)
	case key.Matches(msg, keys.eventFilter):
		m.query.eventType = nextEventFilter(m.query.eventType)
		m.query.page = 0
		m.refreshRows()
	case key.Matches(msg, keys.statusFilter):
		m.query.status = nextStatusFilter(m.query.status)
		m.query.page = 0
		m.refreshRows()
	case key.Matches(msg, keys.sort):
		m.query.sortBy = m.query.sortBy.next()
		m.refreshRows()
	case key.Matches(msg, keys.sortOrder):
		m.query.descending = !m.query.descending
		m.refreshRows()
	case key.Matches(msg, keys.pageSize):
		m.query.pageSize = nextPageSize(m.query.size())
		m.query.page = 0
		m.table.SetHeight(m.query.size() + 1)
		m.refreshRows()
	case key.Matches(msg, keys.copyEmail):
		if c, ok := m.selected(); ok {
			return m, m.copyValue(c.Email)
		}
	case key.Matches(msg, keys.copyPhone):
		if c, ok := m.selected(); ok {
			return m, m.copyValue(c.Phone)
		}
	}
	return m, nil
}

func (m model) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.esc):
		m.screen = screenTable
	case key.Matches(msg, keys.edit):
		c := m.target
		return m.openForm(&c)
	case key.Matches(msg, keys.delete):
		m.screen = screenConfirm
	case key.Matches(msg, keys.copyEmail):
		return m, m.copyValue(m.target.Email)
	case key.Matches(msg, keys.copyPhone):
		return m, m.copyValue(m.target.Phone)
	}
	return m, nil
}

func (m model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.yes):
		m.screen = screenTable
		return m, m.cmdDelete(m.target.ID)
	case key.Matches(msg, keys.no):
		m.screen = screenTable
	}
	return m, nil
}

func (m model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.form.submitting {
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.esc):
		m.screen = screenTable
		return m, nil
	case key.Matches(msg, keys.tab):
		m.form.setFocus(m.form.focus + 1)
		return m, nil
	case key.Matches(msg, keys.backtab):
		m.form.setFocus(m.form.focus - 1)
		return m, nil
	case key.Matches(msg, keys.submit),
		key.Matches(msg, keys.enter) && m.form.focused().kind != kindNotes:
		return m.submitForm()
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.update(msg)
	return m, cmd
}

func (m model) openForm(client *models.Client) (tea.Model, tea.Cmd) {
	m.form = newClientForm(client)
	m.screen = screenForm
	return m, textinput.Blink
}

// submitForm validates locally and only then hands the draft to the
// manager. Invalid forms never reach the server.
func (m model) submitForm() (tea.Model, tea.Cmd) {
	draft, ok := m.form.validate(m.validator)
	if !ok {
		return m, m.setNotice(app.MsgFixErrors, true)
	}

	m.form.submitting = true
	return m, tea.Batch(m.cmdSave(m.form.id, draft), m.spinner.Tick)
}

func (m model) onSaved(msg recordSavedMsg) (tea.Model, tea.Cmd) {
	m.form.submitting = false

	var verr *validators.ValidationError
	switch {
	case msg.err == nil:
		m.screen = screenTable
		m.clients = m.manager.Records()
		m.refreshRows()
		text := app.MsgClientUpdated
		if msg.created {
			text = app.MsgClientAdded
		}
		return m, m.setNotice(text, false)

	case errors.As(msg.err, &verr):
		m.form.setErrors(verr.Fields)
		return m, m.setNotice(app.MsgFixErrors, true)

	case refreshOnly(msg.err):
		m.screen = screenTable
		m.clients = m.manager.Records()
		m.refreshRows()
		return m, m.setNotice(app.MsgSavedNotRefreshed, true)

	default:
		m.logger.Err(msg.err).Str("func", "model.onSaved").Msg("failed to save client")
		return m, m.setNotice(noticeForError(msg.err, app.MsgSaveFailed), true)
	}
}

func (m model) onDeleted(msg recordDeletedMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.err == nil:
		m.clients = m.manager.Records()
		m.refreshRows()
		return m, m.setNotice(app.MsgClientDeleted, false)

	case refreshOnly(msg.err):
		return m, m.setNotice(app.MsgDeletedNotRefreshed, true)

	case errors.Is(msg.err, service.ErrNotFound) && !m.loading:
		// someone else removed it; reload so the row disappears
		m.loading = true
		return m, tea.Batch(m.setNotice(app.MsgNotFound, true), m.cmdLoad())

	default:
		m.logger.Err(msg.err).Str("func", "model.onDeleted").Msg("failed to delete client")
		return m, m.setNotice(noticeForError(msg.err, app.MsgDeleteFailed), true)
	}
}

// refreshOnly reports whether a write went through and only the follow-up
// reload failed.
func refreshOnly(err error) bool {
	return errors.Is(err, service.ErrLoadFailed) &&
		!errors.Is(err, service.ErrSaveFailed) &&
		!errors.Is(err, service.ErrDeleteFailed) &&
		!errors.Is(err, service.ErrNotFound)
}

func (m *model) setNotice(text string, isError bool) tea.Cmd {
	seq := m.notice.seq + 1
	m.notice = notice{text: text, isError: isError, seq: seq}

	return tea.Tick(noticeTTL, func(time.Time) tea.Msg {
		return clearNoticeMsg{seq: seq}
	})
}

func (m *model) copyValue(v string) tea.Cmd {
	if v == "" {
		return m.setNotice(app.MsgNothingToCopy, true)
	}
	if err := m.copyToClipboard(v); err != nil {
		m.logger.Err(err).Str("func", "model.copyValue").Msg("clipboard write failed")
		return m.setNotice(app.MsgCopyFailed, true)
	}
	return m.setNotice(app.MsgCopied, false)
}

func (m model) selected() (models.Client, bool) {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.page.rows) {
		return models.Client{}, false
	}
	return m.page.rows[i], true
}

// refreshRows re-applies the query to the snapshot and feeds the table.
func (m *model) refreshRows() {
	m.page = m.query.apply(m.clients)
	m.query.page = m.page.page

	rows := make([]table.Row, 0, len(m.page.rows))
	for _, c := range m.page.rows {
		rows = append(rows, table.Row{
			c.FullName(),
			formatContact(c),
			formatTag(string(c.EventType)),
			formatDate(c.EventDate),
			formatTag(string(c.Status)),
			formatBudget(c.Budget),
		})
	}
	m.table.SetRows(rows)
	// a fresh table starts with the cursor at -1
	if c := m.table.Cursor(); c < 0 || c >= len(rows) {
		m.table.SetCursor(max(0, min(c, len(rows)-1)))
	}
}

func (m model) cmdLoad() tea.Cmd {
	ctx, manager := m.ctx, m.manager
	return func() tea.Msg {
		clients, err := manager.LoadAll(ctx)
		return recordsLoadedMsg{clients: clients, err: err}
	}
}

func (m model) cmdSave(id string, draft models.ClientDraft) tea.Cmd {
	ctx, manager := m.ctx, m.manager
	return func() tea.Msg {
		if id == "" {
			client, err := manager.CreateRecord(ctx, draft)
			return recordSavedMsg{client: client, created: true, err: err}
		}
		client, err := manager.UpdateRecord(ctx, id, draft)
		return recordSavedMsg{client: client, err: err}
	}
}

func (m model) cmdDelete(id string) tea.Cmd {
	ctx, manager := m.ctx, m.manager
	return func() tea.Msg {
		return recordDeletedMsg{err: manager.DeleteRecord(ctx, id)}
	}
}
