// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/bloom-crm/internal/app"
	"github.com/MKhiriev/bloom-crm/models"
	"github.com/charmbracelet/lipgloss"
)

const (
	appTitle    = "Client CRM"
	appSubtitle = "Manage your floral shop clients"

	tableHelp  = "↑/↓ move  ←/→ page  enter details  n add  e edit  d delete  r refresh  f event  s status  o sort  O order  p page size  c/x copy  q quit"
	detailHelp = "e edit  d delete  c copy email  x copy phone  esc back  q quit"
)

func (m model) View() string {
	var body string
	switch m.screen {
	case screenForm:
		body = m.form.View()
	case screenConfirm:
		body = m.confirmView()
	case screenDetail:
		body = m.detailView()
	default:
		body = m.tableView()
	}

	if n := m.noticeView(); n != "" {
		body += "\n\n" + n
	}
	return appStyle.Render(body)
}

func (m model) header() string {
	return titleStyle.Render(appTitle) + "\n" + subtitleStyle.Render(appSubtitle)
}

func (m model) tableView() string {
	var b strings.Builder
	b.WriteString(m.header())
	b.WriteString("\n\n")
	b.WriteString(m.queryLine())
	b.WriteString("\n\n")

	switch {
	case m.loading && len(m.clients) == 0:
		b.WriteString(m.spinner.View() + " Loading clients...")
	case m.page.matched == 0:
		b.WriteString(subtitleStyle.Render(app.MsgNoClients))
	default:
		b.WriteString(m.table.View())
		if m.loading {
			b.WriteString("\n" + m.spinner.View() + " Refreshing...")
		}
	}

	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render(tableHelp))
	return b.String()
}

func (m model) queryLine() string {
	order := "↑"
	if m.query.descending {
		order = "↓"
	}
	sortBy := m.query.sortBy.String()
	if m.query.sortBy != sortNone {
		sortBy += " " + order
	}

	return helpStyle.Render(fmt.Sprintf(
		"Event: %s  Status: %s  Sort: %s  Page %d/%d  %d per page  (%d of %d clients)",
		eventTypeLabel(m.query.eventType),
		statusLabel(m.query.status),
		sortBy,
		m.page.page+1, m.page.pages,
		m.query.size(),
		m.page.matched, len(m.clients),
	))
}

func (m model) detailView() string {
	c := m.target

	rows := [][2]string{
		{"Email", orDash(c.Email)},
		{"Phone", orDash(c.Phone)},
		{"Company", orDash(c.Company)},
		{"Event Type", orDash(capitalize(string(c.EventType)))},
		{"Event Date", formatDate(c.EventDate)},
		{"Status", capitalize(string(c.Status))},
		{"Budget", formatBudget(c.Budget)},
		{"Contact Date", formatDate(c.ContactDate)},
		{"Notes", orDash(c.Notes)},
	}
	if !c.CreatedAt.IsZero() {
		rows = append(rows, [2]string{"Created", c.CreatedAt.Local().Format(displayDateLayout)})
	}
	if !c.UpdatedAt.IsZero() {
		rows = append(rows, [2]string{"Updated", c.UpdatedAt.Local().Format(displayDateLayout)})
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(c.FullName()))
	b.WriteString("\n\n")
	for _, r := range rows {
		b.WriteString(labelStyle.Render(r[0]))
		b.WriteString(" ")
		b.WriteString(r[1])
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(detailHelp))
	return b.String()
}

func (m model) confirmView() string {
	box := overlayBoxStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("Delete Client"),
		"",
		app.MsgConfirmDelete,
		"",
		focusedStyle.Render(fitText(describe(m.target), 50)),
		"",
		helpStyle.Render("y yes  n/esc no"),
	))
	return m.header() + "\n\n" + box
}

// describe is the one-line summary shown in the delete confirmation.
func describe(c models.Client) string {
	s := c.FullName()
	if c.Company != "" {
		s += " (" + c.Company + ")"
	}
	return s
}

func (m model) noticeView() string {
	if m.notice.text == "" {
		return ""
	}
	if m.notice.isError {
		return errorStyle.Render(m.notice.text)
	}
	return successStyle.Render(m.notice.text)
}
