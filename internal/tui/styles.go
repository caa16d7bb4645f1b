// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/lipgloss"

var (
	appStyle        = lipgloss.NewStyle().Padding(1, 2)
	titleStyle      = lipgloss.NewStyle().Bold(true)
	subtitleStyle   = lipgloss.NewStyle().Faint(true)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	labelStyle      = lipgloss.NewStyle().Width(14)
	focusedStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	requiredStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	fieldErrorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	errorStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	successStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)
)
