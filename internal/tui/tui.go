// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/bloom-crm/internal/logger"
	tea "github.com/charmbracelet/bubbletea"
)

// ErrNoManager is returned by New when no ClientManager is given.
var ErrNoManager = errors.New("tui: no client manager")

type TUI struct {
	manager ClientManager
	logger  *logger.Logger
}

func New(manager ClientManager, logger *logger.Logger) (*TUI, error) {
	if manager == nil {
		return nil, ErrNoManager
	}
	return &TUI{manager: manager, logger: logger}, nil
}

// Run shows the client table and blocks until the user quits or ctx is
// cancelled. Cancellation is not an error.
func (t *TUI) Run(ctx context.Context, opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, opts...)

	_, err := tea.NewProgram(newModel(ctx, t.manager, t.logger), opts...).Run()
	if err != nil && ctx.Err() != nil && errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}
