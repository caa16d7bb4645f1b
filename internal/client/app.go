// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"fmt"

	"github.com/MKhiriev/bloom-crm/internal/adapter"
	"github.com/MKhiriev/bloom-crm/internal/config"
	"github.com/MKhiriev/bloom-crm/internal/logger"
	"github.com/MKhiriev/bloom-crm/internal/service"
	"github.com/MKhiriev/bloom-crm/internal/tui"
	"github.com/MKhiriev/bloom-crm/internal/validators"
)

// App is the terminal client: the HTTP entity store, the record manager
// on top of it and the UI rendering the manager's records.
type App struct {
	manager *service.RecordManager
	ui      *tui.TUI
	logger  *logger.Logger
}

func NewApp(cfg *config.ClientConfig, logger *logger.Logger) (*App, error) {
	store, err := adapter.NewHTTPEntityStore(cfg.Adapter, cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("create entity store: %w", err)
	}

	manager := service.NewRecordManager(store, validators.NewClientValidator())

	ui, err := tui.New(manager, logger)
	if err != nil {
		return nil, fmt.Errorf("create ui: %w", err)
	}

	return &App{manager: manager, ui: ui, logger: logger}, nil
}

// Manager returns the record manager shared by the UI and the CLI.
func (a *App) Manager() *service.RecordManager {
	return a.manager
}

// Run shows the UI until the user quits or ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	ctx = a.logger.WithContext(ctx)

	a.logger.Info().Str("func", "*App.Run").Msg("client started")
	defer a.logger.Info().Str("func", "*App.Run").Msg("client stopped")

	return a.ui.Run(ctx)
}
