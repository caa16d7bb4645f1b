// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"context"

	"github.com/MKhiriev/bloom-crm/internal/config"
	"github.com/MKhiriev/bloom-crm/models"
)

// ClientManager is the part of *service.RecordManager the commands use.
type ClientManager interface {
	LoadAll(ctx context.Context) ([]models.Client, error)
	Record(id string) (models.Client, bool)
	CreateRecord(ctx context.Context, draft models.ClientDraft) (models.Client, error)
	UpdateRecord(ctx context.Context, id string, draft models.ClientDraft) (models.Client, error)
	DeleteRecord(ctx context.Context, id string) error
}

// Runner is the interactive front-end started by the root command.
type Runner interface {
	Run(ctx context.Context) error
}

// Env is what a command runs against.
type Env struct {
	Manager ClientManager
	UI      Runner
}

// Connector builds an Env from the merged client configuration. It is
// called lazily, so `bloom version` and `--help` work without a server.
type Connector func(cfg *config.ClientConfig) (*Env, error)
