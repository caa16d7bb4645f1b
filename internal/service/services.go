// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/bloom-crm/internal/config"
	"github.com/MKhiriev/bloom-crm/internal/logger"
	"github.com/MKhiriev/bloom-crm/internal/store"
	"github.com/MKhiriev/bloom-crm/internal/utils"
)

// Services groups the server-side services.
type Services struct {
	ClientService  ClientService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, storages.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	core := NewClientService(storages.ClientRepository, storages.ClientListCache, utils.NewUUIDGenerator(), logger)

	return &Services{
		ClientService:  NewClientValidationService().Wrap(core),
		AppInfoService: appInfo,
	}, nil
}
