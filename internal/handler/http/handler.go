// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"time"

	"github.com/MKhiriev/bloom-crm/internal/config"
	"github.com/MKhiriev/bloom-crm/internal/logger"
	"github.com/MKhiriev/bloom-crm/internal/service"
	"github.com/MKhiriev/bloom-crm/internal/utils"
)

type Handler struct {
	services *service.Services

	// hasher checks the HashSHA256 header of write requests. Disabled when
	// no hash key is configured.
	hasher *utils.Hasher

	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, serverCfg config.Server, appCfg config.App, logger *logger.Logger) *Handler {
	timeout := serverCfg.RequestTimeout
	if timeout <= 0 {
		timeout = config.DefaultRequestTimeout
	}

	logger.Info().Dur("request_timeout", timeout).Bool("hash_check", appCfg.HashKey != "").Msg("http handler created")
	return &Handler{
		services:       services,
		hasher:         utils.NewHasher(appCfg.HashKey),
		requestTimeout: timeout,
		logger:         logger,
	}
}
