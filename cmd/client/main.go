// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/bloom-crm/internal/cli"
	"github.com/MKhiriev/bloom-crm/internal/client"
	"github.com/MKhiriev/bloom-crm/internal/config"
	"github.com/MKhiriev/bloom-crm/internal/logger"
	"github.com/MKhiriev/bloom-crm/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	log := logger.NewClientLogger("bloom-client")

	connect := func(cfg *config.ClientConfig) (*cli.Env, error) {
		log.Debug().Any("config", cfg).Msg("received configs")

		app, err := client.NewApp(cfg, log)
		if err != nil {
			return nil, fmt.Errorf("init client app error: %w", err)
		}
		return &cli.Env{Manager: app.Manager(), UI: app}, nil
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := cli.Execute(ctx, connect, buildInfo())
	stop()

	if err != nil {
		log.Err(err).Msg("client run error")
		os.Exit(1)
	}
}

func buildInfo() models.AppBuildInfo {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	return models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
}
