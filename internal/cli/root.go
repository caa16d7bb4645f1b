// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/bloom-crm/internal/config"
	"github.com/MKhiriev/bloom-crm/models"
	"github.com/spf13/cobra"
)

var ErrNoConnector = errors.New("cli: no connector")

type commands struct {
	connect Connector
	info    models.AppBuildInfo

	// flagCfg is filled by cobra when the persistent flags are parsed.
	flagCfg *config.StructuredConfig
}

// NewRootCommand returns the bloom command tree.
func NewRootCommand(connect Connector, info models.AppBuildInfo) *cobra.Command {
	c := &commands{connect: connect, info: info}

	root := &cobra.Command{
		Use:   "bloom",
		Short: "Client CRM for a floral shop",
		Long: `bloom manages the clients of a floral shop.

Without a subcommand it opens the interactive terminal UI.
Use the clients subcommands for scripting.`,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE:         c.runTUI,
	}
	c.flagCfg = config.BindClientFlags(root.PersistentFlags())

	root.AddCommand(c.clientsCommand())
	root.AddCommand(c.versionCommand())

	return root
}

// Execute runs the command tree with os.Args.
func Execute(ctx context.Context, connect Connector, info models.AppBuildInfo) error {
	return NewRootCommand(connect, info).ExecuteContext(ctx)
}

func (c *commands) env() (*Env, error) {
	if c.connect == nil {
		return nil, ErrNoConnector
	}

	cfg, err := config.GetClientConfig(c.flagCfg)
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}
	return c.connect(cfg)
}

func (c *commands) runTUI(cmd *cobra.Command, _ []string) error {
	env, err := c.env()
	if err != nil {
		return err
	}
	return env.UI.Run(cmd.Context())
}
