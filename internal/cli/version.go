// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *commands) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Build version: %s\n", c.info.BuildVersion())
			fmt.Fprintf(out, "Build date: %s\n", c.info.BuildDate())
			fmt.Fprintf(out, "Build commit: %s\n", c.info.BuildCommit())
		},
	}
}
