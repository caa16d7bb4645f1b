// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/MKhiriev/bloom-crm/internal/app"
	"github.com/MKhiriev/bloom-crm/internal/service"
	"github.com/MKhiriev/bloom-crm/internal/validators"
	"github.com/MKhiriev/bloom-crm/models"
	"github.com/spf13/cobra"
)

func (c *commands) clientsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clients",
		Short: "Manage clients",
		Long:  `List, add, edit and delete clients.`,
	}

	cmd.AddCommand(c.clientsListCommand())
	cmd.AddCommand(c.clientsAddCommand())
	cmd.AddCommand(c.clientsEditCommand())
	cmd.AddCommand(c.clientsDeleteCommand())

	return cmd
}

func (c *commands) clientsListCommand() *cobra.Command {
	var (
		eventType string
		status    string
		asJSON    bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List clients",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			env, err := c.env()
			if err != nil {
				return err
			}

			clients, err := env.Manager.LoadAll(cmd.Context())
			if err != nil {
				return failure(err, app.MsgLoadFailed)
			}

			clients = filter(clients, models.EventType(strings.ToLower(eventType)), models.Status(strings.ToLower(status)))
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(clients)
			}
			return printClients(cmd.OutOrStdout(), clients)
		},
	}

	cmd.Flags().StringVar(&eventType, flagEventType, "", "only clients with this event type")
	cmd.Flags().StringVar(&status, flagStatus, "", "only clients with this status")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON instead of a table")

	return cmd
}

func (c *commands) clientsAddCommand() *cobra.Command {
	var flags *draftFlags

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a client",
		Example: `  bloom clients add --first-name Emma --last-name Stone \
    --event-type wedding --event-date 2025-06-14 --budget 2500`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			draft, err := flags.apply(cmd.Flags(), models.NewClientDraft())
			if err != nil {
				return err
			}

			env, err := c.env()
			if err != nil {
				return err
			}

			created, err := env.Manager.CreateRecord(cmd.Context(), draft)
			if err = writeOutcome(cmd, err, app.MsgSaveFailed); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s (ID: %s)\n", app.MsgClientAdded, created.FullName(), created.ID)
			return nil
		},
	}
	flags = bindDraftFlags(cmd.Flags())

	return cmd
}

func (c *commands) clientsEditCommand() *cobra.Command {
	var flags *draftFlags

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Change fields of a client",
		Long:  `Change the fields named by flags and keep the rest.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]

			env, err := c.env()
			if err != nil {
				return err
			}

			if _, err = env.Manager.LoadAll(cmd.Context()); err != nil {
				return failure(err, app.MsgLoadFailed)
			}
			current, ok := env.Manager.Record(id)
			if !ok {
				return fmt.Errorf("%s: %w: %s", app.MsgNotFound, service.ErrNotFound, id)
			}

			draft, err := flags.apply(cmd.Flags(), current.Draft())
			if err != nil {
				return err
			}

			updated, err := env.Manager.UpdateRecord(cmd.Context(), id, draft)
			if err = writeOutcome(cmd, err, app.MsgSaveFailed); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", app.MsgClientUpdated, updated.FullName())
			return nil
		},
	}
	flags = bindDraftFlags(cmd.Flags())

	return cmd
}

func (c *commands) clientsDeleteCommand() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a client",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]

			if !yes && !confirm(cmd.InOrStdin(), cmd.OutOrStdout(), app.MsgConfirmDelete) {
				fmt.Fprintln(cmd.OutOrStdout(), "Cancelled")
				return nil
			}

			env, err := c.env()
			if err != nil {
				return err
			}

			err = env.Manager.DeleteRecord(cmd.Context(), id)
			if err = writeOutcome(cmd, err, app.MsgDeleteFailed); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), app.MsgClientDeleted)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "do not ask for confirmation")

	return cmd
}

// writeOutcome turns a manager error into the command's error. A write
// that went through but whose reload failed only prints a warning.
func writeOutcome(cmd *cobra.Command, err error, fallback string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, service.ErrLoadFailed) &&
		!errors.Is(err, service.ErrSaveFailed) &&
		!errors.Is(err, service.ErrDeleteFailed) &&
		!errors.Is(err, service.ErrNotFound) {
		fmt.Fprintln(cmd.ErrOrStderr(), "warning: the client list could not be refreshed")
		return nil
	}
	return failure(err, fallback)
}

func failure(err error, fallback string) error {
	switch {
	case errors.Is(err, validators.ErrInvalidClientDraft):
		return err
	case errors.Is(err, service.ErrNotFound):
		return fmt.Errorf("%s: %w", app.MsgNotFound, err)
	default:
		return fmt.Errorf("%s: %w", fallback, err)
	}
}

func confirm(in io.Reader, out io.Writer, prompt string) bool {
	fmt.Fprintf(out, "%s [y/N] ", prompt)

	answer, _ := bufio.NewReader(in).ReadString('\n')
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	}
	return false
}

func filter(clients []models.Client, eventType models.EventType, status models.Status) []models.Client {
	out := clients[:0:0]
	for _, c := range clients {
		if eventType != "" && c.EventType != eventType {
			continue
		}
		if status != "" && c.Status != status {
			continue
		}
		out = append(out, c)
	}
	return out
}

func printClients(w io.Writer, clients []models.Client) error {
	if len(clients) == 0 {
		_, err := fmt.Fprintln(w, app.MsgNoClients)
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tEMAIL\tPHONE\tEVENT\tEVENT DATE\tSTATUS\tBUDGET")
	for _, c := range clients {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			c.ID,
			c.FullName(),
			orDash(c.Email),
			orDash(c.Phone),
			orDash(string(c.EventType)),
			orDash(models.DateString(c.EventDate)),
			c.Status,
			budgetString(c.Budget),
		)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "\nTotal: %d client(s)\n", len(clients))
	return err
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func budgetString(b *float64) string {
	if b == nil {
		return "-"
	}
	return fmt.Sprintf("%.2f", *b)
}
