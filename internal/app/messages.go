// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app holds the user-facing messages shared by the terminal UI and
// the CLI, so both front-ends word every outcome the same way.
package app

// Success notifications.
const (
	MsgClientAdded   = "Client added successfully"
	MsgClientUpdated = "Client updated successfully"
	MsgClientDeleted = "Client deleted successfully"
	MsgCopied        = "Copied to clipboard"
)

// Failure notifications.
const (
	MsgLoadFailed    = "Failed to load clients"
	MsgSaveFailed    = "Failed to save client"
	MsgDeleteFailed  = "Failed to delete client"
	MsgNotFound      = "Client no longer exists"
	MsgCopyFailed    = "Failed to copy to clipboard"
	MsgNothingToCopy = "Nothing to copy"
	MsgNoClients     = "No clients"

	// MsgServerUnavailable replaces transport errors such as refused
	// connections and timeouts.
	MsgServerUnavailable = "Server is unavailable or the network is down"

	// MsgSavedNotRefreshed is shown when a write succeeded but the
	// follow-up reload of the list did not.
	MsgSavedNotRefreshed = "Saved, but the client list could not be refreshed"

	// MsgDeletedNotRefreshed is the delete counterpart of MsgSavedNotRefreshed.
	MsgDeletedNotRefreshed = "Deleted, but the client list could not be refreshed"

	// MsgFixErrors is shown when the form has invalid fields.
	MsgFixErrors = "Please fix the highlighted fields"
)

// Prompts.
const (
	MsgConfirmDelete = "Are you sure you want to delete this client?"
)
