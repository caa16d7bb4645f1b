// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package cli is the cobra command tree of the bloom client.
//
// Running bloom without a subcommand opens the terminal UI. The clients
// subcommands (list, add, edit, delete) go through the same ClientManager
// as the UI, so they validate and report failures the same way.
package cli
