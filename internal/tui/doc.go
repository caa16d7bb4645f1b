// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui is the terminal front-end of the CRM: a paged, filterable
// client table with add/edit forms, delete confirmation and transient
// notifications, built on bubbletea. All reads and writes go through a
// ClientManager.
package tui
