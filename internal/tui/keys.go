// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up           key.Binding
	down         key.Binding
	prevPage     key.Binding
	nextPage     key.Binding
	enter        key.Binding
	esc          key.Binding
	tab          key.Binding
	backtab      key.Binding
	submit       key.Binding
	quit         key.Binding
	newItem      key.Binding
	edit         key.Binding
	delete       key.Binding
	refresh      key.Binding
	eventFilter  key.Binding
	statusFilter key.Binding
	sort         key.Binding
	sortOrder    key.Binding
	pageSize     key.Binding
	copyEmail    key.Binding
	copyPhone    key.Binding
	yes          key.Binding
	no           key.Binding
}

var keys = keyMap{
	up:           key.NewBinding(key.WithKeys("up", "k")),
	down:         key.NewBinding(key.WithKeys("down", "j")),
	prevPage:     key.NewBinding(key.WithKeys("left", "h", "pgup")),
	nextPage:     key.NewBinding(key.WithKeys("right", "l", "pgdown")),
	enter:        key.NewBinding(key.WithKeys("enter")),
	esc:          key.NewBinding(key.WithKeys("esc")),
	tab:          key.NewBinding(key.WithKeys("tab")),
	backtab:      key.NewBinding(key.WithKeys("shift+tab")),
	submit:       key.NewBinding(key.WithKeys("ctrl+s")),
	quit:         key.NewBinding(key.WithKeys("q", "ctrl+c")),
	newItem:      key.NewBinding(key.WithKeys("n", "a")),
	edit:         key.NewBinding(key.WithKeys("e")),
	delete:       key.NewBinding(key.WithKeys("d", "ctrl+d")),
	refresh:      key.NewBinding(key.WithKeys("r")),
	eventFilter:  key.NewBinding(key.WithKeys("f")),
	statusFilter: key.NewBinding(key.WithKeys("s")),
	sort:         key.NewBinding(key.WithKeys("o")),
	sortOrder:    key.NewBinding(key.WithKeys("O")),
	pageSize:     key.NewBinding(key.WithKeys("p")),
	copyEmail:    key.NewBinding(key.WithKeys("c")),
	copyPhone:    key.NewBinding(key.WithKeys("x")),
	yes:          key.NewBinding(key.WithKeys("y")),
	no:           key.NewBinding(key.WithKeys("n", "esc")),
}
