// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	left      key.Binding
	right     key.Binding
	moveLeft  key.Binding
	moveRight key.Binding
	enter     key.Binding
	esc       key.Binding
	tab       key.Binding
	backtab   key.Binding
	save      key.Binding
	quit      key.Binding
	forceQuit key.Binding
	newItem   key.Binding
	rename    key.Binding
	edit      key.Binding
	delete    key.Binding
	encrypt   key.Binding
	unlock    key.Binding
	lock      key.Binding
	hint      key.Binding
	askHint   key.Binding
	export    key.Binding
	importKey key.Binding
	campaign  key.Binding
	buildInfo key.Binding
	yes       key.Binding
	no        key.Binding
}

var keys = keyMap{
	left:      key.NewBinding(key.WithKeys("left", "h")),
	right:     key.NewBinding(key.WithKeys("right", "l")),
	moveLeft:  key.NewBinding(key.WithKeys("[")),
	moveRight: key.NewBinding(key.WithKeys("]")),
	enter:     key.NewBinding(key.WithKeys("enter")),
	esc:       key.NewBinding(key.WithKeys("esc")),
	tab:       key.NewBinding(key.WithKeys("tab")),
	backtab:   key.NewBinding(key.WithKeys("shift+tab")),
	save:      key.NewBinding(key.WithKeys("ctrl+s")),
	quit:      key.NewBinding(key.WithKeys("q")),
	forceQuit: key.NewBinding(key.WithKeys("ctrl+c")),
	newItem:   key.NewBinding(key.WithKeys("n")),
	rename:    key.NewBinding(key.WithKeys("r")),
	edit:      key.NewBinding(key.WithKeys("e", "enter")),
	delete:    key.NewBinding(key.WithKeys("d")),
	encrypt:   key.NewBinding(key.WithKeys("x")),
	unlock:    key.NewBinding(key.WithKeys("u")),
	lock:      key.NewBinding(key.WithKeys("L")),
	hint:      key.NewBinding(key.WithKeys("?")),
	askHint:   key.NewBinding(key.WithKeys("ctrl+g")),
	export:    key.NewBinding(key.WithKeys("c")),
	importKey: key.NewBinding(key.WithKeys("i")),
	campaign:  key.NewBinding(key.WithKeys("o")),
	buildInfo: key.NewBinding(key.WithKeys("v")),
	yes:       key.NewBinding(key.WithKeys("y")),
	no:        key.NewBinding(key.WithKeys("n")),
}
