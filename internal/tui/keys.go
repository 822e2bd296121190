package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up            key.Binding
	down          key.Binding
	enter         key.Binding
	esc           key.Binding
	tab           key.Binding
	backtab       key.Binding
	quit          key.Binding
	logout        key.Binding
	newItem       key.Binding
	find          key.Binding
	delete        key.Binding
	rename        key.Binding
	deleteAccount key.Binding
	copy          key.Binding
	yes           key.Binding
	no            key.Binding
}

var keys = keyMap{
	up:            key.NewBinding(key.WithKeys("up", "k")),
	down:          key.NewBinding(key.WithKeys("down", "j")),
	enter:         key.NewBinding(key.WithKeys("enter")),
	esc:           key.NewBinding(key.WithKeys("esc")),
	tab:           key.NewBinding(key.WithKeys("tab")),
	backtab:       key.NewBinding(key.WithKeys("shift+tab")),
	quit:          key.NewBinding(key.WithKeys("q")),
	logout:        key.NewBinding(key.WithKeys("l")),
	newItem:       key.NewBinding(key.WithKeys("n")),
	find:          key.NewBinding(key.WithKeys("f")),
	delete:        key.NewBinding(key.WithKeys("d")),
	rename:        key.NewBinding(key.WithKeys("r")),
	deleteAccount: key.NewBinding(key.WithKeys("X")),
	copy:          key.NewBinding(key.WithKeys("c")),
	yes:           key.NewBinding(key.WithKeys("y", "Y")),
	no:            key.NewBinding(key.WithKeys("n", "N", "esc")),
}
