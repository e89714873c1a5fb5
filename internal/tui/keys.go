package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up       key.Binding
	down     key.Binding
	left     key.Binding
	right    key.Binding
	enter    key.Binding
	esc      key.Binding
	tab      key.Binding
	backtab  key.Binding
	quit     key.Binding
	search   key.Binding
	filter   key.Binding
	clear    key.Binding
	like     key.Binding
	share    key.Binding
	featured key.Binding
	browse   key.Binding
	saved    key.Binding
	remove   key.Binding
	login    key.Binding
	logout   key.Binding
	refresh  key.Binding
}

var keys = keyMap{
	up:       key.NewBinding(key.WithKeys("up", "k")),
	down:     key.NewBinding(key.WithKeys("down", "j")),
	left:     key.NewBinding(key.WithKeys("left", "h")),
	right:    key.NewBinding(key.WithKeys("right", "l")),
	enter:    key.NewBinding(key.WithKeys("enter")),
	esc:      key.NewBinding(key.WithKeys("esc")),
	tab:      key.NewBinding(key.WithKeys("tab")),
	backtab:  key.NewBinding(key.WithKeys("shift+tab")),
	quit:     key.NewBinding(key.WithKeys("q", "ctrl+c")),
	search:   key.NewBinding(key.WithKeys("/")),
	filter:   key.NewBinding(key.WithKeys("f")),
	clear:    key.NewBinding(key.WithKeys("x")),
	like:     key.NewBinding(key.WithKeys("L", " ")),
	share:    key.NewBinding(key.WithKeys("c")),
	featured: key.NewBinding(key.WithKeys("2")),
	browse:   key.NewBinding(key.WithKeys("1")),
	saved:    key.NewBinding(key.WithKeys("3")),
	remove:   key.NewBinding(key.WithKeys("d")),
	login:    key.NewBinding(key.WithKeys("t")),
	logout:   key.NewBinding(key.WithKeys("O")),
	refresh:  key.NewBinding(key.WithKeys("r")),
}
