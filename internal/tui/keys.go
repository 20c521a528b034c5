package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up        key.Binding
	down      key.Binding
	enter     key.Binding
	esc       key.Binding
	tab       key.Binding
	backtab   key.Binding
	quit      key.Binding
	logout    key.Binding
	reload    key.Binding
	dashboard key.Binding
	mapTab    key.Binding
	explorer  key.Binding
	filter    key.Binding
	compare   key.Binding
	clear     key.Binding
	toggle    key.Binding
	copy      key.Binding
	search    key.Binding
	favorites key.Binding
	ascend    key.Binding
	remove    key.Binding
	edit      key.Binding
}

var keys = keyMap{
	up:        key.NewBinding(key.WithKeys("up", "k")),
	down:      key.NewBinding(key.WithKeys("down", "j")),
	enter:     key.NewBinding(key.WithKeys("enter")),
	esc:       key.NewBinding(key.WithKeys("esc")),
	tab:       key.NewBinding(key.WithKeys("tab")),
	backtab:   key.NewBinding(key.WithKeys("shift+tab")),
	quit:      key.NewBinding(key.WithKeys("q")),
	logout:    key.NewBinding(key.WithKeys("L")),
	reload:    key.NewBinding(key.WithKeys("r")),
	dashboard: key.NewBinding(key.WithKeys("1")),
	mapTab:    key.NewBinding(key.WithKeys("2")),
	explorer:  key.NewBinding(key.WithKeys("3")),
	filter:    key.NewBinding(key.WithKeys("f")),
	compare:   key.NewBinding(key.WithKeys("c")),
	clear:     key.NewBinding(key.WithKeys("x")),
	toggle:    key.NewBinding(key.WithKeys(" ", "p")),
	copy:      key.NewBinding(key.WithKeys("y")),
	search:    key.NewBinding(key.WithKeys("/")),
	favorites: key.NewBinding(key.WithKeys("v")),
	ascend:    key.NewBinding(key.WithKeys("a")),
	remove:    key.NewBinding(key.WithKeys("d")),
	edit:      key.NewBinding(key.WithKeys("e")),
}
