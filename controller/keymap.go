package controller

import "github.com/charmbracelet/bubbles/key"

// KeyMap is the controller's default key-to-action table. It is
// deliberately smaller than iw2rmb-flourish/editor/keymap.go's KeyMap:
// only the bindings the spec's minimal default mapping names get a key —
// undo, redo, copy, cut, paste, shift-select, and word motion have no
// default binding and are only reachable through the Controller's
// programmatic methods.
type KeyMap struct {
	Escape key.Binding
	Enter  key.Binding

	Left, Right, Up, Down key.Binding
	Home, End             key.Binding

	Backspace, Delete key.Binding
}

// DefaultKeyMap returns the bindings HandleInput matches against.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Escape: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		Enter:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "newline")),

		Left:  key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "left")),
		Right: key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "right")),
		Up:    key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
		Down:  key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),

		Home: key.NewBinding(key.WithKeys("home", "ctrl+a"), key.WithHelp("home", "line start")),
		End:  key.NewBinding(key.WithKeys("end", "ctrl+e"), key.WithHelp("end", "line end")),

		Backspace: key.NewBinding(key.WithKeys("backspace", "ctrl+h"), key.WithHelp("backspace", "delete left")),
		Delete:    key.NewBinding(key.WithKeys("delete"), key.WithHelp("del", "delete right")),
	}
}
