package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the key bindings for the ordering client.
type keyMap struct {
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	Select    key.Binding
	Back      key.Binding
	Quit      key.Binding
	Cart      key.Binding
	History   key.Binding
	Search    key.Binding
	Filter    key.Binding
	Add       key.Binding
	Increase  key.Binding
	Decrease  key.Binding
	Remove    key.Binding
	Checkout  key.Binding
	Refresh   key.Binding
	NextField key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:      key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
		Right:     key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
		Select:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		Back:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		Quit:      key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
		Cart:      key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "cart")),
		History:   key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "past orders")),
		Search:    key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Filter:    key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "price filter")),
		Add:       key.NewBinding(key.WithKeys("a", "enter"), key.WithHelp("a", "add to cart")),
		Increase:  key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "more")),
		Decrease:  key.NewBinding(key.WithKeys("-", "_"), key.WithHelp("-", "fewer")),
		Remove:    key.NewBinding(key.WithKeys("x", "delete"), key.WithHelp("x", "remove")),
		Checkout:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "checkout")),
		Refresh:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
		NextField: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
	}
}
