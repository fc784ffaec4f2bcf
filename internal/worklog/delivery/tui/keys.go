package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up      key.Binding
	Down    key.Binding
	Select  key.Binding
	Filter  key.Binding
	Sort    key.Binding
	Order   key.Binding
	Refresh key.Binding
	Enter   key.Binding
	Preview key.Binding
	Next    key.Binding
	Prev    key.Binding
	Back    key.Binding
	Quit    key.Binding
	ForceQ  key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Select:  key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "select")),
		Filter:  key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "filter")),
		Sort:    key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sort by")),
		Order:   key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "order")),
		Refresh: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
		Enter:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "confirm")),
		Preview: key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "preview")),
		Next:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
		Prev:    key.NewBinding(key.WithKeys("shift+tab")),
		Back:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		Quit:    key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		ForceQ:  key.NewBinding(key.WithKeys("ctrl+c")),
	}
}

func (k keyMap) forMode(m mode) []key.Binding {
	switch m {
	case modeFilter:
		return []key.Binding{k.Enter, k.Back}
	case modeForm:
		return []key.Binding{k.Next, k.Preview, k.Enter, k.Back}
	case modePreview:
		return []key.Binding{k.Enter, k.Back}
	case modeResults:
		return []key.Binding{k.Back, k.Quit}
	default:
		return []key.Binding{k.Up, k.Down, k.Select, k.Filter, k.Sort, k.Order, k.Refresh, k.Enter, k.Quit}
	}
}
