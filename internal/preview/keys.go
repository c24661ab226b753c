package preview

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextAxis key.Binding
	PrevAxis key.Binding
	NextVal  key.Binding
	PrevVal  key.Binding
	Hover    key.Binding
	Focus    key.Binding
	Press    key.Binding
	Disable  key.Binding
	Load     key.Binding
	Check    key.Binding
	Reset    key.Binding
	Scheme   key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "previous component")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "next component")),
		NextAxis: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next axis")),
		PrevAxis: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous axis")),
		NextVal:  key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next value")),
		PrevVal:  key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "previous value")),
		Hover:    key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "hover")),
		Focus:    key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "focus")),
		Press:    key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "pressed")),
		Disable:  key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "disabled")),
		Load:     key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "loading")),
		Check:    key.NewBinding(key.WithKeys("x", " "), key.WithHelp("x", "checked")),
		Reset:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
		Scheme:   key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "toggle scheme")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Down, k.NextAxis, k.NextVal, k.Scheme, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextAxis, k.PrevAxis, k.NextVal, k.PrevVal},
		{k.Hover, k.Focus, k.Press, k.Disable, k.Load, k.Check},
		{k.Reset, k.Scheme, k.Help, k.Quit},
	}
}
