package preview

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/woosign/internal/components"
	"github.com/alexisbeaulieu97/woosign/pkg/variants"
)

// Update handles incoming messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp

	case key.Matches(msg, m.keys.Up):
		if len(m.names) > 0 {
			m.cursor = (m.cursor - 1 + len(m.names)) % len(m.names)
			m.axisCursor = 0
		}

	case key.Matches(msg, m.keys.Down):
		if len(m.names) > 0 {
			m.cursor = (m.cursor + 1) % len(m.names)
			m.axisCursor = 0
		}

	case key.Matches(msg, m.keys.NextAxis):
		m.moveAxis(1)

	case key.Matches(msg, m.keys.PrevAxis):
		m.moveAxis(-1)

	case key.Matches(msg, m.keys.NextVal):
		m.cycleValue(1)

	case key.Matches(msg, m.keys.PrevVal):
		m.cycleValue(-1)

	case key.Matches(msg, m.keys.Hover):
		m.state.Hovered = !m.state.Hovered

	case key.Matches(msg, m.keys.Focus):
		m.state.Focused = !m.state.Focused

	case key.Matches(msg, m.keys.Press):
		m.state.Pressed = !m.state.Pressed

	case key.Matches(msg, m.keys.Disable):
		m.state.Disabled = !m.state.Disabled

	case key.Matches(msg, m.keys.Load):
		m.state.Loading = !m.state.Loading

	case key.Matches(msg, m.keys.Check):
		m.state.Checked = !m.state.Checked

	case key.Matches(msg, m.keys.Reset):
		if e := m.Current(); e != nil {
			m.setSelection(e.Name, nil)
		}
		m.state = components.State{}

	case key.Matches(msg, m.keys.Scheme):
		scheme := m.provider.ToggleColorScheme()
		if err := m.rebuild(); err != nil {
			m.log.Error(err, "rebuild catalog")
			m.errMsg = err.Error()
			break
		}
		m.errMsg = ""
		m.log.With("scheme", string(scheme)).Debug("colour scheme toggled")
	}

	return m, nil
}

func (m *Model) moveAxis(delta int) {
	e := m.Current()
	if e == nil {
		return
	}
	axes := e.Axes()
	if len(axes) == 0 {
		return
	}
	m.axisCursor = (m.axisCursor + delta + len(axes)) % len(axes)
}

// cycleValue steps the focused axis through its values. The empty value,
// meaning "use the default", sits before the first declared value.
func (m *Model) cycleValue(delta int) {
	e := m.Current()
	if e == nil {
		return
	}
	axes := e.Axes()
	if len(axes) == 0 {
		return
	}
	axis := axes[m.axisCursor%len(axes)]
	options := append([]string{""}, e.AxisValues(axis)...)

	sel := m.selections[e.Name]
	current := 0
	for i, option := range options {
		if option == sel[axis] {
			current = i
			break
		}
	}
	next := options[(current+delta+len(options))%len(options)]

	updated := make(variants.Selection, len(sel)+1)
	for k, v := range sel {
		updated[k] = v
	}
	if next == "" {
		delete(updated, axis)
	} else {
		updated[axis] = next
	}
	m.setSelection(e.Name, updated)
}

// setSelection replaces the selection of component name, or removes it when
// sel is nil. The outer map is copied first so models returned by earlier
// Update calls keep their own selections.
func (m *Model) setSelection(name string, sel variants.Selection) {
	selections := make(map[string]variants.Selection, len(m.selections)+1)
	for k, v := range m.selections {
		selections[k] = v
	}
	if sel == nil {
		delete(selections, name)
	} else {
		selections[name] = sel
	}
	m.selections = selections
}
