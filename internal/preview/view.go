package preview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View renders the gallery.
func (m Model) View() string {
	if len(m.names) == 0 {
		return "No components to preview.\n"
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top, m.viewSidebar(), m.viewDetail())

	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("woosign gallery · %s", m.provider.ColorScheme())))
	b.WriteString("\n")
	b.WriteString(body)
	b.WriteString("\n")
	if m.errMsg != "" {
		b.WriteString(errorStyle.Render(m.errMsg))
		b.WriteString("\n")
	}
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m Model) viewSidebar() string {
	lines := make([]string, 0, len(m.names))
	for i, name := range m.names {
		if i == m.cursor {
			lines = append(lines, selectedItemStyle.Render(name))
			continue
		}
		lines = append(lines, itemStyle.Render(name))
	}
	return sidebarStyle.Render(strings.Join(lines, "\n"))
}

func (m Model) viewDetail() string {
	e := m.Current()
	if e == nil {
		return ""
	}

	var lines []string
	lines = append(lines, activeStyle.Render(e.Name)+" "+labelStyle.Render(e.Description))

	sel := m.Selection()
	primary, _ := e.Part("")
	defaults := primary.Definition.Defaults()
	for i, axis := range e.Axes() {
		value := sel[axis]
		if value == "" {
			value = "(default"
			if d := defaults[axis]; d != "" {
				value += ": " + d
			}
			value += ")"
		}
		line := fmt.Sprintf("%s %s", labelStyle.Render(axis+":"), value)
		if i == m.axisCursor {
			line = activeStyle.Render("› ") + line
		} else {
			line = "  " + line
		}
		lines = append(lines, line)
	}

	flags := m.state.Names()
	state := "none"
	if len(flags) > 0 {
		state = strings.Join(flags, ", ")
	}
	lines = append(lines, labelStyle.Render("state: ")+state)

	if node, ok := m.Node(); ok {
		lines = append(lines, canvasStyle.Render(m.renderer.Render(node)))
	}

	return strings.Join(lines, "\n")
}
