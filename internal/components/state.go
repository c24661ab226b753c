// Package components implements the design-system primitives. Each component
// compiles its variant definitions once per palette, layers interaction
// fragments over the resolved variant styles and produces a render.Node tree
// for the host renderer.
package components

import (
	"fmt"
	"strings"

	"github.com/alexisbeaulieu97/woosign/internal/theme"
	apperrors "github.com/alexisbeaulieu97/woosign/pkg/errors"
	"github.com/alexisbeaulieu97/woosign/pkg/style"
)

// State carries the interaction flags a host reports for a component.
type State struct {
	Hovered  bool
	Focused  bool
	Pressed  bool
	Disabled bool
	Loading  bool
	Checked  bool
}

// StateNames lists the flag names accepted by ParseState.
var StateNames = []string{"hover", "focus", "pressed", "disabled", "loading", "checked"}

// ParseState builds a State from flag names such as "hover" or "disabled".
// Blank names are skipped.
func ParseState(names ...string) (State, error) {
	var s State
	for _, raw := range names {
		name := strings.ToLower(strings.TrimSpace(raw))
		switch name {
		case "":
		case "hover", "hovered":
			s.Hovered = true
		case "focus", "focused":
			s.Focused = true
		case "pressed", "press":
			s.Pressed = true
		case "disabled":
			s.Disabled = true
		case "loading":
			s.Loading = true
		case "checked", "on":
			s.Checked = true
		default:
			return State{}, apperrors.NewValidationError("state", fmt.Sprintf("unknown state %q (want one of %s)", raw, strings.Join(StateNames, ", ")), nil)
		}
	}
	return s, nil
}

// Names returns the flags set in s, in StateNames order.
func (s State) Names() []string {
	flags := []bool{s.Hovered, s.Focused, s.Pressed, s.Disabled, s.Loading, s.Checked}
	var out []string
	for i, set := range flags {
		if set {
			out = append(out, StateNames[i])
		}
	}
	return out
}

var (
	disabledStyle   = style.Map{"opacity": 0.5}
	transitionStyle = style.Map{"transition": "all 150ms ease"}
	fullWidthStyle  = style.Map{"width": "100%"}
)

func focusRing(p theme.Palette) style.Map {
	return style.Map{
		"outline":   "none",
		"boxShadow": fmt.Sprintf("0 0 0 2px %s, 0 0 0 4px %s", p.Background, p.Ring),
	}
}

func pressedScale(scale float64) style.Map {
	return style.Map{
		"opacity":   0.9,
		"transform": []style.Map{{"scale": scale}},
	}
}

func cursor(inactive bool) style.Map {
	if inactive {
		return style.Map{"cursor": "not-allowed"}
	}
	return style.Map{"cursor": "pointer"}
}
