package components

import (
	"github.com/alexisbeaulieu97/woosign/internal/render"
	"github.com/alexisbeaulieu97/woosign/internal/theme"
	"github.com/alexisbeaulieu97/woosign/pkg/style"
	"github.com/alexisbeaulieu97/woosign/pkg/variants"
)

// ButtonProps configures a button.
type ButtonProps struct {
	Variant   string
	Size      string
	Label     string
	FullWidth bool
	Style     style.Map
}

// ButtonStyles are the resolved styles of each button part.
type ButtonStyles struct {
	Container style.Map
	Label     style.Map
	Spinner   style.Map
}

// Button is a pressable action.
type Button struct {
	palette   theme.Palette
	container *variants.Definition
	label     *variants.Definition
	hover     map[string]style.Map
}

// NewButton compiles the button definitions for p.
func NewButton(p theme.Palette) *Button {
	return &Button{
		palette: p,
		container: variants.Define(variants.Config{
			Base: style.Map{
				"display":        "flex",
				"flexDirection":  "row",
				"alignItems":     "center",
				"justifyContent": "center",
				"borderRadius":   theme.Radius["md"],
				"borderWidth":    0,
				"gap":            theme.Space(2),
			},
			Axes: []variants.Axis{
				{
					Name: "variant",
					Values: variants.Values{
						"default":     {"backgroundColor": p.Primary},
						"destructive": {"backgroundColor": p.Destructive},
						"outline":     {"backgroundColor": "transparent", "borderWidth": 1, "borderColor": p.Input},
						"secondary":   {"backgroundColor": p.Secondary},
						"ghost":       {"backgroundColor": "transparent"},
						"link":        {"backgroundColor": "transparent"},
					},
				},
				{
					Name: "size",
					Values: variants.Values{
						"default": {
							"height":        40,
							"paddingLeft":   theme.Space(4),
							"paddingRight":  theme.Space(4),
							"paddingTop":    theme.Space(2),
							"paddingBottom": theme.Space(2),
						},
						"sm": {
							"height":       36,
							"paddingLeft":  theme.Space(3),
							"paddingRight": theme.Space(3),
							"borderRadius": theme.Radius["sm"],
						},
						"lg": {
							"height":       44,
							"paddingLeft":  theme.Space(8),
							"paddingRight": theme.Space(8),
						},
						"icon": {
							"height":        40,
							"width":         40,
							"paddingLeft":   0,
							"paddingRight":  0,
							"paddingTop":    0,
							"paddingBottom": 0,
						},
					},
				},
			},
			Defaults: map[string]string{"variant": "default", "size": "default"},
		}),
		label: variants.Define(variants.Config{
			Base: style.Map{
				"fontWeight": theme.Weight("medium"),
				"fontSize":   theme.FontSizeOf("sm"),
				"textAlign":  "center",
			},
			Axes: []variants.Axis{
				{
					Name: "variant",
					Values: variants.Values{
						"default":     {"color": p.PrimaryForeground},
						"destructive": {"color": p.DestructiveForeground},
						"outline":     {"color": p.Foreground},
						"secondary":   {"color": p.SecondaryForeground},
						"ghost":       {"color": p.Foreground},
						"link":        {"color": p.Primary, "textDecorationLine": "underline"},
					},
				},
				{
					Name: "size",
					Values: variants.Values{
						"default": {"fontSize": theme.FontSizeOf("sm")},
						"sm":      {"fontSize": theme.FontSizeOf("xs")},
						"lg":      {"fontSize": theme.FontSizeOf("base")},
						"icon":    {"fontSize": theme.FontSizeOf("sm")},
					},
				},
			},
			Defaults: map[string]string{"variant": "default", "size": "default"},
		}),
		hover: map[string]style.Map{
			"default":     {"opacity": 0.9},
			"destructive": {"opacity": 0.9},
			"outline":     {"backgroundColor": p.Accent},
			"secondary":   {"opacity": 0.8},
			"ghost":       {"backgroundColor": p.Accent},
			"link":        {"textDecoration": "underline"},
		},
	}
}

// Parts returns the button definitions keyed by part name.
func (b *Button) Parts() []Part {
	return []Part{{Name: "container", Definition: b.container}, {Name: "label", Definition: b.label}}
}

// Styles resolves the button for props and state. A loading button is
// rendered like a disabled one.
func (b *Button) Styles(props ButtonProps, s State) ButtonStyles {
	sel := variants.Selection{"variant": props.Variant, "size": props.Size}
	variant := b.container.Effective(sel)["variant"]
	inactive := s.Disabled || s.Loading

	return ButtonStyles{
		Container: style.Merge(
			b.container.Resolve(sel),
			style.When(props.FullWidth, fullWidthStyle),
			style.When(inactive, disabledStyle),
			cursor(inactive),
			style.When(s.Hovered && !inactive, b.hover[variant]),
			style.When(s.Focused && !s.Disabled, focusRing(b.palette)),
			style.When(s.Pressed && !s.Disabled, pressedScale(0.98)),
			transitionStyle,
			props.Style,
		),
		Label:   style.Merge(b.label.Resolve(sel), style.Map{"margin": 0, "padding": 0}),
		Spinner: style.Map{"color": b.spinnerColor(variant), "width": 16, "height": 16},
	}
}

func (b *Button) spinnerColor(variant string) string {
	switch variant {
	case "default", "destructive":
		return b.palette.PrimaryForeground
	default:
		return b.palette.Foreground
	}
}

// Node builds the button element tree. While loading, the label is replaced
// by a spinner.
func (b *Button) Node(props ButtonProps, s State) render.Node {
	styles := b.Styles(props, s)

	attrs := map[string]string{"type": "button"}
	if s.Disabled || s.Loading {
		attrs["disabled"] = "disabled"
	}

	n := render.Node{Tag: "button", Role: "container", Attrs: attrs, Style: styles.Container}
	switch {
	case s.Loading:
		n.Children = []render.Node{{
			Tag:   "span",
			Role:  "spinner",
			Text:  "…",
			Attrs: map[string]string{"aria-busy": "true"},
			Style: styles.Spinner,
		}}
	case props.Label != "":
		n.Children = []render.Node{{Tag: "span", Role: "label", Text: props.Label, Style: styles.Label}}
	}
	return n
}
