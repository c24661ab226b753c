package components

import (
	"github.com/alexisbeaulieu97/woosign/internal/render"
	"github.com/alexisbeaulieu97/woosign/internal/theme"
	"github.com/alexisbeaulieu97/woosign/pkg/style"
	"github.com/alexisbeaulieu97/woosign/pkg/variants"
)

// InputProps configures a text input.
type InputProps struct {
	Variant     string
	Size        string
	Placeholder string
	Value       string
	// Type is the web input type; empty means "text".
	Type      string
	ReadOnly  bool
	FullWidth bool
	Style     style.Map
}

// InputStyles are the resolved styles of each input part.
type InputStyles struct {
	Container   style.Map
	Field       style.Map
	Placeholder string
}

// Input is a single-line text field.
type Input struct {
	palette   theme.Palette
	container *variants.Definition
	field     *variants.Definition
}

// NewInput compiles the input definitions for p.
func NewInput(p theme.Palette) *Input {
	return &Input{
		palette: p,
		container: variants.Define(variants.Config{
			Base: style.Map{
				"display":         "flex",
				"flexDirection":   "row",
				"alignItems":      "center",
				"borderRadius":    theme.Radius["md"],
				"borderWidth":     1,
				"borderColor":     p.Input,
				"backgroundColor": p.Background,
				"gap":             theme.Space(2),
			},
			Axes: []variants.Axis{
				{
					Name: "variant",
					Values: variants.Values{
						"default": {"borderColor": p.Input},
						"error":   {"borderColor": p.Destructive},
					},
				},
				{
					Name: "size",
					Values: variants.Values{
						"default": {"height": 40, "paddingLeft": theme.Space(3), "paddingRight": theme.Space(3)},
						"sm": {
							"height":       36,
							"paddingLeft":  theme.Space(2),
							"paddingRight": theme.Space(2),
							"borderRadius": theme.Radius["sm"],
						},
						"lg": {"height": 44, "paddingLeft": theme.Space(4), "paddingRight": theme.Space(4)},
					},
				},
			},
			Defaults: map[string]string{"variant": "default", "size": "default"},
		}),
		field: variants.Define(variants.Config{
			Base: style.Map{
				"fontWeight": theme.Weight("normal"),
				"fontSize":   theme.FontSizeOf("sm"),
				"color":      p.Foreground,
				"flex":       1,
			},
			Axes: []variants.Axis{
				{
					Name: "variant",
					Values: variants.Values{
						"default": {"color": p.Foreground},
						"error":   {"color": p.Foreground},
					},
				},
				{
					Name: "size",
					Values: variants.Values{
						"default": {"fontSize": theme.FontSizeOf("sm")},
						"sm":      {"fontSize": theme.FontSizeOf("xs")},
						"lg":      {"fontSize": theme.FontSizeOf("base")},
					},
				},
			},
			Defaults: map[string]string{"variant": "default", "size": "default"},
		}),
	}
}

// Parts returns the input definitions keyed by part name.
func (in *Input) Parts() []Part {
	return []Part{{Name: "container", Definition: in.container}, {Name: "field", Definition: in.field}}
}

// Styles resolves the input for props and state. Read-only inputs look
// disabled but can still take focus.
func (in *Input) Styles(props InputProps, s State) InputStyles {
	sel := variants.Selection{"variant": props.Variant, "size": props.Size}

	return InputStyles{
		Container: style.Merge(
			in.container.Resolve(sel),
			style.When(props.FullWidth, fullWidthStyle),
			style.When(s.Disabled || props.ReadOnly, style.Merge(disabledStyle, style.Map{"backgroundColor": in.palette.Muted})),
			style.When(s.Focused && !s.Disabled, style.Merge(focusRing(in.palette), style.Map{"borderColor": in.palette.Ring})),
			transitionStyle,
			props.Style,
		),
		Field: style.Merge(in.field.Resolve(sel), style.Map{
			"borderWidth":     0,
			"outline":         "none",
			"backgroundColor": "transparent",
			"padding":         0,
			"margin":          0,
			"width":           "100%",
			"fontFamily":      "inherit",
		}),
		Placeholder: in.palette.MutedForeground,
	}
}

// Node builds the input element tree. An empty value shows the placeholder.
func (in *Input) Node(props InputProps, s State) render.Node {
	styles := in.Styles(props, s)

	kind := props.Type
	if kind == "" {
		kind = "text"
	}
	attrs := map[string]string{"type": kind}
	if props.Placeholder != "" {
		attrs["placeholder"] = props.Placeholder
	}
	if props.Value != "" {
		attrs["value"] = props.Value
	}
	if s.Disabled {
		attrs["disabled"] = "disabled"
	}
	if props.ReadOnly {
		attrs["readonly"] = "readonly"
	}

	field := render.Node{Tag: "input", Role: "field", Attrs: attrs, Style: styles.Field}
	// Hosts without a native text field only see Text.
	field.Text = props.Value
	if field.Text == "" {
		field.Text = props.Placeholder
		field.Style = style.Merge(field.Style, style.Map{"color": styles.Placeholder})
	}

	return render.Node{Tag: "div", Role: "container", Style: styles.Container, Children: []render.Node{field}}
}
