package components

import (
	"github.com/alexisbeaulieu97/woosign/internal/render"
	"github.com/alexisbeaulieu97/woosign/internal/theme"
	"github.com/alexisbeaulieu97/woosign/pkg/style"
	"github.com/alexisbeaulieu97/woosign/pkg/variants"
)

// BadgeProps configures a badge.
type BadgeProps struct {
	Variant string
	Label   string
	Style   style.Map
}

// BadgeStyles are the resolved styles of each badge part.
type BadgeStyles struct {
	Container style.Map
	Label     style.Map
}

// Badge is a small status label.
type Badge struct {
	container *variants.Definition
	label     *variants.Definition
	hover     map[string]style.Map
}

// NewBadge compiles the badge definitions for p.
func NewBadge(p theme.Palette) *Badge {
	return &Badge{
		container: variants.Define(variants.Config{
			Base: style.Map{
				"display":        "flex",
				"flexDirection":  "row",
				"alignItems":     "center",
				"justifyContent": "center",
				"borderRadius":   theme.Radius["full"],
				"paddingLeft":    theme.Space(2.5),
				"paddingRight":   theme.Space(2.5),
				"paddingTop":     theme.Space(0.5),
				"paddingBottom":  theme.Space(0.5),
				"borderWidth":    1,
				"borderColor":    "transparent",
			},
			Axes: []variants.Axis{{
				Name: "variant",
				Values: variants.Values{
					"default":     {"backgroundColor": p.Primary, "borderColor": "transparent"},
					"secondary":   {"backgroundColor": p.Secondary, "borderColor": "transparent"},
					"destructive": {"backgroundColor": p.Destructive, "borderColor": "transparent"},
					"outline":     {"backgroundColor": "transparent", "borderColor": p.Border},
				},
			}},
			Defaults: map[string]string{"variant": "default"},
		}),
		label: variants.Define(variants.Config{
			Base: style.Map{
				"fontWeight": theme.Weight("semibold"),
				"fontSize":   theme.FontSizeOf("xs"),
				"lineHeight": theme.LineHeightOf("xs"),
			},
			Axes: []variants.Axis{{
				Name: "variant",
				Values: variants.Values{
					"default":     {"color": p.PrimaryForeground},
					"secondary":   {"color": p.SecondaryForeground},
					"destructive": {"color": p.DestructiveForeground},
					"outline":     {"color": p.Foreground},
				},
			}},
			Defaults: map[string]string{"variant": "default"},
		}),
		hover: map[string]style.Map{
			"default":     {"opacity": 0.8},
			"secondary":   {"opacity": 0.8},
			"destructive": {"opacity": 0.8},
			"outline":     {"backgroundColor": p.Accent},
		},
	}
}

// Parts returns the badge definitions keyed by part name.
func (b *Badge) Parts() []Part {
	return []Part{{Name: "container", Definition: b.container}, {Name: "label", Definition: b.label}}
}

// Styles resolves the badge for props and state.
func (b *Badge) Styles(props BadgeProps, s State) BadgeStyles {
	sel := variants.Selection{"variant": props.Variant}
	variant := b.container.Effective(sel)["variant"]

	return BadgeStyles{
		Container: style.Merge(
			b.container.Resolve(sel),
			style.Map{"display": "inline-flex"},
			transitionStyle,
			style.When(s.Hovered, b.hover[variant]),
			props.Style,
		),
		Label: b.label.Resolve(sel),
	}
}

// Node builds the badge element tree.
func (b *Badge) Node(props BadgeProps, s State) render.Node {
	styles := b.Styles(props, s)
	return render.Node{
		Tag:   "span",
		Role:  "container",
		Style: styles.Container,
		Children: []render.Node{
			{Tag: "span", Role: "label", Text: props.Label, Style: styles.Label},
		},
	}
}
