package components

import (
	"github.com/alexisbeaulieu97/woosign/internal/render"
	"github.com/alexisbeaulieu97/woosign/internal/theme"
	"github.com/alexisbeaulieu97/woosign/pkg/style"
	"github.com/alexisbeaulieu97/woosign/pkg/variants"
)

// TextProps configures a run of text. Color wins over Muted.
type TextProps struct {
	Variant string
	Weight  string
	Align   string
	Color   string
	Muted   bool
	// As overrides the element chosen for the variant.
	As    string
	Value string
	Style style.Map
}

// Text is typography.
type Text struct {
	palette theme.Palette
	def     *variants.Definition
}

// NewText compiles the text definition for p.
func NewText(p theme.Palette) *Text {
	size := func(step, weight string) style.Map {
		return style.Map{
			"fontSize":   theme.FontSizeOf(step),
			"lineHeight": theme.LineHeightOf(step),
			"fontWeight": theme.Weight(weight),
		}
	}

	return &Text{
		palette: p,
		def: variants.Define(variants.Config{
			Base: style.Map{
				"color":      p.Foreground,
				"fontFamily": theme.Typography.FontFamily["sans"],
			},
			Axes: []variants.Axis{
				{
					Name: "variant",
					Values: variants.Values{
						"h1":    style.Merge(size("4xl", "extrabold"), style.Map{"letterSpacing": -0.5}),
						"h2":    style.Merge(size("3xl", "semibold"), style.Map{"letterSpacing": -0.25}),
						"h3":    size("2xl", "semibold"),
						"h4":    size("xl", "semibold"),
						"p":     size("base", "normal"),
						"lead":  style.Merge(size("xl", "normal"), style.Map{"color": p.MutedForeground}),
						"large": size("lg", "semibold"),
						"small": size("sm", "medium"),
						"muted": style.Merge(size("sm", "normal"), style.Map{"color": p.MutedForeground}),
					},
				},
				{
					Name: "weight",
					Values: variants.Values{
						"normal":   {"fontWeight": theme.Weight("normal")},
						"medium":   {"fontWeight": theme.Weight("medium")},
						"semibold": {"fontWeight": theme.Weight("semibold")},
						"bold":     {"fontWeight": theme.Weight("bold")},
					},
				},
				{
					Name: "align",
					Values: variants.Values{
						"left":   {"textAlign": "left"},
						"center": {"textAlign": "center"},
						"right":  {"textAlign": "right"},
					},
				},
			},
			Defaults: map[string]string{"variant": "p"},
		}),
	}
}

// Parts returns the text definition.
func (t *Text) Parts() []Part {
	return []Part{{Name: "text", Definition: t.def}}
}

// Styles resolves the text style for props.
func (t *Text) Styles(props TextProps) style.Map {
	sel := variants.Selection{"variant": props.Variant, "weight": props.Weight, "align": props.Align}
	return style.Merge(
		t.def.Resolve(sel),
		style.When(props.Muted, style.Map{"color": t.palette.MutedForeground}),
		style.When(props.Color != "", style.Map{"color": props.Color}),
		props.Style,
	)
}

// ElementFor returns the element a text variant renders as by default.
func ElementFor(variant string) string {
	switch variant {
	case "h1", "h2", "h3", "h4":
		return variant
	case "p", "lead", "":
		return "p"
	default:
		return "span"
	}
}

// Node builds the text element.
func (t *Text) Node(props TextProps) render.Node {
	tag := props.As
	if tag == "" {
		tag = ElementFor(props.Variant)
	}
	return render.Node{Tag: tag, Role: "text", Text: props.Value, Style: t.Styles(props)}
}
