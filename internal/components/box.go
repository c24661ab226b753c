package components

import (
	"github.com/alexisbeaulieu97/woosign/internal/render"
	"github.com/alexisbeaulieu97/woosign/internal/theme"
	"github.com/alexisbeaulieu97/woosign/pkg/style"
	"github.com/alexisbeaulieu97/woosign/pkg/variants"
)

// Px returns a pointer to v, for the optional numeric props of BoxProps.
func Px(v float64) *float64 {
	return &v
}

// BoxProps are the layout props of a Box. Nil and empty fields are left out
// of the style. Side-specific padding and margin win over the X/Y
// shorthands.
type BoxProps struct {
	Padding       *float64
	PaddingX      *float64
	PaddingY      *float64
	PaddingTop    *float64
	PaddingRight  *float64
	PaddingBottom *float64
	PaddingLeft   *float64

	Margin       *float64
	MarginX      *float64
	MarginY      *float64
	MarginTop    *float64
	MarginRight  *float64
	MarginBottom *float64
	MarginLeft   *float64

	Flex           *float64
	FlexDirection  string
	AlignItems     string
	JustifyContent string
	FlexWrap       string
	Gap            *float64
	RowGap         *float64
	ColumnGap      *float64

	BackgroundColor string
	// BorderRadius takes precedence over RadiusPreset.
	BorderRadius *float64
	RadiusPreset string
	BorderWidth  *float64
	BorderColor  string

	// Dimensions are pixel counts or CSS length strings such as "100%".
	Width     any
	Height    any
	MinWidth  any
	MinHeight any
	MaxWidth  any
	MaxHeight any

	// As is the web element; empty means div.
	As    string
	Text  string
	Style style.Map
}

// Box is the layout primitive.
type Box struct {
	def *variants.Definition
}

// NewBox compiles the box definition.
func NewBox() *Box {
	radius := make(variants.Values)
	for _, preset := range []string{"none", "sm", "md", "lg", "xl", "2xl", "full"} {
		radius[preset] = style.Map{"borderRadius": theme.Radius[preset]}
	}

	return &Box{
		def: variants.Define(variants.Config{
			Base: style.Map{"display": "flex"},
			Axes: []variants.Axis{
				{
					Name: "direction",
					Values: variants.Values{
						"row":            {"flexDirection": "row"},
						"column":         {"flexDirection": "column"},
						"row-reverse":    {"flexDirection": "row-reverse"},
						"column-reverse": {"flexDirection": "column-reverse"},
					},
				},
				{Name: "radius", Values: radius},
			},
			Defaults: map[string]string{"direction": "column"},
		}),
	}
}

// Parts returns the box definition.
func (b *Box) Parts() []Part {
	return []Part{{Name: "container", Definition: b.def}}
}

// Styles converts props to a style mapping.
func (b *Box) Styles(props BoxProps) style.Map {
	out := b.def.Resolve(variants.Selection{"direction": props.FlexDirection, "radius": props.RadiusPreset})

	putNum(out, "padding", props.Padding)
	putNum(out, "paddingLeft", either(props.PaddingLeft, props.PaddingX))
	putNum(out, "paddingRight", either(props.PaddingRight, props.PaddingX))
	putNum(out, "paddingTop", either(props.PaddingTop, props.PaddingY))
	putNum(out, "paddingBottom", either(props.PaddingBottom, props.PaddingY))

	putNum(out, "margin", props.Margin)
	putNum(out, "marginLeft", either(props.MarginLeft, props.MarginX))
	putNum(out, "marginRight", either(props.MarginRight, props.MarginX))
	putNum(out, "marginTop", either(props.MarginTop, props.MarginY))
	putNum(out, "marginBottom", either(props.MarginBottom, props.MarginY))

	putNum(out, "flex", props.Flex)
	putStr(out, "alignItems", props.AlignItems)
	putStr(out, "justifyContent", props.JustifyContent)
	putStr(out, "flexWrap", props.FlexWrap)
	putNum(out, "gap", props.Gap)
	putNum(out, "rowGap", props.RowGap)
	putNum(out, "columnGap", props.ColumnGap)

	putStr(out, "backgroundColor", props.BackgroundColor)
	putNum(out, "borderRadius", props.BorderRadius)
	putNum(out, "borderWidth", props.BorderWidth)
	putStr(out, "borderColor", props.BorderColor)
	if props.BorderWidth != nil && *props.BorderWidth != 0 {
		out["borderStyle"] = "solid"
	}

	putAny(out, "width", props.Width)
	putAny(out, "height", props.Height)
	putAny(out, "minWidth", props.MinWidth)
	putAny(out, "minHeight", props.MinHeight)
	putAny(out, "maxWidth", props.MaxWidth)
	putAny(out, "maxHeight", props.MaxHeight)

	return style.Merge(out, props.Style).Compact()
}

// Node builds the box element with children.
func (b *Box) Node(props BoxProps, children ...render.Node) render.Node {
	tag := props.As
	if tag == "" {
		tag = "div"
	}
	return render.Node{Tag: tag, Role: "container", Text: props.Text, Style: b.Styles(props), Children: children}
}

func either(specific, shorthand *float64) *float64 {
	if specific != nil {
		return specific
	}
	return shorthand
}

func putNum(m style.Map, key string, v *float64) {
	if v != nil {
		m[key] = *v
	}
}

func putStr(m style.Map, key, v string) {
	if v != "" {
		m[key] = v
	}
}

func putAny(m style.Map, key string, v any) {
	if v != nil {
		m[key] = v
	}
}
