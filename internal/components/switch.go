package components

import (
	"github.com/alexisbeaulieu97/woosign/internal/render"
	"github.com/alexisbeaulieu97/woosign/internal/theme"
	"github.com/alexisbeaulieu97/woosign/pkg/style"
	"github.com/alexisbeaulieu97/woosign/pkg/variants"
)

// TrackDimensions describes the geometry of one switch size.
type TrackDimensions struct {
	Width       int
	Height      int
	ThumbSize   int
	ThumbOffset int
}

// ThumbX returns the horizontal thumb position for the checked state.
func (d TrackDimensions) ThumbX(checked bool) int {
	if checked {
		return d.Width - d.ThumbSize - d.ThumbOffset
	}
	return d.ThumbOffset
}

// SwitchTracks holds the geometry per switch size.
var SwitchTracks = map[string]TrackDimensions{
	"sm":      {Width: 36, Height: 20, ThumbSize: 16, ThumbOffset: 2},
	"default": {Width: 44, Height: 24, ThumbSize: 20, ThumbOffset: 2},
	"lg":      {Width: 52, Height: 28, ThumbSize: 24, ThumbOffset: 2},
}

// SwitchProps configures a switch. The checked state comes from State.
type SwitchProps struct {
	Size  string
	Label string
	Style style.Map
}

// SwitchStyles are the resolved styles of each switch part.
type SwitchStyles struct {
	Container style.Map
	Track     style.Map
	Thumb     style.Map
	Label     style.Map
}

// Switch is a two-state toggle.
type Switch struct {
	palette theme.Palette
	track   *variants.Definition
	thumb   *variants.Definition
	label   *variants.Definition
}

// NewSwitch compiles the switch definitions for p.
func NewSwitch(p theme.Palette) *Switch {
	sized := func(dims func(TrackDimensions) style.Map) variants.Values {
		out := make(variants.Values, len(SwitchTracks))
		for name, d := range SwitchTracks {
			out[name] = dims(d)
		}
		return out
	}

	return &Switch{
		palette: p,
		track: variants.Define(variants.Config{
			Base: style.Map{
				"borderRadius":   theme.Radius["full"],
				"borderWidth":    2,
				"borderColor":    "transparent",
				"justifyContent": "center",
			},
			Axes: []variants.Axis{{
				Name: "size",
				Values: sized(func(d TrackDimensions) style.Map {
					return style.Map{"width": d.Width, "height": d.Height}
				}),
			}},
			Defaults: map[string]string{"size": "default"},
		}),
		thumb: variants.Define(variants.Config{
			Base: style.Map{
				"borderRadius":    theme.Radius["full"],
				"backgroundColor": p.Background,
			},
			Axes: []variants.Axis{{
				Name: "size",
				Values: sized(func(d TrackDimensions) style.Map {
					return style.Map{"width": d.ThumbSize, "height": d.ThumbSize}
				}),
			}},
			Defaults: map[string]string{"size": "default"},
		}),
		label: variants.Define(variants.Config{
			Base: style.Map{
				"fontWeight": theme.Weight("medium"),
				"color":      p.Foreground,
			},
			Axes: []variants.Axis{{
				Name: "size",
				Values: variants.Values{
					"sm":      {"fontSize": theme.FontSizeOf("sm"), "lineHeight": theme.LineHeightOf("sm")},
					"default": {"fontSize": theme.FontSizeOf("sm"), "lineHeight": theme.LineHeightOf("sm")},
					"lg":      {"fontSize": theme.FontSizeOf("base"), "lineHeight": theme.LineHeightOf("base")},
				},
			}},
			Defaults: map[string]string{"size": "default"},
		}),
	}
}

// Parts returns the switch definitions keyed by part name.
func (sw *Switch) Parts() []Part {
	return []Part{
		{Name: "track", Definition: sw.track},
		{Name: "thumb", Definition: sw.thumb},
		{Name: "label", Definition: sw.label},
	}
}

// Dimensions returns the track geometry for size. Unknown sizes fall back
// to the default geometry.
func (sw *Switch) Dimensions(size string) TrackDimensions {
	if d, ok := SwitchTracks[size]; ok {
		return d
	}
	return SwitchTracks["default"]
}

// Styles resolves the switch for props and state.
func (sw *Switch) Styles(props SwitchProps, s State) SwitchStyles {
	sel := variants.Selection{"size": props.Size}
	dims := sw.Dimensions(props.Size)

	trackColor := sw.palette.Input
	if s.Checked {
		trackColor = sw.palette.Primary
	}

	return SwitchStyles{
		Container: style.Merge(
			style.Map{"display": "inline-flex", "flexDirection": "row", "alignItems": "center", "gap": theme.Space(2)},
			props.Style,
		),
		Track: style.Merge(
			sw.track.Resolve(sel),
			style.Map{
				"position":        "relative",
				"display":         "inline-flex",
				"alignItems":      "center",
				"flexShrink":      0,
				"backgroundColor": trackColor,
				"transition":      "background-color 150ms ease",
				"padding":         0,
			},
			cursor(s.Disabled),
			style.When(s.Disabled, disabledStyle),
			style.When(s.Focused && !s.Disabled, focusRing(sw.palette)),
		),
		Thumb: style.Merge(
			sw.thumb.Resolve(sel),
			style.Map{
				"position":   "absolute",
				"left":       0,
				"transform":  []style.Map{{"translateX": dims.ThumbX(s.Checked)}},
				"transition": "transform 150ms ease",
			},
		),
		Label: style.Merge(sw.label.Resolve(sel), cursor(s.Disabled)),
	}
}

// Node builds the switch element tree.
func (sw *Switch) Node(props SwitchProps, s State) render.Node {
	styles := sw.Styles(props, s)

	checked := "false"
	if s.Checked {
		checked = "true"
	}
	attrs := map[string]string{"type": "button", "role": "switch", "aria-checked": checked}
	if s.Disabled {
		attrs["disabled"] = "disabled"
	}

	track := render.Node{
		Tag:      "button",
		Role:     "track",
		Attrs:    attrs,
		Style:    styles.Track,
		Children: []render.Node{{Tag: "span", Role: "thumb", Style: styles.Thumb}},
	}

	n := render.Node{Tag: "div", Role: "container", Style: styles.Container, Children: []render.Node{track}}
	if props.Label != "" {
		n.Children = append(n.Children, render.Node{Tag: "span", Role: "label", Text: props.Label, Style: styles.Label})
	}
	return n
}
