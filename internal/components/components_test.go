package components

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/woosign/internal/render"
	"github.com/alexisbeaulieu97/woosign/internal/theme"
	apperrors "github.com/alexisbeaulieu97/woosign/pkg/errors"
	"github.com/alexisbeaulieu97/woosign/pkg/style"
)

var light = theme.Colors

func TestParseState(t *testing.T) {
	t.Parallel()

	s, err := ParseState("hover", " Disabled ", "", "checked")
	require.NoError(t, err)
	assert.Equal(t, State{Hovered: true, Disabled: true, Checked: true}, s)
	assert.Equal(t, []string{"hover", "disabled", "checked"}, s.Names())

	_, err = ParseState("sparkly")
	require.Error(t, err)
	var verr *apperrors.ValidationError
	assert.True(t, errors.As(err, &verr))

	empty, err := ParseState()
	require.NoError(t, err)
	assert.Empty(t, empty.Names())
}

func TestBadgeStyles(t *testing.T) {
	t.Parallel()

	b := NewBadge(light)

	def := b.Styles(BadgeProps{}, State{})
	assert.Equal(t, light.Primary, def.Container["backgroundColor"])
	assert.Equal(t, "inline-flex", def.Container["display"])
	assert.Equal(t, 10, def.Container["paddingLeft"])
	assert.Equal(t, 9999, def.Container["borderRadius"])
	assert.Equal(t, light.PrimaryForeground, def.Label["color"])
	assert.Equal(t, "600", def.Label["fontWeight"])
	assert.NotContains(t, def.Container, "opacity")

	hovered := b.Styles(BadgeProps{}, State{Hovered: true})
	assert.Equal(t, 0.8, hovered.Container["opacity"])

	outline := b.Styles(BadgeProps{Variant: "outline"}, State{Hovered: true})
	assert.Equal(t, light.Accent, outline.Container["backgroundColor"])
	assert.Equal(t, light.Border, outline.Container["borderColor"])
	assert.Equal(t, light.Foreground, outline.Label["color"])

	custom := b.Styles(BadgeProps{Style: style.Map{"backgroundColor": "#123456"}}, State{Hovered: true})
	assert.Equal(t, "#123456", custom.Container["backgroundColor"])
}

func TestBadgeUnknownVariantKeepsBase(t *testing.T) {
	t.Parallel()

	styles := NewBadge(light).Styles(BadgeProps{Variant: "neon"}, State{Hovered: true})
	assert.NotContains(t, styles.Container, "backgroundColor")
	assert.NotContains(t, styles.Container, "opacity")
	assert.Equal(t, "transparent", styles.Container["borderColor"])
}

func TestButtonStyles(t *testing.T) {
	t.Parallel()

	b := NewButton(light)

	tests := []struct {
		name      string
		props     ButtonProps
		state     State
		container style.Map
		label     style.Map
	}{
		{
			name:      "defaults",
			container: style.Map{"height": 40, "paddingLeft": 16, "paddingTop": 8, "backgroundColor": light.Primary, "cursor": "pointer"},
			label:     style.Map{"color": light.PrimaryForeground, "fontSize": 14, "fontWeight": "500", "margin": 0},
		},
		{
			name:      "small outline",
			props:     ButtonProps{Variant: "outline", Size: "sm"},
			container: style.Map{"height": 36, "borderRadius": 4, "borderWidth": 1, "borderColor": light.Input},
			label:     style.Map{"fontSize": 12, "color": light.Foreground},
		},
		{
			name:      "link label",
			props:     ButtonProps{Variant: "link", Size: "lg"},
			container: style.Map{"backgroundColor": "transparent", "paddingLeft": 32},
			label:     style.Map{"color": light.Primary, "textDecorationLine": "underline", "fontSize": 16},
		},
		{
			name:      "icon clears padding",
			props:     ButtonProps{Size: "icon"},
			container: style.Map{"width": 40, "paddingLeft": 0, "paddingTop": 0},
		},
		{
			name:      "hover",
			state:     State{Hovered: true},
			container: style.Map{"opacity": 0.9},
		},
		{
			name:      "ghost hover",
			props:     ButtonProps{Variant: "ghost"},
			state:     State{Hovered: true},
			container: style.Map{"backgroundColor": light.Accent},
		},
		{
			name:      "disabled ignores hover",
			state:     State{Hovered: true, Disabled: true},
			container: style.Map{"opacity": 0.5, "cursor": "not-allowed"},
		},
		{
			name:      "loading looks disabled",
			state:     State{Loading: true},
			container: style.Map{"opacity": 0.5, "cursor": "not-allowed"},
		},
		{
			name:      "focus ring",
			state:     State{Focused: true},
			container: style.Map{"outline": "none", "boxShadow": "0 0 0 2px #FFFFFF, 0 0 0 4px #0F172A"},
		},
		{
			name:      "pressed",
			state:     State{Pressed: true},
			container: style.Map{"opacity": 0.9, "transform": []style.Map{{"scale": 0.98}}},
		},
		{
			name:      "full width and user style",
			props:     ButtonProps{FullWidth: true, Style: style.Map{"height": 48}},
			container: style.Map{"width": "100%", "height": 48},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := b.Styles(tt.props, tt.state)
			for key, want := range tt.container {
				assert.Equal(t, want, got.Container[key], "container %s", key)
			}
			for key, want := range tt.label {
				assert.Equal(t, want, got.Label[key], "label %s", key)
			}
		})
	}
}

func TestButtonNode(t *testing.T) {
	t.Parallel()

	b := NewButton(light)

	n := b.Node(ButtonProps{Label: "Save"}, State{})
	assert.Equal(t, "button", n.Tag)
	assert.Equal(t, "button", n.Attrs["type"])
	assert.NotContains(t, n.Attrs, "disabled")
	label, ok := render.Find(n, "label")
	require.True(t, ok)
	assert.Equal(t, "Save", label.Text)

	loading := b.Node(ButtonProps{Label: "Save", Variant: "outline"}, State{Loading: true})
	assert.Equal(t, "disabled", loading.Attrs["disabled"])
	_, ok = render.Find(loading, "label")
	assert.False(t, ok)
	spinner, ok := render.Find(loading, "spinner")
	require.True(t, ok)
	assert.Equal(t, light.Foreground, spinner.Style["color"])

	destructive := b.Node(ButtonProps{Variant: "destructive"}, State{Loading: true})
	spinner, ok = render.Find(destructive, "spinner")
	require.True(t, ok)
	assert.Equal(t, light.PrimaryForeground, spinner.Style["color"])
}

func TestCardStyles(t *testing.T) {
	t.Parallel()

	c := NewCard(light)

	def := c.Styles(CardProps{}, State{})
	assert.Equal(t, light.Card, def.Container["backgroundColor"])
	assert.Equal(t, 1, def.Container["borderWidth"])
	assert.Equal(t, 12, def.Container["borderRadius"])
	assert.Equal(t, 0.1, def.Container["shadowOpacity"])
	assert.Equal(t, 24, def.Content["padding"])
	assert.Equal(t, 0, def.Header["paddingBottom"])
	assert.Equal(t, 24, def.Title["fontSize"])

	ghost := c.Styles(CardProps{Variant: "ghost"}, State{})
	assert.Equal(t, "transparent", ghost.Container["backgroundColor"])
	assert.Equal(t, 0, ghost.Container["borderWidth"])
	assert.Equal(t, 0, ghost.Container["shadowOpacity"])
	assert.Equal(t, 0, ghost.Container["elevation"])

	passive := c.Styles(CardProps{}, State{Hovered: true, Pressed: true})
	assert.NotContains(t, passive.Container, "opacity")
	assert.NotContains(t, passive.Container, "cursor")

	hovered := c.Styles(CardProps{Interactive: true}, State{Hovered: true})
	assert.Equal(t, 0.95, hovered.Container["opacity"])
	assert.Equal(t, "pointer", hovered.Container["cursor"])

	pressed := c.Styles(CardProps{Interactive: true}, State{Pressed: true})
	assert.Equal(t, []style.Map{{"scale": 0.99}}, pressed.Container["transform"])

	disabled := c.Styles(CardProps{Interactive: true}, State{Hovered: true, Disabled: true})
	assert.Equal(t, 0.5, disabled.Container["opacity"])
	assert.Equal(t, "not-allowed", disabled.Container["cursor"])
}

func TestCardStylesAreIndependentCopies(t *testing.T) {
	t.Parallel()

	c := NewCard(light)
	first := c.Styles(CardProps{}, State{})
	first.Title["color"] = "mutated"

	second := c.Styles(CardProps{}, State{})
	assert.Equal(t, light.CardForeground, second.Title["color"])
}

func TestCardNodeSections(t *testing.T) {
	t.Parallel()

	c := NewCard(light)

	full := c.Node(CardProps{Title: "T", Description: "D", Content: "C", Footer: "F", Interactive: true}, State{})
	require.Len(t, full.Children, 3)
	assert.Equal(t, "button", full.Attrs["role"])
	assert.Equal(t, "0", full.Attrs["tabindex"])
	title, ok := render.Find(full, "title")
	require.True(t, ok)
	assert.Equal(t, "h3", title.Tag)

	bare := c.Node(CardProps{Content: "only"}, State{})
	require.Len(t, bare.Children, 1)
	assert.Equal(t, "content", bare.Children[0].Role)
	assert.Nil(t, bare.Attrs)

	disabled := c.Node(CardProps{Interactive: true}, State{Disabled: true})
	assert.NotContains(t, disabled.Attrs, "tabindex")
}

func TestInputStyles(t *testing.T) {
	t.Parallel()

	in := NewInput(light)

	def := in.Styles(InputProps{}, State{})
	assert.Equal(t, light.Input, def.Container["borderColor"])
	assert.Equal(t, 40, def.Container["height"])
	assert.Equal(t, 12, def.Container["paddingLeft"])
	assert.Equal(t, 14, def.Field["fontSize"])
	assert.Equal(t, "transparent", def.Field["backgroundColor"])
	assert.Equal(t, light.MutedForeground, def.Placeholder)

	errored := in.Styles(InputProps{Variant: "error", Size: "sm"}, State{})
	assert.Equal(t, light.Destructive, errored.Container["borderColor"])
	assert.Equal(t, 4, errored.Container["borderRadius"])
	assert.Equal(t, 12, errored.Field["fontSize"])

	focused := in.Styles(InputProps{Variant: "error"}, State{Focused: true})
	assert.Equal(t, light.Ring, focused.Container["borderColor"])
	assert.Equal(t, "0 0 0 2px #FFFFFF, 0 0 0 4px #0F172A", focused.Container["boxShadow"])

	disabled := in.Styles(InputProps{}, State{Focused: true, Disabled: true})
	assert.Equal(t, 0.5, disabled.Container["opacity"])
	assert.Equal(t, light.Muted, disabled.Container["backgroundColor"])
	assert.NotContains(t, disabled.Container, "boxShadow")

	readOnly := in.Styles(InputProps{ReadOnly: true}, State{})
	assert.Equal(t, 0.5, readOnly.Container["opacity"])
}

func TestInputNode(t *testing.T) {
	t.Parallel()

	in := NewInput(light)

	empty := in.Node(InputProps{Placeholder: "Email"}, State{})
	field, ok := render.Find(empty, "field")
	require.True(t, ok)
	assert.Equal(t, "input", field.Tag)
	assert.Equal(t, "text", field.Attrs["type"])
	assert.Equal(t, "Email", field.Attrs["placeholder"])
	assert.Equal(t, "Email", field.Text)
	assert.Equal(t, light.MutedForeground, field.Style["color"])

	filled := in.Node(InputProps{Placeholder: "Email", Value: "a@b.c", Type: "email", ReadOnly: true}, State{Disabled: true})
	field, ok = render.Find(filled, "field")
	require.True(t, ok)
	assert.Equal(t, "a@b.c", field.Text)
	assert.Equal(t, light.Foreground, field.Style["color"])
	assert.Equal(t, "email", field.Attrs["type"])
	assert.Equal(t, "disabled", field.Attrs["disabled"])
	assert.Equal(t, "readonly", field.Attrs["readonly"])
}

func TestSwitchThumbOffset(t *testing.T) {
	t.Parallel()

	tests := []struct {
		size      string
		unchecked int
		checked   int
	}{
		{"sm", 2, 18},
		{"default", 2, 22},
		{"lg", 2, 26},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.size, func(t *testing.T) {
			t.Parallel()

			d := SwitchTracks[tt.size]
			assert.Equal(t, tt.unchecked, d.ThumbX(false))
			assert.Equal(t, tt.checked, d.ThumbX(true))
		})
	}
}

func TestSwitchStyles(t *testing.T) {
	t.Parallel()

	sw := NewSwitch(light)

	off := sw.Styles(SwitchProps{}, State{})
	assert.Equal(t, light.Input, off.Track["backgroundColor"])
	assert.Equal(t, 44, off.Track["width"])
	assert.Equal(t, 24, off.Track["height"])
	assert.Equal(t, 20, off.Thumb["width"])
	assert.Equal(t, []style.Map{{"translateX": 2}}, off.Thumb["transform"])
	assert.Equal(t, "pointer", off.Track["cursor"])

	on := sw.Styles(SwitchProps{Size: "lg"}, State{Checked: true})
	assert.Equal(t, light.Primary, on.Track["backgroundColor"])
	assert.Equal(t, 52, on.Track["width"])
	assert.Equal(t, []style.Map{{"translateX": 26}}, on.Thumb["transform"])
	assert.Equal(t, 16, on.Label["fontSize"])

	disabled := sw.Styles(SwitchProps{}, State{Disabled: true, Focused: true})
	assert.Equal(t, 0.5, disabled.Track["opacity"])
	assert.Equal(t, "not-allowed", disabled.Label["cursor"])
	assert.NotContains(t, disabled.Track, "boxShadow")

	assert.Equal(t, SwitchTracks["default"], sw.Dimensions("huge"))
}

func TestSwitchNode(t *testing.T) {
	t.Parallel()

	sw := NewSwitch(light)

	n := sw.Node(SwitchProps{Label: "Wi-Fi"}, State{Checked: true})
	track, ok := render.Find(n, "track")
	require.True(t, ok)
	assert.Equal(t, "true", track.Attrs["aria-checked"])
	assert.Equal(t, "switch", track.Attrs["role"])
	_, ok = render.Find(n, "thumb")
	assert.True(t, ok)
	label, ok := render.Find(n, "label")
	require.True(t, ok)
	assert.Equal(t, "Wi-Fi", label.Text)

	unlabelled := sw.Node(SwitchProps{}, State{})
	assert.Len(t, unlabelled.Children, 1)
}

func TestTextStyles(t *testing.T) {
	t.Parallel()

	txt := NewText(light)

	p := txt.Styles(TextProps{})
	assert.Equal(t, 16, p["fontSize"])
	assert.Equal(t, 24, p["lineHeight"])
	assert.Equal(t, "400", p["fontWeight"])
	assert.Equal(t, light.Foreground, p["color"])
	assert.Equal(t, "System", p["fontFamily"])

	h1 := txt.Styles(TextProps{Variant: "h1", Weight: "bold", Align: "center"})
	assert.Equal(t, 36, h1["fontSize"])
	assert.Equal(t, "700", h1["fontWeight"])
	assert.Equal(t, -0.5, h1["letterSpacing"])
	assert.Equal(t, "center", h1["textAlign"])

	lead := txt.Styles(TextProps{Variant: "lead"})
	assert.Equal(t, light.MutedForeground, lead["color"])

	muted := txt.Styles(TextProps{Muted: true})
	assert.Equal(t, light.MutedForeground, muted["color"])

	colored := txt.Styles(TextProps{Muted: true, Color: "#FF0000"})
	assert.Equal(t, "#FF0000", colored["color"])
}

func TestElementFor(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"h1":    "h1",
		"h4":    "h4",
		"p":     "p",
		"lead":  "p",
		"":      "p",
		"large": "span",
		"small": "span",
		"muted": "span",
	}

	for variant, want := range tests {
		assert.Equal(t, want, ElementFor(variant), variant)
	}

	txt := NewText(light)
	assert.Equal(t, "h2", txt.Node(TextProps{Variant: "h2"}).Tag)
	assert.Equal(t, "label", txt.Node(TextProps{Variant: "h2", As: "label"}).Tag)
}

func TestBoxStyles(t *testing.T) {
	t.Parallel()

	b := NewBox()

	assert.Equal(t, style.Map{"display": "flex", "flexDirection": "column"}, b.Styles(BoxProps{}))

	got := b.Styles(BoxProps{
		Padding:       Px(8),
		PaddingX:      Px(16),
		PaddingLeft:   Px(4),
		MarginY:       Px(2),
		FlexDirection: "row",
		RadiusPreset:  "lg",
		BorderWidth:   Px(1),
		Width:         "100%",
		Height:        120,
	})

	assert.Equal(t, 8.0, got["padding"])
	assert.Equal(t, 4.0, got["paddingLeft"])
	assert.Equal(t, 16.0, got["paddingRight"])
	assert.NotContains(t, got, "paddingTop")
	assert.Equal(t, 2.0, got["marginTop"])
	assert.Equal(t, 2.0, got["marginBottom"])
	assert.Equal(t, "row", got["flexDirection"])
	assert.Equal(t, 12, got["borderRadius"])
	assert.Equal(t, "solid", got["borderStyle"])
	assert.Equal(t, "100%", got["width"])
	assert.Equal(t, 120, got["height"])
	assert.NotContains(t, got, "minWidth")
}

func TestBoxRadiusAndBorder(t *testing.T) {
	t.Parallel()

	b := NewBox()

	explicit := b.Styles(BoxProps{RadiusPreset: "full", BorderRadius: Px(3)})
	assert.Equal(t, 3.0, explicit["borderRadius"])

	unknown := b.Styles(BoxProps{RadiusPreset: "huge"})
	assert.NotContains(t, unknown, "borderRadius")

	zero := b.Styles(BoxProps{BorderWidth: Px(0)})
	assert.Equal(t, 0.0, zero["borderWidth"])
	assert.NotContains(t, zero, "borderStyle")

	cleared := b.Styles(BoxProps{Style: style.Map{"display": nil, "gap": 4}})
	assert.NotContains(t, cleared, "display")
	assert.Equal(t, 4, cleared["gap"])

	n := b.Node(BoxProps{As: "section"}, render.Node{Text: "child"})
	assert.Equal(t, "section", n.Tag)
	require.Len(t, n.Children, 1)
}
