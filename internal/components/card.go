package components

import (
	"github.com/alexisbeaulieu97/woosign/internal/render"
	"github.com/alexisbeaulieu97/woosign/internal/theme"
	"github.com/alexisbeaulieu97/woosign/pkg/style"
	"github.com/alexisbeaulieu97/woosign/pkg/variants"
)

// CardProps configures a card. Empty sections are omitted.
type CardProps struct {
	Variant     string
	Title       string
	Description string
	Content     string
	Footer      string
	FullWidth   bool
	// Interactive cards react to hover and press.
	Interactive bool
	Style       style.Map
}

// CardStyles are the resolved styles of each card part.
type CardStyles struct {
	Container   style.Map
	Header      style.Map
	Title       style.Map
	Description style.Map
	Content     style.Map
	Footer      style.Map
}

// Card groups related content in a bordered surface.
type Card struct {
	container *variants.Definition

	header      style.Map
	title       style.Map
	description style.Map
	content     style.Map
	footer      style.Map
}

// NewCard compiles the card definitions for p.
func NewCard(p theme.Palette) *Card {
	cfg := variants.Config{
		Base: style.Merge(
			style.Map{"borderRadius": theme.Radius["lg"], "backgroundColor": p.Card},
			theme.Shadows["DEFAULT"],
		),
		Axes: []variants.Axis{{
			Name: "variant",
			Values: variants.Values{
				"default": {"backgroundColor": p.Card, "borderWidth": 1, "borderColor": p.Border},
				"outline": {
					"backgroundColor": "transparent",
					"borderWidth":     1,
					"borderColor":     p.Border,
					"shadowOpacity":   0,
					"elevation":       0,
				},
				"ghost": {
					"backgroundColor": "transparent",
					"borderWidth":     0,
					"shadowOpacity":   0,
					"elevation":       0,
				},
			},
		}},
		Defaults: map[string]string{"variant": "default"},
	}

	return &Card{
		container: variants.Define(cfg),
		header: style.Map{
			"display":       "flex",
			"flexDirection": "column",
			"gap":           theme.Space(1.5),
			"padding":       theme.Space(6),
			"paddingBottom": 0,
		},
		title: style.Map{
			"fontSize":   theme.FontSizeOf("2xl"),
			"fontWeight": theme.Weight("semibold"),
			"lineHeight": theme.LineHeightOf("2xl"),
			"color":      p.CardForeground,
			"margin":     0,
		},
		description: style.Map{
			"fontSize":   theme.FontSizeOf("sm"),
			"lineHeight": theme.LineHeightOf("sm"),
			"color":      p.MutedForeground,
			"margin":     0,
		},
		content: style.Map{"padding": theme.Space(6)},
		footer: style.Map{
			"display":       "flex",
			"flexDirection": "row",
			"alignItems":    "center",
			"padding":       theme.Space(6),
			"paddingTop":    0,
		},
	}
}

// Parts returns the card definitions keyed by part name.
func (c *Card) Parts() []Part {
	return []Part{{Name: "container", Definition: c.container}}
}

// Styles resolves the card for props and state. Hover and press only apply
// to interactive cards; a disabled card ignores both.
func (c *Card) Styles(props CardProps, s State) CardStyles {
	sel := variants.Selection{"variant": props.Variant}
	live := props.Interactive && !s.Disabled

	return CardStyles{
		Container: style.Merge(
			c.container.Resolve(sel),
			style.When(props.FullWidth, fullWidthStyle),
			style.When(s.Disabled, style.Merge(disabledStyle, cursor(true))),
			style.When(live, cursor(false)),
			style.When(live && s.Hovered, style.Map{"opacity": 0.95}),
			style.When(live && s.Pressed, pressedScale(0.99)),
			transitionStyle,
			props.Style,
		),
		Header:      c.header.Clone(),
		Title:       c.title.Clone(),
		Description: c.description.Clone(),
		Content:     c.content.Clone(),
		Footer:      c.footer.Clone(),
	}
}

// Node builds the card element tree.
func (c *Card) Node(props CardProps, s State) render.Node {
	styles := c.Styles(props, s)

	n := render.Node{Tag: "div", Role: "container", Style: styles.Container}
	if props.Interactive {
		n.Attrs = map[string]string{"role": "button"}
		if !s.Disabled {
			n.Attrs["tabindex"] = "0"
		}
	}

	if props.Title != "" || props.Description != "" {
		header := render.Node{Tag: "div", Role: "header", Style: styles.Header}
		if props.Title != "" {
			header.Children = append(header.Children, render.Node{Tag: "h3", Role: "title", Text: props.Title, Style: styles.Title})
		}
		if props.Description != "" {
			header.Children = append(header.Children, render.Node{Tag: "p", Role: "description", Text: props.Description, Style: styles.Description})
		}
		n.Children = append(n.Children, header)
	}
	if props.Content != "" {
		n.Children = append(n.Children, render.Node{Tag: "div", Role: "content", Text: props.Content, Style: styles.Content})
	}
	if props.Footer != "" {
		n.Children = append(n.Children, render.Node{Tag: "div", Role: "footer", Text: props.Footer, Style: styles.Footer})
	}
	return n
}
