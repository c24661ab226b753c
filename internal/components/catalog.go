package components

import (
	"fmt"
	"sort"

	"github.com/alexisbeaulieu97/woosign/internal/render"
	apperrors "github.com/alexisbeaulieu97/woosign/pkg/errors"
	"github.com/alexisbeaulieu97/woosign/pkg/style"
	"github.com/alexisbeaulieu97/woosign/pkg/variants"
)

// Part is one independently styled element of a component.
type Part struct {
	Name       string
	Definition *variants.Definition
}

// Request asks a catalog entry to build a node. Text replaces the sample
// content when set.
type Request struct {
	Selection variants.Selection
	State     State
	Text      string
}

// BuildFunc builds the node tree of a component for a request.
type BuildFunc func(Request) render.Node

// Entry describes a component in the catalog.
type Entry struct {
	Name        string
	Description string
	// Parts are ordered; the first part is the primary one.
	Parts  []Part
	Build  BuildFunc
	Custom bool
}

// Part returns the named part, or the primary part when name is empty.
func (e *Entry) Part(name string) (Part, error) {
	if name == "" && len(e.Parts) > 0 {
		return e.Parts[0], nil
	}
	for _, p := range e.Parts {
		if p.Name == name {
			return p, nil
		}
	}
	return Part{}, apperrors.NewNotFoundError("part", e.Name+"."+name)
}

// PartNames returns the part names in order.
func (e *Entry) PartNames() []string {
	names := make([]string, 0, len(e.Parts))
	for _, p := range e.Parts {
		names = append(names, p.Name)
	}
	return names
}

// Axes returns every axis declared by any part, in first-declaration order.
func (e *Entry) Axes() []string {
	seen := make(map[string]bool)
	var axes []string
	for _, p := range e.Parts {
		for _, axis := range p.Definition.Axes() {
			if !seen[axis] {
				seen[axis] = true
				axes = append(axes, axis)
			}
		}
	}
	return axes
}

// AxisValues returns the union of the values declared for axis across parts,
// sorted.
func (e *Entry) AxisValues(axis string) []string {
	seen := make(map[string]bool)
	var values []string
	for _, p := range e.Parts {
		for _, v := range p.Definition.AxisValues(axis) {
			if !seen[v] {
				seen[v] = true
				values = append(values, v)
			}
		}
	}
	sort.Strings(values)
	return values
}

// Resolve returns the variant style of every part for sel.
func (e *Entry) Resolve(sel variants.Selection) map[string]style.Map {
	out := make(map[string]style.Map, len(e.Parts))
	for _, p := range e.Parts {
		out[p.Name] = p.Definition.Resolve(sel)
	}
	return out
}

// Catalog indexes components by name. It is read-only once populated.
type Catalog struct {
	kit     *Kit
	entries map[string]*Entry
}

// NewCatalog returns a catalog of the built-in components of kit.
func NewCatalog(kit *Kit) *Catalog {
	c := &Catalog{kit: kit, entries: make(map[string]*Entry)}
	for _, e := range builtins(kit) {
		entry := e
		c.entries[entry.Name] = &entry
	}
	return c
}

// Kit returns the kit backing the built-in entries.
func (c *Catalog) Kit() *Kit {
	return c.kit
}

// Register adds a custom component. Names already in the catalog are
// rejected.
func (c *Catalog) Register(e Entry) error {
	if e.Name == "" {
		return apperrors.NewValidationError("name", "component name is required", nil)
	}
	if len(e.Parts) == 0 {
		return apperrors.NewValidationError(e.Name, "component has no parts", nil)
	}
	if _, exists := c.entries[e.Name]; exists {
		return apperrors.NewValidationError(e.Name, fmt.Sprintf("component %q is already defined", e.Name), nil)
	}
	c.entries[e.Name] = &e
	return nil
}

// Get returns the named entry.
func (c *Catalog) Get(name string) (*Entry, error) {
	e, ok := c.entries[name]
	if !ok {
		return nil, apperrors.NewNotFoundError("component", name)
	}
	return e, nil
}

// Names returns the component names in lexical order.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.entries))
	for name := range c.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Entries returns the entries in name order.
func (c *Catalog) Entries() []*Entry {
	names := c.Names()
	out := make([]*Entry, 0, len(names))
	for _, name := range names {
		out = append(out, c.entries[name])
	}
	return out
}

// CustomEntry wraps a definition loaded at runtime as a single-part
// component rendered as a plain container.
func CustomEntry(name string, def *variants.Definition) Entry {
	return Entry{
		Name:        name,
		Description: "custom component",
		Parts:       []Part{{Name: "container", Definition: def}},
		Custom:      true,
		Build: func(r Request) render.Node {
			return render.Node{Tag: "div", Role: "container", Text: sample(r.Text, name), Style: def.Resolve(r.Selection)}
		},
	}
}

func sample(text, fallback string) string {
	if text != "" {
		return text
	}
	return fallback
}

func builtins(k *Kit) []Entry {
	return []Entry{
		{
			Name:        "badge",
			Description: "small status label",
			Parts:       k.Badge.Parts(),
			Build: func(r Request) render.Node {
				return k.Badge.Node(BadgeProps{Variant: r.Selection["variant"], Label: sample(r.Text, "Badge")}, r.State)
			},
		},
		{
			Name:        "box",
			Description: "layout container",
			Parts:       k.Box.Parts(),
			Build: func(r Request) render.Node {
				return k.Box.Node(BoxProps{
					FlexDirection: r.Selection["direction"],
					RadiusPreset:  r.Selection["radius"],
					Padding:       Px(16),
					BorderWidth:   Px(1),
					BorderColor:   k.Palette.Border,
					Text:          sample(r.Text, "Box"),
				})
			},
		},
		{
			Name:        "button",
			Description: "pressable action",
			Parts:       k.Button.Parts(),
			Build: func(r Request) render.Node {
				return k.Button.Node(ButtonProps{
					Variant: r.Selection["variant"],
					Size:    r.Selection["size"],
					Label:   sample(r.Text, "Button"),
				}, r.State)
			},
		},
		{
			Name:        "card",
			Description: "bordered content surface",
			Parts:       k.Card.Parts(),
			Build: func(r Request) render.Node {
				return k.Card.Node(CardProps{
					Variant:     r.Selection["variant"],
					Title:       sample(r.Text, "Card title"),
					Description: "Card description",
					Content:     "Card content",
					Footer:      "Card footer",
					Interactive: true,
				}, r.State)
			},
		},
		{
			Name:        "input",
			Description: "single-line text field",
			Parts:       k.Input.Parts(),
			Build: func(r Request) render.Node {
				return k.Input.Node(InputProps{
					Variant:     r.Selection["variant"],
					Size:        r.Selection["size"],
					Placeholder: "Type here",
					Value:       r.Text,
				}, r.State)
			},
		},
		{
			Name:        "switch",
			Description: "two-state toggle",
			Parts:       k.Switch.Parts(),
			Build: func(r Request) render.Node {
				return k.Switch.Node(SwitchProps{Size: r.Selection["size"], Label: sample(r.Text, "Switch")}, r.State)
			},
		},
		{
			Name:        "text",
			Description: "typography",
			Parts:       k.Text.Parts(),
			Build: func(r Request) render.Node {
				return k.Text.Node(TextProps{
					Variant: r.Selection["variant"],
					Weight:  r.Selection["weight"],
					Align:   r.Selection["align"],
					Value:   sample(r.Text, "The quick brown fox"),
				})
			},
		},
	}
}
