// Package config loads design-system definitions files: YAML documents that
// declare extra components in the same shape as the built-in ones.
//
//	version: "1.0"
//	components:
//	  chip:
//	    base: {display: flex}
//	    variants:
//	      tone: {neutral: {color: black}, danger: {color: red}}
//	      size: {sm: {fontSize: 12}, lg: {fontSize: 18}}
//	    defaultVariants: {tone: neutral, size: sm}
//	    compoundVariants:
//	      - {tone: danger, size: lg, style: {fontWeight: "700"}}
//
// Components, axes and values keep their file order, which is the
// declaration order used for resolution.
package config

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/woosign/pkg/style"
	"github.com/alexisbeaulieu97/woosign/pkg/variants"
)

// File is a definitions document.
type File struct {
	Path       string      `yaml:"-"`
	Version    string      `yaml:"version,omitempty" validate:"omitempty,semver"`
	Components []Component `yaml:"components" validate:"dive"`
}

// Component is one declared component.
type Component struct {
	Name             string            `yaml:"-" validate:"required,ident"`
	Line             int               `yaml:"-"`
	Description      string            `yaml:"description,omitempty" validate:"max=200"`
	Base             style.Map         `yaml:"base,omitempty"`
	Variants         []Axis            `yaml:"variants,omitempty" validate:"dive"`
	DefaultVariants  map[string]string `yaml:"defaultVariants,omitempty" validate:"dive,keys,ident,endkeys,ident"`
	CompoundVariants []Compound        `yaml:"compoundVariants,omitempty" validate:"dive"`
}

// Axis is an ordered variant axis.
type Axis struct {
	Name   string  `validate:"required,ident"`
	Line   int     `yaml:"-"`
	Values []Value `validate:"dive"`
}

// Value is one entry of an axis table.
type Value struct {
	Name  string `validate:"required,ident"`
	Style style.Map
}

// Compound is a compound rule: every condition must hold for Style to apply.
type Compound struct {
	When  map[string]string `validate:"dive,keys,ident,endkeys,ident"`
	Style style.Map
	Line  int
}

// Definition compiles the component into a variant definition.
func (c Component) Definition() *variants.Definition {
	cfg := variants.Config{
		Base:     c.Base,
		Defaults: c.DefaultVariants,
	}
	for _, axis := range c.Variants {
		values := make(variants.Values, len(axis.Values))
		for _, v := range axis.Values {
			values[v.Name] = v.Style
		}
		cfg.Axes = append(cfg.Axes, variants.Axis{Name: axis.Name, Values: values})
	}
	for _, cv := range c.CompoundVariants {
		cfg.Compounds = append(cfg.Compounds, variants.Compound{When: cv.When, Style: cv.Style})
	}
	return variants.Define(cfg)
}

// Component returns the named component.
func (f *File) Component(name string) (Component, bool) {
	for _, c := range f.Components {
		if c.Name == name {
			return c, true
		}
	}
	return Component{}, false
}

// UnmarshalYAML decodes the document keeping the component order of the
// file.
func (f *File) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: definitions must be a mapping", value.Line)
	}

	for i := 0; i+1 < len(value.Content); i += 2 {
		key, body := value.Content[i], value.Content[i+1]
		switch key.Value {
		case "version":
			if err := body.Decode(&f.Version); err != nil {
				return err
			}
		case "components":
			if body.Kind != yaml.MappingNode {
				return fmt.Errorf("line %d: components must be a mapping of name to component", body.Line)
			}
			for j := 0; j+1 < len(body.Content); j += 2 {
				var c Component
				if err := body.Content[j+1].Decode(&c); err != nil {
					return err
				}
				c.Name = body.Content[j].Value
				c.Line = body.Content[j].Line
				f.Components = append(f.Components, c)
			}
		default:
			return fmt.Errorf("line %d: unknown field %q", key.Line, key.Value)
		}
	}
	return nil
}

// UnmarshalYAML decodes one component, keeping axis order.
func (c *Component) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: component must be a mapping", value.Line)
	}

	for i := 0; i+1 < len(value.Content); i += 2 {
		key, body := value.Content[i], value.Content[i+1]
		switch key.Value {
		case "description":
			if err := body.Decode(&c.Description); err != nil {
				return err
			}
		case "base":
			m, err := decodeStyle(body)
			if err != nil {
				return err
			}
			c.Base = m
		case "variants":
			axes, err := decodeAxes(body)
			if err != nil {
				return err
			}
			c.Variants = axes
		case "defaultVariants":
			if err := body.Decode(&c.DefaultVariants); err != nil {
				return err
			}
		case "compoundVariants":
			compounds, err := decodeCompounds(body)
			if err != nil {
				return err
			}
			c.CompoundVariants = compounds
		default:
			return fmt.Errorf("line %d: unknown component field %q", key.Line, key.Value)
		}
	}
	return nil
}

func decodeStyle(node *yaml.Node) (style.Map, error) {
	if node.Kind == yaml.ScalarNode && node.Tag == "!!null" {
		return nil, nil
	}
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: style must be a mapping", node.Line)
	}
	var m map[string]any
	if err := node.Decode(&m); err != nil {
		return nil, err
	}
	return style.Map(m), nil
}

func decodeAxes(node *yaml.Node) ([]Axis, error) {
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: variants must be a mapping of axis to values", node.Line)
	}

	axes := make([]Axis, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, table := node.Content[i], node.Content[i+1]
		if table.Kind != yaml.MappingNode {
			return nil, fmt.Errorf("line %d: axis %q must be a mapping of value to style", table.Line, key.Value)
		}

		axis := Axis{Name: key.Value, Line: key.Line}
		for j := 0; j+1 < len(table.Content); j += 2 {
			m, err := decodeStyle(table.Content[j+1])
			if err != nil {
				return nil, err
			}
			axis.Values = append(axis.Values, Value{Name: table.Content[j].Value, Style: m})
		}
		axes = append(axes, axis)
	}
	return axes, nil
}

func decodeCompounds(node *yaml.Node) ([]Compound, error) {
	if node.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("line %d: compoundVariants must be a list", node.Line)
	}

	compounds := make([]Compound, 0, len(node.Content))
	for _, item := range node.Content {
		if item.Kind != yaml.MappingNode {
			return nil, fmt.Errorf("line %d: compound variant must be a mapping", item.Line)
		}

		cv := Compound{When: make(map[string]string), Line: item.Line}
		for j := 0; j+1 < len(item.Content); j += 2 {
			key, body := item.Content[j], item.Content[j+1]
			if key.Value == "style" {
				m, err := decodeStyle(body)
				if err != nil {
					return nil, err
				}
				cv.Style = m
				continue
			}
			if body.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("line %d: condition %q must be a single value", body.Line, key.Value)
			}
			cv.When[key.Value] = body.Value
		}
		compounds = append(compounds, cv)
	}
	return compounds, nil
}
