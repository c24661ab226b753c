// Package variants compiles declarative variant configurations into resolvers
// that compute a component's style mapping from a per-render selection.
//
// A configuration is made of a base style, an ordered list of axes (each a
// closed table of named style fragments), default values per axis and an
// ordered list of compound rules that apply when a combination of axis values
// is selected together:
//
//	buttonVariants := variants.Define(variants.Config{
//		Base: style.Map{"display": "flex"},
//		Axes: []variants.Axis{
//			{Name: "variant", Values: variants.Values{
//				"default":     {"color": "black"},
//				"destructive": {"color": "red"},
//			}},
//			{Name: "size", Values: variants.Values{
//				"sm": {"fontSize": 12},
//				"lg": {"fontSize": 18},
//			}},
//		},
//		Defaults: map[string]string{"variant": "default", "size": "sm"},
//	})
//
//	buttonVariants.Resolve(variants.Selection{"variant": "destructive"})
//	// {display: flex, color: red, fontSize: 12}
//
// Resolution never fails. Unknown axis names, unknown value names and
// defaults missing from their tables all contribute nothing.
package variants

import (
	"github.com/alexisbeaulieu97/woosign/pkg/style"
)

// Values maps a value name of one axis to the style fragment it contributes.
type Values map[string]style.Map

// Axis is a named styling dimension with a closed table of values.
type Axis struct {
	Name   string
	Values Values
}

// Compound applies Style when every axis named in When has the given
// effective value.
type Compound struct {
	When  map[string]string
	Style style.Map
}

// Config is the declarative description compiled by Define. Axes are applied
// in slice order, which is the precedence order on conflicting keys.
type Config struct {
	Base      style.Map
	Axes      []Axis
	Defaults  map[string]string
	Compounds []Compound
}

// Selection holds the caller's chosen value per axis. A missing key or an
// empty value means "not supplied" and falls back to the axis default.
type Selection map[string]string

// Resolver is the function form of a Definition.
type Resolver func(Selection) style.Map

// Definition is a compiled, immutable Config. It is safe for concurrent use.
type Definition struct {
	base      style.Map
	axes      []Axis
	index     map[string]int
	defaults  map[string]string
	compounds []Compound
}

// Define compiles cfg. The configuration is copied, so later changes to the
// caller's maps and slices do not affect the returned Definition.
//
// When the same axis name is declared twice, the later table replaces the
// earlier one but keeps the earlier declaration position.
func Define(cfg Config) *Definition {
	def := &Definition{
		base:     cfg.Base.Clone(),
		axes:     make([]Axis, 0, len(cfg.Axes)),
		index:    make(map[string]int, len(cfg.Axes)),
		defaults: make(map[string]string, len(cfg.Defaults)),
	}

	for _, axis := range cfg.Axes {
		copied := Axis{Name: axis.Name, Values: cloneValues(axis.Values)}
		if pos, ok := def.index[axis.Name]; ok {
			def.axes[pos] = copied
			continue
		}
		def.index[axis.Name] = len(def.axes)
		def.axes = append(def.axes, copied)
	}

	for name, value := range cfg.Defaults {
		def.defaults[name] = value
	}

	def.compounds = make([]Compound, 0, len(cfg.Compounds))
	for _, compound := range cfg.Compounds {
		when := make(map[string]string, len(compound.When))
		for name, value := range compound.When {
			when[name] = value
		}
		def.compounds = append(def.compounds, Compound{When: when, Style: compound.Style.Clone()})
	}

	return def
}

// Resolve computes the style mapping for sel. The result is freshly allocated
// and owned by the caller. A nil selection behaves like an empty one.
func (d *Definition) Resolve(sel Selection) style.Map {
	result := d.base.Clone()
	effective := make(Selection, len(d.axes))

	for pos := range d.axes {
		res, fragment := d.lookup(pos, sel)
		if res.Outcome == OutcomeUnset {
			continue
		}
		effective[res.Axis] = res.Value
		if res.Contributes() {
			mergeInto(result, fragment)
		}
	}

	for _, compound := range d.compounds {
		if compound.matches(effective) {
			mergeInto(result, compound.Style)
		}
	}

	return result
}

// Func returns the resolver closure for d.
func (d *Definition) Func() Resolver {
	return d.Resolve
}

// Effective returns the effective value per declared axis: the supplied value
// when present, else the configured default. Axes with neither are absent.
// Selection entries for undeclared axes are dropped.
func (d *Definition) Effective(sel Selection) Selection {
	out := make(Selection, len(d.axes))
	for pos := range d.axes {
		if res, _ := d.lookup(pos, sel); res.Outcome != OutcomeUnset {
			out[res.Axis] = res.Value
		}
	}
	return out
}

func (c Compound) matches(effective Selection) bool {
	for name, want := range c.When {
		got, ok := effective[name]
		if !ok || got != want {
			return false
		}
	}
	return true
}

func mergeInto(dst, src style.Map) {
	for key, value := range src {
		dst[key] = value
	}
}

func cloneValues(in Values) Values {
	out := make(Values, len(in))
	for name, fragment := range in {
		out[name] = fragment.Clone()
	}
	return out
}
