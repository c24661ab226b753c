package variants

import (
	"sort"

	"github.com/alexisbeaulieu97/woosign/pkg/style"
)

// Outcome classifies how one axis contributed to a resolution.
type Outcome int

const (
	// OutcomeUnset means no value was supplied and the axis has no default.
	OutcomeUnset Outcome = iota
	// OutcomeFound means the supplied value is present in the axis table.
	OutcomeFound
	// OutcomeDefaulted means no value was supplied and the default is present
	// in the axis table.
	OutcomeDefaulted
	// OutcomeNotFound means an effective value exists but the table lacks it.
	// An explicit unknown value never falls back to the default.
	OutcomeNotFound
)

// String returns the lower-case name of the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeFound:
		return "found"
	case OutcomeDefaulted:
		return "defaulted"
	case OutcomeNotFound:
		return "not_found"
	default:
		return "unset"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// AxisResolution is the lookup result for a single axis.
type AxisResolution struct {
	Axis    string    `json:"axis" yaml:"axis"`
	Value   string    `json:"value,omitempty" yaml:"value,omitempty"`
	Outcome Outcome   `json:"outcome" yaml:"outcome"`
	Style   style.Map `json:"style,omitempty" yaml:"style,omitempty"`
}

// Contributes reports whether the axis adds styles to the result.
func (r AxisResolution) Contributes() bool {
	return r.Outcome == OutcomeFound || r.Outcome == OutcomeDefaulted
}

// Lookup resolves a single axis against sel. Unknown axis names yield
// OutcomeUnset. The returned Style is a copy.
func (d *Definition) Lookup(axis string, sel Selection) AxisResolution {
	pos, ok := d.index[axis]
	if !ok {
		return AxisResolution{Axis: axis, Outcome: OutcomeUnset}
	}
	res, fragment := d.lookup(pos, sel)
	if res.Contributes() {
		res.Style = fragment.Clone()
	}
	return res
}

// lookup decides between the supplied value, the configured default and
// nothing for the axis at pos. Lookup, Effective and Resolve all go through
// it. The returned fragment is the table's own map and must not be modified.
func (d *Definition) lookup(pos int, sel Selection) (AxisResolution, style.Map) {
	axis := d.axes[pos]
	res := AxisResolution{Axis: axis.Name, Outcome: OutcomeUnset}

	outcome := OutcomeFound
	value := sel[axis.Name]
	if value == "" {
		outcome = OutcomeDefaulted
		value = d.defaults[axis.Name]
	}
	if value == "" {
		return res, nil
	}

	res.Value = value
	fragment, ok := axis.Values[value]
	if !ok {
		res.Outcome = OutcomeNotFound
		return res, nil
	}
	res.Outcome = outcome
	return res, fragment
}

// Explain returns the lookup result of every declared axis in declaration
// order.
func (d *Definition) Explain(sel Selection) []AxisResolution {
	out := make([]AxisResolution, 0, len(d.axes))
	for _, axis := range d.axes {
		out = append(out, d.Lookup(axis.Name, sel))
	}
	return out
}

// MatchingCompounds returns the indexes of the compound rules that apply to
// sel, in declaration order.
func (d *Definition) MatchingCompounds(sel Selection) []int {
	effective := d.Effective(sel)
	var out []int
	for i, compound := range d.compounds {
		if compound.matches(effective) {
			out = append(out, i)
		}
	}
	return out
}

// Axes returns the declared axis names in declaration order.
func (d *Definition) Axes() []string {
	out := make([]string, len(d.axes))
	for i, axis := range d.axes {
		out[i] = axis.Name
	}
	return out
}

// HasAxis reports whether name is a declared axis.
func (d *Definition) HasAxis(name string) bool {
	_, ok := d.index[name]
	return ok
}

// AxisValues returns the value names of axis in lexical order, or nil when the
// axis is not declared.
func (d *Definition) AxisValues(axis string) []string {
	pos, ok := d.index[axis]
	if !ok {
		return nil
	}
	values := make([]string, 0, len(d.axes[pos].Values))
	for name := range d.axes[pos].Values {
		values = append(values, name)
	}
	sort.Strings(values)
	return values
}

// Defaults returns a copy of the configured default values.
func (d *Definition) Defaults() map[string]string {
	out := make(map[string]string, len(d.defaults))
	for name, value := range d.defaults {
		out[name] = value
	}
	return out
}

// Config returns a copy of the configuration d was compiled from, with
// duplicate axis declarations collapsed.
func (d *Definition) Config() Config {
	cfg := Config{
		Base:      d.base.Clone(),
		Axes:      make([]Axis, len(d.axes)),
		Defaults:  d.Defaults(),
		Compounds: make([]Compound, len(d.compounds)),
	}
	for i, axis := range d.axes {
		cfg.Axes[i] = Axis{Name: axis.Name, Values: cloneValues(axis.Values)}
	}
	for i, compound := range d.compounds {
		when := make(map[string]string, len(compound.When))
		for name, value := range compound.When {
			when[name] = value
		}
		cfg.Compounds[i] = Compound{When: when, Style: compound.Style.Clone()}
	}
	return cfg
}
