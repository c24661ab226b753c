package config

import (
	"fmt"
	"sort"
	"strings"
)

// Warning is a non-fatal finding about a definitions file. Resolution
// tolerates every warned condition, but the result is rarely what the author
// meant.
type Warning struct {
	Component string `json:"component" yaml:"component"`
	Field     string `json:"field" yaml:"field"`
	Line      int    `json:"line,omitempty" yaml:"line,omitempty"`
	Message   string `json:"message" yaml:"message"`
}

func (w Warning) String() string {
	loc := w.Component
	if w.Field != "" {
		loc += "." + w.Field
	}
	if w.Line > 0 {
		loc = fmt.Sprintf("%s (line %d)", loc, w.Line)
	}
	return loc + ": " + w.Message
}

// Lint reports misconfigurations in f, component by component in file order.
func Lint(f *File) []Warning {
	if f == nil {
		return nil
	}

	var warnings []Warning
	for _, c := range f.Components {
		warnings = append(warnings, lintComponent(c)...)
	}
	return warnings
}

func lintComponent(c Component) []Warning {
	var out []Warning
	warn := func(field string, line int, format string, args ...any) {
		out = append(out, Warning{Component: c.Name, Field: field, Line: line, Message: fmt.Sprintf(format, args...)})
	}

	tables := make(map[string]map[string]bool, len(c.Variants))
	for _, axis := range c.Variants {
		values := make(map[string]bool, len(axis.Values))
		for _, v := range axis.Values {
			values[v.Name] = true
			if len(v.Style) == 0 {
				warn("variants."+axis.Name+"."+v.Name, axis.Line, "value contributes no style")
			}
		}
		if len(values) == 0 {
			warn("variants."+axis.Name, axis.Line, "axis declares no values")
		}
		tables[axis.Name] = values
	}

	axes := make([]string, 0, len(c.DefaultVariants))
	for axis := range c.DefaultVariants {
		axes = append(axes, axis)
	}
	sort.Strings(axes)
	for _, axis := range axes {
		value := c.DefaultVariants[axis]
		table, declared := tables[axis]
		switch {
		case !declared:
			warn("defaultVariants."+axis, c.Line, "default set for undeclared axis %q", axis)
		case !table[value]:
			warn("defaultVariants."+axis, c.Line, "default value %q is not declared on axis %q (have %s)", value, axis, known(table))
		}
	}

	for i, cv := range c.CompoundVariants {
		field := fmt.Sprintf("compoundVariants[%d]", i)
		if len(cv.Style) == 0 {
			warn(field, cv.Line, "compound variant has no style")
		}
		if len(cv.When) == 0 {
			warn(field, cv.Line, "compound variant has no conditions and always applies")
		}

		conds := make([]string, 0, len(cv.When))
		for axis := range cv.When {
			conds = append(conds, axis)
		}
		sort.Strings(conds)
		for _, axis := range conds {
			table, declared := tables[axis]
			switch {
			case !declared:
				warn(field+"."+axis, cv.Line, "condition on undeclared axis %q never matches", axis)
			case !table[cv.When[axis]]:
				warn(field+"."+axis, cv.Line, "condition value %q is not declared on axis %q", cv.When[axis], axis)
			}
		}
	}

	return out
}

func known(table map[string]bool) string {
	names := make([]string, 0, len(table))
	for name := range table {
		names = append(names, name)
	}
	sort.Strings(names)
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, ", ")
}
