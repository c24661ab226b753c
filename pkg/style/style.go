// Package style holds the StyleMapping payload shared by variant definitions,
// components and host renderers, together with the merge utility used to layer
// fragments over each other.
//
// A Map is opaque: keys are style property names (fontSize, backgroundColor,
// shadowOffset, ...) and values are whatever the host renderer understands.
// Nothing in this package interprets them.
package style

import "sort"

// Map is a flat style mapping from property name to value.
type Map map[string]any

// Merge flattens fragments into a single new Map. For every key, the value of
// the right-most fragment defining it wins. Nil fragments are placeholders for
// layers that do not apply right now and are skipped. Inputs are never
// mutated and the result is never nil.
func Merge(fragments ...Map) Map {
	size := 0
	for _, fragment := range fragments {
		size += len(fragment)
	}

	out := make(Map, size)
	for _, fragment := range fragments {
		for key, value := range fragment {
			out[key] = value
		}
	}
	return out
}

// When returns m if cond holds and nil otherwise, so conditional layers can be
// passed inline to Merge:
//
//	style.Merge(base, style.When(hovered, hover), userStyle)
func When(cond bool, m Map) Map {
	if !cond {
		return nil
	}
	return m
}

// Clone returns a shallow copy of m. Cloning a nil Map yields an empty Map.
func (m Map) Clone() Map {
	out := make(Map, len(m))
	for key, value := range m {
		out[key] = value
	}
	return out
}

// Keys returns the property names of m in lexical order.
func (m Map) Keys() []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Without returns a copy of m with the named keys removed.
func (m Map) Without(keys ...string) Map {
	out := m.Clone()
	for _, key := range keys {
		delete(out, key)
	}
	return out
}

// Compact returns a copy of m without nil values. Components use it where an
// unset prop must not produce a key at all.
func (m Map) Compact() Map {
	out := make(Map, len(m))
	for key, value := range m {
		if value == nil {
			continue
		}
		out[key] = value
	}
	return out
}
