package variants

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/alexisbeaulieu97/woosign/pkg/style"
)

func TestLookupOutcomes(t *testing.T) {
	t.Parallel()

	def := Define(Config{
		Axes: []Axis{
			{Name: "variant", Values: Values{"default": {"c": 1}, "ghost": {"c": 2}}},
			{Name: "size", Values: Values{"sm": {"s": 1}}},
			{Name: "align", Values: Values{"left": {"t": "left"}}},
		},
		Defaults: map[string]string{"variant": "default", "size": "md"},
	})

	tests := []struct {
		name    string
		axis    string
		sel     Selection
		outcome Outcome
		value   string
		style   style.Map
	}{
		{name: "explicit found", axis: "variant", sel: Selection{"variant": "ghost"}, outcome: OutcomeFound, value: "ghost", style: style.Map{"c": 2}},
		{name: "defaulted", axis: "variant", sel: nil, outcome: OutcomeDefaulted, value: "default", style: style.Map{"c": 1}},
		{name: "explicit unknown ignores default", axis: "variant", sel: Selection{"variant": "nope"}, outcome: OutcomeNotFound, value: "nope"},
		{name: "default missing from table", axis: "size", sel: nil, outcome: OutcomeNotFound, value: "md"},
		{name: "explicit over broken default", axis: "size", sel: Selection{"size": "sm"}, outcome: OutcomeFound, value: "sm", style: style.Map{"s": 1}},
		{name: "no value no default", axis: "align", sel: nil, outcome: OutcomeUnset},
		{name: "undeclared axis", axis: "shape", sel: Selection{"shape": "round"}, outcome: OutcomeUnset},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := def.Lookup(tt.axis, tt.sel)

			assert.Equal(t, tt.axis, got.Axis)
			assert.Equal(t, tt.outcome, got.Outcome)
			assert.Equal(t, tt.value, got.Value)
			assert.Equal(t, tt.style, got.Style)
			assert.Equal(t, tt.outcome == OutcomeFound || tt.outcome == OutcomeDefaulted, got.Contributes())
		})
	}
}

func TestExplainFollowsDeclarationOrder(t *testing.T) {
	t.Parallel()

	def := Define(Config{
		Axes: []Axis{
			{Name: "b", Values: Values{"on": {}}},
			{Name: "a", Values: Values{"on": {}}},
		},
	})

	got := def.Explain(Selection{"a": "on"})

	assert.Len(t, got, 2)
	assert.Equal(t, "b", got[0].Axis)
	assert.Equal(t, OutcomeUnset, got[0].Outcome)
	assert.Equal(t, "a", got[1].Axis)
	assert.Equal(t, OutcomeFound, got[1].Outcome)
}

func TestLookupReturnsCopy(t *testing.T) {
	t.Parallel()

	def := Define(Config{Axes: []Axis{{Name: "size", Values: Values{"sm": {"h": 36}}}}})

	got := def.Lookup("size", Selection{"size": "sm"})
	got.Style["h"] = 0

	assert.Equal(t, 36, def.Resolve(Selection{"size": "sm"})["h"])
}

func TestOutcomeString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "unset", OutcomeUnset.String())
	assert.Equal(t, "found", OutcomeFound.String())
	assert.Equal(t, "defaulted", OutcomeDefaulted.String())
	assert.Equal(t, "not_found", OutcomeNotFound.String())

	text, err := OutcomeNotFound.MarshalText()
	assert.NoError(t, err)
	assert.Equal(t, "not_found", string(text))
}

func TestIntrospection(t *testing.T) {
	t.Parallel()

	def := Define(Config{
		Base:     style.Map{"x": 1},
		Axes:     []Axis{{Name: "size", Values: Values{"lg": {}, "sm": {}}}},
		Defaults: map[string]string{"size": "sm"},
	})

	assert.Equal(t, []string{"size"}, def.Axes())
	assert.True(t, def.HasAxis("size"))
	assert.False(t, def.HasAxis("tone"))
	assert.Equal(t, []string{"lg", "sm"}, def.AxisValues("size"))
	assert.Nil(t, def.AxisValues("tone"))

	defaults := def.Defaults()
	defaults["size"] = "lg"
	assert.Equal(t, "sm", def.Defaults()["size"])

	cfg := def.Config()
	cfg.Base["x"] = 2
	assert.Equal(t, 1, def.Resolve(nil)["x"])
}

func TestExplainAgreesWithResolve(t *testing.T) {
	t.Parallel()

	def := Define(Config{
		Base: style.Map{"display": "flex", "color": "gray"},
		Axes: []Axis{
			{Name: "variant", Values: Values{"default": {"color": "black"}, "ghost": {"color": "none", "border": 0}}},
			{Name: "size", Values: Values{"sm": {"h": 8}, "lg": {"h": 12, "color": "blue"}}},
			{Name: "align", Values: Values{"left": {"t": "left"}}},
		},
		Defaults: map[string]string{"variant": "default", "size": "md"},
		Compounds: []Compound{
			{When: map[string]string{"variant": "ghost", "size": "lg"}, Style: style.Map{"h": 14}},
			{When: map[string]string{"size": "md"}, Style: style.Map{"h": 10}},
			{When: map[string]string{"variant": "nope"}, Style: style.Map{"color": "orange"}},
			{When: map[string]string{"align": "left"}, Style: style.Map{"t": "start"}},
			{Style: style.Map{"always": true}},
		},
	})
	compounds := def.Config().Compounds

	choices := map[string][]string{
		"variant": {"", "default", "ghost", "nope"},
		"size":    {"", "sm", "lg", "md", "xl"},
		"align":   {"", "left", "right"},
	}

	var selections []Selection
	for _, variant := range choices["variant"] {
		for _, size := range choices["size"] {
			for _, align := range choices["align"] {
				selections = append(selections, Selection{
					"variant": variant,
					"size":    size,
					"align":   align,
					"shape":   "round",
				})
			}
		}
	}
	selections = append(selections, nil)

	for _, sel := range selections {
		want := style.Map{"display": "flex", "color": "gray"}
		for _, res := range def.Explain(sel) {
			if res.Contributes() {
				for key, value := range res.Style {
					want[key] = value
				}
			}
		}
		for _, idx := range def.MatchingCompounds(sel) {
			for key, value := range compounds[idx].Style {
				want[key] = value
			}
		}

		assert.Equal(t, want, def.Resolve(sel), "selection %v", sel)
	}
}
