package web

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/woosign/internal/render"
	"github.com/alexisbeaulieu97/woosign/pkg/style"
)

func TestCSSUnits(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input style.Map
		want  string
	}{
		{
			name:  "empty",
			input: style.Map{},
			want:  "",
		},
		{
			name:  "px suffix on lengths",
			input: style.Map{"paddingTop": 8, "fontSize": 14.5},
			want:  "font-size: 14.5px; padding-top: 8px",
		},
		{
			name:  "unitless properties",
			input: style.Map{"opacity": 0.5, "fontWeight": "600", "flex": 1},
			want:  "flex: 1; font-weight: 600; opacity: 0.5",
		},
		{
			name:  "zero stays bare",
			input: style.Map{"margin": 0},
			want:  "margin: 0",
		},
		{
			name:  "strings pass through",
			input: style.Map{"width": "100%", "color": "#0F172A"},
			want:  "color: #0F172A; width: 100%",
		},
		{
			name:  "nil values dropped",
			input: style.Map{"color": nil, "display": "flex"},
			want:  "display: flex",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, CSS(tt.input))
		})
	}
}

func TestDeclarationsExpandAxisShorthands(t *testing.T) {
	t.Parallel()

	decls := Declarations(style.Map{
		"paddingHorizontal": 16,
		"paddingVertical":   8,
		"paddingLeft":       4,
		"marginVertical":    2,
	})

	assert.Equal(t, "4px", decls["padding-left"])
	assert.Equal(t, "16px", decls["padding-right"])
	assert.Equal(t, "8px", decls["padding-top"])
	assert.Equal(t, "8px", decls["padding-bottom"])
	assert.Equal(t, "2px", decls["margin-top"])
	assert.Equal(t, "2px", decls["margin-bottom"])
	assert.NotContains(t, decls, "padding-horizontal")
}

func TestDeclarationsBorderStyle(t *testing.T) {
	t.Parallel()

	decls := Declarations(style.Map{"borderWidth": 1, "borderColor": "#E2E8F0"})
	assert.Equal(t, "solid", decls["border-style"])
	assert.Equal(t, "1px", decls["border-width"])

	dashed := Declarations(style.Map{"borderWidth": 1, "borderStyle": "dashed"})
	assert.Equal(t, "dashed", dashed["border-style"])
}

func TestDeclarationsTextDecoration(t *testing.T) {
	t.Parallel()

	decls := Declarations(style.Map{"textDecorationLine": "underline"})
	assert.Equal(t, map[string]string{"text-decoration": "underline"}, decls)
}

func TestDeclarationsTransform(t *testing.T) {
	t.Parallel()

	decls := Declarations(style.Map{
		"transform": []style.Map{{"scale": 0.98}, {"translateY": -1}},
	})
	assert.Equal(t, "scale(0.98) translateY(-1px)", decls["transform"])

	generic := Declarations(style.Map{
		"transform": []any{map[string]any{"rotate": "45deg"}},
	})
	assert.Equal(t, "rotate(45deg)", generic["transform"])
}

func TestDeclarationsShadow(t *testing.T) {
	t.Parallel()

	m := style.Map{
		"shadowColor":   "#000000",
		"shadowOffset":  style.Map{"width": 0, "height": 2},
		"shadowOpacity": 0.1,
		"shadowRadius":  4,
		"elevation":     2,
	}

	decls := Declarations(m)
	assert.Equal(t, "0 2px 4px rgba(0, 0, 0, 0.1)", decls["box-shadow"])
	assert.NotContains(t, decls, "elevation")
	assert.NotContains(t, decls, "shadow-color")

	transparent := Declarations(style.Map{"shadowColor": "transparent", "shadowOpacity": 0.5})
	assert.NotContains(t, transparent, "box-shadow")

	explicit := Declarations(style.Map{"boxShadow": "none", "shadowColor": "#000000"})
	assert.Equal(t, "none", explicit["box-shadow"])
}

func TestRender(t *testing.T) {
	t.Parallel()

	node := render.Node{
		Tag:   "button",
		Role:  "container",
		Attrs: map[string]string{"type": "button"},
		Style: style.Map{"opacity": 0.5},
		Children: []render.Node{
			{Tag: "span", Role: "label", Text: "Save & close"},
		},
	}

	out := New().Render(node)
	assert.Equal(t,
		`<button data-part="container" style="opacity: 0.5" type="button"><span data-part="label">Save &amp; close</span></button>`,
		out)
}

func TestRenderVoidAndDefaultTag(t *testing.T) {
	t.Parallel()

	r := New()
	require.Equal(t, "web", r.Name())

	assert.Equal(t, `<input placeholder="a &#34;b&#34;" />`,
		r.Render(render.Node{Tag: "input", Attrs: map[string]string{"placeholder": `a "b"`}}))
	assert.Equal(t, "<div></div>", r.Render(render.Node{}))
}
