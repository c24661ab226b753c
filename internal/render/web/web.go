// Package web renders component node trees as HTML with inline styles.
package web

import (
	"fmt"
	"html"
	"math"
	"sort"
	"strconv"
	"strings"
	"unicode"

	"github.com/alexisbeaulieu97/woosign/internal/render"
	"github.com/alexisbeaulieu97/woosign/internal/theme"
	"github.com/alexisbeaulieu97/woosign/pkg/style"
)

// unitless lists properties whose numeric values carry no px suffix.
var unitless = map[string]bool{
	"scale":      true,
	"opacity":    true,
	"flex":       true,
	"flexGrow":   true,
	"flexShrink": true,
	"zIndex":     true,
	"fontWeight": true,
	"order":      true,
}

// voidTags never have children or a closing tag.
var voidTags = map[string]bool{
	"input": true,
	"img":   true,
	"br":    true,
	"hr":    true,
}

// hostOnly lists native-only properties that have no CSS equivalent.
var hostOnly = map[string]bool{
	"elevation":     true,
	"shadowColor":   true,
	"shadowOffset":  true,
	"shadowOpacity": true,
	"shadowRadius":  true,
}

// Renderer renders HTML.
type Renderer struct{}

// New returns a web renderer.
func New() Renderer {
	return Renderer{}
}

// Name implements render.Renderer.
func (Renderer) Name() string {
	return "web"
}

// Render implements render.Renderer.
func (r Renderer) Render(n render.Node) string {
	var b strings.Builder
	r.write(&b, n)
	return b.String()
}

func (r Renderer) write(b *strings.Builder, n render.Node) {
	tag := n.Tag
	if tag == "" {
		tag = "div"
	}

	b.WriteString("<")
	b.WriteString(tag)

	attrs := make(map[string]string, len(n.Attrs)+2)
	for k, v := range n.Attrs {
		attrs[k] = v
	}
	if n.Role != "" {
		attrs["data-part"] = n.Role
	}
	if css := CSS(n.Style); css != "" {
		attrs["style"] = css
	}

	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(b, ` %s="%s"`, k, html.EscapeString(attrs[k]))
	}

	if voidTags[tag] {
		b.WriteString(" />")
		return
	}
	b.WriteString(">")
	b.WriteString(html.EscapeString(n.Text))
	for _, child := range n.Children {
		r.write(b, child)
	}
	b.WriteString("</")
	b.WriteString(tag)
	b.WriteString(">")
}

// CSS serialises a style mapping as inline CSS declarations in property
// order.
func CSS(m style.Map) string {
	decls := Declarations(m)
	names := make([]string, 0, len(decls))
	for name := range decls {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, name+": "+decls[name])
	}
	return strings.Join(parts, "; ")
}

// Declarations translates a style mapping into CSS property/value pairs.
// Native-only shorthands are expanded and shadow tokens folded into
// box-shadow unless the mapping already sets one.
func Declarations(m style.Map) map[string]string {
	out := make(map[string]string, len(m))

	for _, key := range m.Keys() {
		value := m[key]
		if value == nil || hostOnly[key] {
			continue
		}

		switch key {
		case "paddingHorizontal":
			setPair(out, "padding-left", "padding-right", formatValue("padding", value))
			continue
		case "paddingVertical":
			setPair(out, "padding-top", "padding-bottom", formatValue("padding", value))
			continue
		case "marginHorizontal":
			setPair(out, "margin-left", "margin-right", formatValue("margin", value))
			continue
		case "marginVertical":
			setPair(out, "margin-top", "margin-bottom", formatValue("margin", value))
			continue
		case "textDecorationLine":
			out["text-decoration"] = formatValue(key, value)
			continue
		case "transform":
			out["transform"] = formatTransform(value)
			continue
		}

		out[kebab(key)] = formatValue(key, value)
	}

	if _, ok := out["box-shadow"]; !ok {
		if shadow := boxShadow(m); shadow != "" {
			out["box-shadow"] = shadow
		}
	}
	if _, ok := out["border-width"]; ok {
		if _, styled := out["border-style"]; !styled {
			out["border-style"] = "solid"
		}
	}

	return out
}

func setPair(out map[string]string, a, b, value string) {
	if _, ok := out[a]; !ok {
		out[a] = value
	}
	if _, ok := out[b]; !ok {
		out[b] = value
	}
}

func kebab(key string) string {
	var b strings.Builder
	for i, r := range key {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('-')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func formatValue(key string, value any) string {
	switch v := value.(type) {
	case string:
		return v
	case int:
		return withUnit(key, float64(v))
	case int64:
		return withUnit(key, float64(v))
	case float64:
		return withUnit(key, v)
	case float32:
		return withUnit(key, float64(v))
	case bool:
		return strconv.FormatBool(v)
	default:
		return fmt.Sprintf("%v", v)
	}
}

func withUnit(key string, v float64) string {
	num := strconv.FormatFloat(v, 'f', -1, 64)
	if unitless[key] || v == 0 {
		return num
	}
	return num + "px"
}

func formatTransform(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case []style.Map:
		parts := make([]string, 0, len(v))
		for _, op := range v {
			parts = append(parts, transformOp(op))
		}
		return strings.Join(parts, " ")
	case []any:
		parts := make([]string, 0, len(v))
		for _, item := range v {
			switch op := item.(type) {
			case style.Map:
				parts = append(parts, transformOp(op))
			case map[string]any:
				parts = append(parts, transformOp(style.Map(op)))
			}
		}
		return strings.Join(parts, " ")
	default:
		return fmt.Sprintf("%v", v)
	}
}

func transformOp(op style.Map) string {
	parts := make([]string, 0, len(op))
	for _, name := range op.Keys() {
		arg := op[name]
		rendered := formatValue("scale", arg)
		if strings.HasPrefix(name, "translate") {
			rendered = formatValue(name, arg)
		}
		parts = append(parts, fmt.Sprintf("%s(%s)", name, rendered))
	}
	return strings.Join(parts, " ")
}

func boxShadow(m style.Map) string {
	color, _ := m["shadowColor"].(string)
	if color == "" || color == "transparent" {
		return ""
	}
	opacity := toFloat(m["shadowOpacity"], 1)
	if opacity == 0 {
		return ""
	}

	var x, y float64
	switch offset := m["shadowOffset"].(type) {
	case style.Map:
		x, y = toFloat(offset["width"], 0), toFloat(offset["height"], 0)
	case map[string]any:
		x, y = toFloat(offset["width"], 0), toFloat(offset["height"], 0)
	}
	radius := toFloat(m["shadowRadius"], 0)

	return fmt.Sprintf("%s %s %s %s", px(x), px(y), px(radius), rgba(color, opacity))
}

func px(v float64) string {
	if v == 0 {
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64) + "px"
}

func rgba(color string, alpha float64) string {
	out, err := theme.HexToRGBA(color, math.Round(alpha*1000)/1000)
	if err != nil {
		return color
	}
	return out
}

func toFloat(v any, fallback float64) float64 {
	switch n := v.(type) {
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case float64:
		return n
	case float32:
		return float64(n)
	default:
		return fallback
	}
}
