// Package term is the native host renderer: it turns component node trees
// into styled terminal output with lipgloss.
package term

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mitchellh/mapstructure"

	"github.com/alexisbeaulieu97/woosign/internal/render"
	"github.com/alexisbeaulieu97/woosign/pkg/style"
)

const (
	// pxPerColumn converts horizontal pixel metrics to terminal cells.
	pxPerColumn = 8
	// pxPerRow converts vertical pixel metrics to terminal rows.
	pxPerRow = 16
)

// Attributes is the subset of a style mapping the terminal host understands.
// Everything else in the mapping is ignored.
type Attributes struct {
	Color              string   `mapstructure:"color"`
	BackgroundColor    string   `mapstructure:"backgroundColor"`
	BorderColor        string   `mapstructure:"borderColor"`
	BorderWidth        float64  `mapstructure:"borderWidth"`
	BorderRadius       float64  `mapstructure:"borderRadius"`
	FontWeight         string   `mapstructure:"fontWeight"`
	FontStyle          string   `mapstructure:"fontStyle"`
	TextDecorationLine string   `mapstructure:"textDecorationLine"`
	TextDecoration     string   `mapstructure:"textDecoration"`
	TextAlign          string   `mapstructure:"textAlign"`
	Opacity            *float64 `mapstructure:"opacity"`
	Width              string   `mapstructure:"width"`
	FlexDirection      string   `mapstructure:"flexDirection"`
	Gap                float64  `mapstructure:"gap"`

	Padding           *float64 `mapstructure:"padding"`
	PaddingHorizontal *float64 `mapstructure:"paddingHorizontal"`
	PaddingVertical   *float64 `mapstructure:"paddingVertical"`
	PaddingTop        *float64 `mapstructure:"paddingTop"`
	PaddingRight      *float64 `mapstructure:"paddingRight"`
	PaddingBottom     *float64 `mapstructure:"paddingBottom"`
	PaddingLeft       *float64 `mapstructure:"paddingLeft"`

	Margin           *float64 `mapstructure:"margin"`
	MarginHorizontal *float64 `mapstructure:"marginHorizontal"`
	MarginVertical   *float64 `mapstructure:"marginVertical"`
	MarginTop        *float64 `mapstructure:"marginTop"`
	MarginRight      *float64 `mapstructure:"marginRight"`
	MarginBottom     *float64 `mapstructure:"marginBottom"`
	MarginLeft       *float64 `mapstructure:"marginLeft"`
}

// Decode extracts terminal attributes from m. Numeric strings and numbers
// are accepted interchangeably (fontWeight "600" or 600). Each key is
// decoded on its own: a value that does not fit its attribute, such as
// margin "auto", is skipped and reported in the joined error while every
// other attribute is kept.
func Decode(m style.Map) (Attributes, error) {
	var attrs Attributes
	var errs []error
	for _, key := range m.Keys() {
		next := attrs
		if err := decodeInto(&next, key, m[key]); err != nil {
			errs = append(errs, err)
			continue
		}
		attrs = next
	}
	return attrs, errors.Join(errs...)
}

func decodeInto(attrs *Attributes, key string, value any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           attrs,
	})
	if err != nil {
		return err
	}
	return decoder.Decode(map[string]any{key: value})
}

// Bold reports whether the font weight is semibold or heavier.
func (a Attributes) Bold() bool {
	weight, err := strconv.Atoi(strings.TrimSpace(a.FontWeight))
	if err != nil {
		return a.FontWeight == "bold"
	}
	return weight >= 600
}

// Underline reports whether any text decoration asks for an underline.
func (a Attributes) Underline() bool {
	return strings.Contains(a.TextDecorationLine, "underline") || strings.Contains(a.TextDecoration, "underline")
}

// Faint reports whether the element is rendered translucent.
func (a Attributes) Faint() bool {
	return a.Opacity != nil && *a.Opacity < 1
}

// PaddingCells returns top, right, bottom and left padding in cells.
func (a Attributes) PaddingCells() (int, int, int, int) {
	return sides(a.Padding, a.PaddingVertical, a.PaddingHorizontal, a.PaddingTop, a.PaddingRight, a.PaddingBottom, a.PaddingLeft)
}

// MarginCells returns top, right, bottom and left margin in cells.
func (a Attributes) MarginCells() (int, int, int, int) {
	return sides(a.Margin, a.MarginVertical, a.MarginHorizontal, a.MarginTop, a.MarginRight, a.MarginBottom, a.MarginLeft)
}

func sides(all, vertical, horizontal, top, right, bottom, left *float64) (int, int, int, int) {
	pick := func(specific, axis *float64) float64 {
		switch {
		case specific != nil:
			return *specific
		case axis != nil:
			return *axis
		case all != nil:
			return *all
		}
		return 0
	}
	return rows(pick(top, vertical)), columns(pick(right, horizontal)), rows(pick(bottom, vertical)), columns(pick(left, horizontal))
}

func columns(px float64) int {
	return int(math.Round(px / pxPerColumn))
}

func rows(px float64) int {
	return int(math.Round(px / pxPerRow))
}

// Renderer renders nodes with lipgloss.
type Renderer struct {
	lg *lipgloss.Renderer
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithLipgloss sets the lipgloss renderer, which decides the colour profile.
func WithLipgloss(lg *lipgloss.Renderer) Option {
	return func(r *Renderer) {
		r.lg = lg
	}
}

// New returns a terminal renderer using the default lipgloss renderer unless
// overridden.
func New(opts ...Option) *Renderer {
	r := &Renderer{lg: lipgloss.DefaultRenderer()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Name implements render.Renderer.
func (r *Renderer) Name() string {
	return "term"
}

// Style converts a style mapping to a lipgloss style. Values the terminal
// cannot represent are dropped one by one; the rest still apply.
func (r *Renderer) Style(m style.Map) lipgloss.Style {
	attrs, _ := Decode(m)
	return r.styleFor(attrs)
}

func (r *Renderer) styleFor(attrs Attributes) lipgloss.Style {
	s := r.lg.NewStyle()

	if isColor(attrs.Color) {
		s = s.Foreground(lipgloss.Color(attrs.Color))
	}
	if isColor(attrs.BackgroundColor) {
		s = s.Background(lipgloss.Color(attrs.BackgroundColor))
	}
	if attrs.Bold() {
		s = s.Bold(true)
	}
	if attrs.FontStyle == "italic" {
		s = s.Italic(true)
	}
	if attrs.Underline() {
		s = s.Underline(true)
	}
	if attrs.Faint() {
		s = s.Faint(true)
	}

	switch attrs.TextAlign {
	case "center":
		s = s.Align(lipgloss.Center)
	case "right":
		s = s.Align(lipgloss.Right)
	}

	if attrs.BorderWidth > 0 {
		border := lipgloss.NormalBorder()
		if attrs.BorderRadius > 0 {
			border = lipgloss.RoundedBorder()
		}
		s = s.Border(border)
		if isColor(attrs.BorderColor) {
			s = s.BorderForeground(lipgloss.Color(attrs.BorderColor))
		}
	}

	s = s.Padding(attrs.PaddingCells())
	s = s.Margin(attrs.MarginCells())

	if width, err := strconv.ParseFloat(attrs.Width, 64); err == nil && width > 0 {
		s = s.Width(columns(width))
	}

	return s
}

// Render implements render.Renderer.
func (r *Renderer) Render(n render.Node) string {
	attrs, _ := Decode(n.Style)
	s := r.styleFor(attrs)

	parts := make([]string, 0, len(n.Children)+1)
	if n.Text != "" {
		parts = append(parts, n.Text)
	}
	for _, child := range n.Children {
		if out := r.Render(child); out != "" {
			parts = append(parts, out)
		}
	}

	gap := columns(attrs.Gap)

	var body string
	switch attrs.FlexDirection {
	case "row", "row-reverse":
		body = joinRow(parts, gap)
	default:
		body = lipgloss.JoinVertical(lipgloss.Left, parts...)
	}

	return s.Render(body)
}

func joinRow(parts []string, gap int) string {
	if gap <= 0 || len(parts) < 2 {
		return lipgloss.JoinHorizontal(lipgloss.Center, parts...)
	}
	spaced := make([]string, 0, len(parts)*2-1)
	spacer := strings.Repeat(" ", gap)
	for i, part := range parts {
		if i > 0 {
			spaced = append(spaced, spacer)
		}
		spaced = append(spaced, part)
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, spaced...)
}

func isColor(c string) bool {
	return c != "" && c != "transparent"
}
