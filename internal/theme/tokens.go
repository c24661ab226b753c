package theme

import (
	"encoding/json"
	"strconv"

	"github.com/alexisbeaulieu97/woosign/pkg/style"
)

// Palette holds the semantic colour tokens of one colour scheme.
type Palette struct {
	Background string `yaml:"background" toml:"background" json:"background"`
	Foreground string `yaml:"foreground" toml:"foreground" json:"foreground"`

	Card           string `yaml:"card" toml:"card" json:"card"`
	CardForeground string `yaml:"cardForeground" toml:"cardForeground" json:"cardForeground"`

	Popover           string `yaml:"popover" toml:"popover" json:"popover"`
	PopoverForeground string `yaml:"popoverForeground" toml:"popoverForeground" json:"popoverForeground"`

	Primary           string `yaml:"primary" toml:"primary" json:"primary"`
	PrimaryForeground string `yaml:"primaryForeground" toml:"primaryForeground" json:"primaryForeground"`

	Secondary           string `yaml:"secondary" toml:"secondary" json:"secondary"`
	SecondaryForeground string `yaml:"secondaryForeground" toml:"secondaryForeground" json:"secondaryForeground"`

	Muted           string `yaml:"muted" toml:"muted" json:"muted"`
	MutedForeground string `yaml:"mutedForeground" toml:"mutedForeground" json:"mutedForeground"`

	Accent           string `yaml:"accent" toml:"accent" json:"accent"`
	AccentForeground string `yaml:"accentForeground" toml:"accentForeground" json:"accentForeground"`

	Destructive           string `yaml:"destructive" toml:"destructive" json:"destructive"`
	DestructiveForeground string `yaml:"destructiveForeground" toml:"destructiveForeground" json:"destructiveForeground"`

	Border string `yaml:"border" toml:"border" json:"border"`
	Input  string `yaml:"input" toml:"input" json:"input"`
	Ring   string `yaml:"ring" toml:"ring" json:"ring"`
}

// Colors is the light palette.
var Colors = Palette{
	Background: "#FFFFFF",
	Foreground: "#0F172A",

	Card:           "#FFFFFF",
	CardForeground: "#0F172A",

	Popover:           "#FFFFFF",
	PopoverForeground: "#0F172A",

	Primary:           "#0F172A",
	PrimaryForeground: "#F8FAFC",

	Secondary:           "#F1F5F9",
	SecondaryForeground: "#0F172A",

	Muted:           "#F1F5F9",
	MutedForeground: "#64748B",

	Accent:           "#F1F5F9",
	AccentForeground: "#0F172A",

	Destructive:           "#EF4444",
	DestructiveForeground: "#F8FAFC",

	Border: "#E2E8F0",
	Input:  "#E2E8F0",
	Ring:   "#0F172A",
}

// DarkColors is the dark palette.
var DarkColors = Palette{
	Background: "#0F172A",
	Foreground: "#F8FAFC",

	Card:           "#0F172A",
	CardForeground: "#F8FAFC",

	Popover:           "#0F172A",
	PopoverForeground: "#F8FAFC",

	Primary:           "#F8FAFC",
	PrimaryForeground: "#0F172A",

	Secondary:           "#1E293B",
	SecondaryForeground: "#F8FAFC",

	Muted:           "#1E293B",
	MutedForeground: "#94A3B8",

	Accent:           "#1E293B",
	AccentForeground: "#F8FAFC",

	Destructive:           "#7F1D1D",
	DestructiveForeground: "#F8FAFC",

	Border: "#1E293B",
	Input:  "#1E293B",
	Ring:   "#CBD5E1",
}

// SpacingScale maps a spacing step (which may be fractional) to pixels.
type SpacingScale map[float64]int

// MarshalJSON encodes the scale with its steps as object keys.
func (s SpacingScale) MarshalJSON() ([]byte, error) {
	out := make(map[string]int, len(s))
	for step, px := range s {
		out[strconv.FormatFloat(step, 'f', -1, 64)] = px
	}
	return json.Marshal(out)
}

// Spacing is the spacing scale on a 4px base unit, keyed by step.
var Spacing = SpacingScale{
	0:   0,
	0.5: 2,
	1:   4,
	1.5: 6,
	2:   8,
	2.5: 10,
	3:   12,
	3.5: 14,
	4:   16,
	5:   20,
	6:   24,
	7:   28,
	8:   32,
	9:   36,
	10:  40,
	11:  44,
	12:  48,
	14:  56,
	16:  64,
	20:  80,
	24:  96,
}

// Space returns the spacing for step. Steps outside the scale use the 4px
// base unit directly.
func Space(step float64) int {
	if v, ok := Spacing[step]; ok {
		return v
	}
	return int(step * 4)
}

// Radius is the border radius scale.
var Radius = map[string]int{
	"none":    0,
	"sm":      4,
	"DEFAULT": 6,
	"md":      8,
	"lg":      12,
	"xl":      16,
	"2xl":     24,
	"3xl":     32,
	"full":    9999,
}

// FontSize pairs a font size with its line height.
type FontSize struct {
	Size       int `json:"size" yaml:"size"`
	LineHeight int `json:"lineHeight" yaml:"lineHeight"`
}

// TypographyScale groups font families, sizes and weights.
type TypographyScale struct {
	FontFamily map[string]string   `json:"fontFamily" yaml:"fontFamily"`
	FontSize   map[string]FontSize `json:"fontSize" yaml:"fontSize"`
	FontWeight map[string]string   `json:"fontWeight" yaml:"fontWeight"`
}

// Typography is the type scale.
var Typography = TypographyScale{
	FontFamily: map[string]string{
		"sans": "System",
		"mono": "monospace",
	},
	FontSize: map[string]FontSize{
		"xs":   {Size: 12, LineHeight: 16},
		"sm":   {Size: 14, LineHeight: 20},
		"base": {Size: 16, LineHeight: 24},
		"lg":   {Size: 18, LineHeight: 28},
		"xl":   {Size: 20, LineHeight: 28},
		"2xl":  {Size: 24, LineHeight: 32},
		"3xl":  {Size: 30, LineHeight: 36},
		"4xl":  {Size: 36, LineHeight: 40},
		"5xl":  {Size: 48, LineHeight: 48},
	},
	FontWeight: map[string]string{
		"thin":       "100",
		"extralight": "200",
		"light":      "300",
		"normal":     "400",
		"medium":     "500",
		"semibold":   "600",
		"bold":       "700",
		"extrabold":  "800",
		"black":      "900",
	},
}

// Shadows are elevation presets expressed as style fragments. Hosts without
// native shadows ignore them.
var Shadows = map[string]style.Map{
	"sm":      shadow("#000000", 1, 0.05, 2, 1),
	"DEFAULT": shadow("#000000", 1, 0.1, 3, 2),
	"md":      shadow("#000000", 4, 0.1, 6, 4),
	"lg":      shadow("#000000", 10, 0.1, 15, 8),
	"xl":      shadow("#000000", 20, 0.1, 25, 12),
	"none":    shadow("transparent", 0, 0, 0, 0),
}

func shadow(color string, offsetY int, opacity float64, radius, elevation int) style.Map {
	return style.Map{
		"shadowColor":   color,
		"shadowOffset":  style.Map{"width": 0, "height": offsetY},
		"shadowOpacity": opacity,
		"shadowRadius":  radius,
		"elevation":     elevation,
	}
}

// Duration holds animation durations in milliseconds.
var Duration = map[string]int{
	"fastest": 50,
	"faster":  100,
	"fast":    150,
	"normal":  200,
	"slow":    300,
	"slower":  400,
	"slowest": 500,
}

// ZIndex is the stacking scale. "auto" is carried as a string.
var ZIndex = map[string]any{
	"hide":     -1,
	"auto":     "auto",
	"base":     0,
	"docked":   10,
	"dropdown": 1000,
	"sticky":   1100,
	"banner":   1200,
	"overlay":  1300,
	"modal":    1400,
	"popover":  1500,
	"skipLink": 1600,
	"toast":    1700,
	"tooltip":  1800,
}

// FontSizeOf returns the size of a named step of the type scale.
func FontSizeOf(name string) int {
	return Typography.FontSize[name].Size
}

// LineHeightOf returns the line height of a named step of the type scale.
func LineHeightOf(name string) int {
	return Typography.FontSize[name].LineHeight
}

// Weight returns the named font weight.
func Weight(name string) string {
	return Typography.FontWeight[name]
}
