// Package theme holds the design tokens (colours, spacing, radius, typography,
// shadows, durations, z-index) and the current colour scheme.
//
// Token tables are plain values: components embed them into style fragments
// at definition time and the variant engine treats them as opaque payload.
package theme

import (
	"fmt"
	"strings"
	"sync"

	"github.com/muesli/termenv"

	"github.com/alexisbeaulieu97/woosign/pkg/style"
)

// ColorScheme selects the palette of a Theme.
type ColorScheme string

const (
	SchemeLight  ColorScheme = "light"
	SchemeDark   ColorScheme = "dark"
	SchemeSystem ColorScheme = "system"
)

// ParseColorScheme parses a scheme name. The empty string is light.
func ParseColorScheme(s string) (ColorScheme, error) {
	switch ColorScheme(strings.ToLower(strings.TrimSpace(s))) {
	case "", SchemeLight:
		return SchemeLight, nil
	case SchemeDark:
		return SchemeDark, nil
	case SchemeSystem:
		return SchemeSystem, nil
	default:
		return "", fmt.Errorf("unknown color scheme %q", s)
	}
}

// BackgroundDetector reports whether the host has a dark background. It
// resolves SchemeSystem.
type BackgroundDetector func() bool

// TerminalBackground asks the controlling terminal for its background colour.
func TerminalBackground() bool {
	return termenv.HasDarkBackground()
}

// Theme is an immutable snapshot of the tokens for one colour scheme.
type Theme struct {
	Colors     Palette              `json:"colors" yaml:"colors"`
	Spacing    SpacingScale         `json:"spacing" yaml:"spacing"`
	Radius     map[string]int       `json:"borderRadius" yaml:"borderRadius"`
	Typography TypographyScale      `json:"typography" yaml:"typography"`
	Shadows    map[string]style.Map `json:"shadows" yaml:"shadows"`
	Duration   map[string]int       `json:"duration" yaml:"duration"`
	ZIndex     map[string]any       `json:"zIndex" yaml:"zIndex"`
	Scheme     ColorScheme          `json:"colorScheme" yaml:"colorScheme"`
	IsDark     bool                 `json:"isDark" yaml:"isDark"`
}

// New builds the theme for scheme using the package palettes. SchemeSystem
// is resolved with detect; a nil detector resolves it to light.
func New(scheme ColorScheme, detect BackgroundDetector) Theme {
	return NewWithPalettes(scheme, detect, Colors, DarkColors)
}

// NewWithPalettes is New with explicit light and dark palettes.
func NewWithPalettes(scheme ColorScheme, detect BackgroundDetector, light, dark Palette) Theme {
	isDark := scheme == SchemeDark
	if scheme == SchemeSystem && detect != nil {
		isDark = detect()
	}

	colors := light
	if isDark {
		colors = dark
	}

	return Theme{
		Colors:     colors,
		Spacing:    Spacing,
		Radius:     Radius,
		Typography: Typography,
		Shadows:    Shadows,
		Duration:   Duration,
		ZIndex:     ZIndex,
		Scheme:     scheme,
		IsDark:     isDark,
	}
}

// Provider holds the current colour scheme and hands out themes for it. It is
// safe for concurrent use.
type Provider struct {
	mu     sync.RWMutex
	scheme ColorScheme
	detect BackgroundDetector
	light  Palette
	dark   Palette
}

// ProviderOption customises a Provider.
type ProviderOption func(*Provider)

// WithDetector sets the detector used for SchemeSystem.
func WithDetector(detect BackgroundDetector) ProviderOption {
	return func(p *Provider) {
		p.detect = detect
	}
}

// WithPalettes replaces the light and dark palettes.
func WithPalettes(light, dark Palette) ProviderOption {
	return func(p *Provider) {
		p.light = light
		p.dark = dark
	}
}

// NewProvider returns a Provider starting at scheme. An empty scheme is light.
func NewProvider(scheme ColorScheme, opts ...ProviderOption) *Provider {
	if scheme == "" {
		scheme = SchemeLight
	}
	p := &Provider{
		scheme: scheme,
		detect: TerminalBackground,
		light:  Colors,
		dark:   DarkColors,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Theme returns the theme for the current scheme.
func (p *Provider) Theme() Theme {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return NewWithPalettes(p.scheme, p.detect, p.light, p.dark)
}

// ColorScheme returns the current scheme.
func (p *Provider) ColorScheme() ColorScheme {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.scheme
}

// SetColorScheme replaces the current scheme.
func (p *Provider) SetColorScheme(scheme ColorScheme) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.scheme = scheme
}

// ToggleColorScheme switches between light and dark and returns the new
// scheme. Anything that is not light becomes light.
func (p *Provider) ToggleColorScheme() ColorScheme {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.scheme == SchemeLight {
		p.scheme = SchemeDark
	} else {
		p.scheme = SchemeLight
	}
	return p.scheme
}
