package theme

import (
	"fmt"
	"math"
	"strconv"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// HexToRGBA converts a #rrggbb colour to a CSS rgba() string.
func HexToRGBA(hex string, alpha float64) (string, error) {
	r, g, b, err := parseHex(hex)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", r, g, b, strconv.FormatFloat(alpha, 'f', -1, 64)), nil
}

// Lighten moves each channel percent% of the way towards white.
func Lighten(hex string, percent float64) (string, error) {
	return mapChannels(hex, func(c float64) float64 {
		return math.Min(255, math.Floor(c+(255-c)*(percent/100)))
	})
}

// Darken scales each channel down by percent%.
func Darken(hex string, percent float64) (string, error) {
	return mapChannels(hex, func(c float64) float64 {
		return math.Max(0, math.Floor(c*(1-percent/100)))
	})
}

func mapChannels(hex string, fn func(float64) float64) (string, error) {
	r, g, b, err := parseHex(hex)
	if err != nil {
		return "", err
	}
	out := colorful.Color{
		R: clampChannel(fn(float64(r))) / 255,
		G: clampChannel(fn(float64(g))) / 255,
		B: clampChannel(fn(float64(b))) / 255,
	}
	return out.Hex(), nil
}

func clampChannel(v float64) float64 {
	return math.Max(0, math.Min(255, v))
}

func parseHex(hex string) (uint8, uint8, uint8, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("parse colour %q: %w", hex, err)
	}
	r, g, b := c.RGB255()
	return r, g, b, nil
}
