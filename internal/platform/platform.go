// Package platform selects the host the module is compiled for. The choice
// is made at build time: building with the "web" tag targets the web host,
// anything else targets the native terminal host.
package platform

import "github.com/alexisbeaulieu97/woosign/internal/render"

// IsWeb reports whether the binary targets the web host.
func IsWeb() bool {
	return Name == NameWeb
}

// IsNative reports whether the binary targets the native host.
func IsNative() bool {
	return Name == NameNative
}

// Host names.
const (
	NameWeb    = "web"
	NameNative = "native"
)

// ScaleFontSize adapts a font size to the host. Both hosts use the size as is.
func ScaleFontSize(size float64) float64 {
	return size
}

// Default returns the renderer for the compiled host.
func Default() render.Renderer {
	return defaultRenderer()
}
