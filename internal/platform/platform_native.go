//go:build !web

package platform

import (
	"github.com/alexisbeaulieu97/woosign/internal/render"
	"github.com/alexisbeaulieu97/woosign/internal/render/term"
)

// Name is the compiled host.
const Name = NameNative

func defaultRenderer() render.Renderer {
	return term.New()
}
