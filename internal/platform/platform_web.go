//go:build web

package platform

import (
	"github.com/alexisbeaulieu97/woosign/internal/render"
	"github.com/alexisbeaulieu97/woosign/internal/render/web"
)

// Name is the compiled host.
const Name = NameWeb

func defaultRenderer() render.Renderer {
	return web.New()
}
