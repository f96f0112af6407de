// Package runtime mounts a root component into a document container and
// re-renders it from scratch whenever hook state changes.
package runtime

import (
	"github.com/vcrobe/hookdom/dom"
	"github.com/vcrobe/hookdom/hooks"
)

// Renderer is the mount contract schedulers drive.
type Renderer interface {
	// Render records (container, root) as the mounted root and renders it.
	Render(container dom.Element, root hooks.Component) error

	// Update re-renders the recorded root into the recorded container.
	Update() error
}
