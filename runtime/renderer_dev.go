//go:build dev

package runtime

import (
	"github.com/vcrobe/hookdom/hooks"
	"github.com/vcrobe/hookdom/vdom"
)

// renderPass runs one pass of root in development mode.
// In dev mode, panics propagate to aid debugging and fast failure.
func (c *Controller) renderPass(root hooks.Component) (*vdom.VNode, error) {
	return c.engine.Render(root)
}
