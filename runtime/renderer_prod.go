//go:build !dev

package runtime

import (
	"fmt"

	"github.com/vcrobe/hookdom/hooks"
	"github.com/vcrobe/hookdom/vdom"
)

// PanicError is a panic raised by component code during a pass.
type PanicError struct {
	Seq   uint64
	Value any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("render %d: component panic: %v", e.Seq, e.Value)
}

// Unwrap exposes the panic value when it is an error.
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

// renderPass runs one pass of root in production mode.
// In production mode, panics are recovered and returned as *PanicError.
func (c *Controller) renderPass(root hooks.Component) (n *vdom.VNode, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			n, err = nil, &PanicError{Seq: c.seq, Value: rec}
		}
	}()
	return c.engine.Render(root)
}
