package appcomponents

import (
	"github.com/vcrobe/hookdom/dom"
	"github.com/vcrobe/hookdom/hooks"
	"github.com/vcrobe/hookdom/runtime"
	"github.com/vcrobe/hookdom/storage"
	"github.com/vcrobe/hookdom/vdom"
)

// App renders Counter then TextInput. They share nothing; each owns the
// slots it claims because both always render, in this order.
func App(kv storage.KV) hooks.Component {
	counter, input := Counter(kv), TextInput(kv)

	return func(p *hooks.Pass) (*vdom.VNode, error) {
		c, err := counter(p)
		if err != nil {
			return nil, err
		}
		i, err := input(p)
		if err != nil {
			return nil, err
		}
		return vdom.Div(nil, c, i), nil
	}
}

// Mount renders App into container and keeps the input's caret across
// re-renders. Mounting again on the same controller re-renders in place.
func Mount(c *runtime.Controller, container dom.Element, kv storage.KV) error {
	c.PreserveCursor(InputID)
	return c.Render(container, App(kv))
}
