// Package databinding renders component state into text.
package databinding

import (
	"strconv"

	"github.com/vcrobe/hookdom/events"
	"github.com/vcrobe/hookdom/hooks"
	"github.com/vcrobe/hookdom/vdom"
)

// Element ids.
const (
	IncrementID = "increment"
	LabelID     = "label"
)

// Counter shows a count and a label. The increment button bumps the count
// and the label input replaces the label.
func Counter(count int, label string) hooks.Component {
	return func(p *hooks.Pass) (*vdom.VNode, error) {
		n, setCount := hooks.UseState(p, count)
		l, setLabel := hooks.UseState(p, label)

		return vdom.Div(nil,
			vdom.Paragraph("Count: "+strconv.Itoa(n), nil),
			vdom.Paragraph("Label: "+l, nil),
			vdom.Button("Increment", map[string]any{
				"id":      IncrementID,
				"onClick": func() { setCount.Update(func(v int) int { return v + 1 }) },
			}),
			vdom.InputText(l, map[string]any{
				"id":      LabelID,
				"onInput": func(e events.Input) { setLabel.Set(e.Value) },
			}),
		), nil
	}
}
