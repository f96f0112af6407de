package appcomponents

import (
	"errors"
	"fmt"

	"github.com/vcrobe/hookdom/events"
	"github.com/vcrobe/hookdom/hooks"
	"github.com/vcrobe/hookdom/storage"
	"github.com/vcrobe/hookdom/vdom"
)

// TextInput renders a text control and an echo of its value, and writes
// the value back to kv whenever it changes. The caret survives re-renders
// only if the controller preserves InputID; see Mount.
func TextInput(kv storage.KV) hooks.Component {
	return func(p *hooks.Pass) (*vdom.VNode, error) {
		value, setValue := hooks.UseStateFunc(p, func() (string, error) {
			v, err := kv.Get(KeyInputValue)
			if errors.Is(err, storage.ErrNotFound) {
				return "", nil
			}
			if err != nil {
				return "", fmt.Errorf("load input: %w", err)
			}
			return v, nil
		})

		hooks.UseEffect(p, func() error {
			return kv.Set(KeyInputValue, value)
		}, []any{value})

		return vdom.Div(nil,
			vdom.InputText(value, map[string]any{
				"id":      InputID,
				"onInput": func(e events.Input) { setValue.Set(e.Value) },
			}),
			vdom.Paragraph(value, nil),
		), nil
	}
}
