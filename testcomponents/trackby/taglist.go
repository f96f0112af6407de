// Package trackby renders lists from slice state.
package trackby

import (
	"fmt"

	"github.com/vcrobe/hookdom/events"
	"github.com/vcrobe/hookdom/hooks"
	"github.com/vcrobe/hookdom/vdom"
)

// Element ids.
const (
	DraftID = "new-tag"
	AddID   = "add-tag"
	ClearID = "clear-tags"
)

// DefaultTags is the list TagList starts with when given nil.
var DefaultTags = []string{"golang", "wasm", "component", "framework"}

// TagList renders tags as "Tag i: name" items. The draft input holds the
// next tag; the add button appends it and the clear button empties the list.
//
// changed, if set, is called from an effect keyed on the tag slice. Slices
// are not comparable, so it runs on every pass.
func TagList(initial []string, changed func(tags []string)) hooks.Component {
	if initial == nil {
		initial = DefaultTags
	}
	return func(p *hooks.Pass) (*vdom.VNode, error) {
		tags, setTags := hooks.UseStateFunc(p, func() ([]string, error) {
			return append([]string(nil), initial...), nil
		})
		draft, setDraft := hooks.UseState(p, "")

		hooks.UseEffect(p, func() error {
			if changed != nil {
				changed(tags)
			}
			return nil
		}, []any{tags})

		items := make([]*vdom.VNode, 0, len(tags))
		for i, tag := range tags {
			items = append(items, vdom.NewVNode("li", map[string]any{"key": tag}, nil, fmt.Sprintf("Tag %d: %s", i, tag)))
		}

		return vdom.Div(nil,
			vdom.NewVNode("ul", nil, items, ""),
			vdom.InputText(draft, map[string]any{
				"id":      DraftID,
				"onInput": func(e events.Input) { setDraft.Set(e.Value) },
			}),
			vdom.Button("Add", map[string]any{
				"id": AddID,
				"onClick": func() {
					if draft == "" {
						return
					}
					setTags.Update(func(prev []string) []string {
						return append(append([]string(nil), prev...), draft)
					})
				},
			}),
			vdom.Button("Clear", map[string]any{
				"id":      ClearID,
				"onClick": func() { setTags.Set([]string{}) },
			}),
		), nil
	}
}
