// Package appcomponents holds the example application: a persisted counter
// and a persisted text input rendered side by side.
package appcomponents

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/vcrobe/hookdom/hooks"
	"github.com/vcrobe/hookdom/storage"
	"github.com/vcrobe/hookdom/vdom"
)

// Storage keys.
const (
	KeyState      = "state"
	KeyInputValue = "inputValue"
)

// Element ids.
const (
	IncreaseID = "increase"
	DecreaseID = "decrease"
	InputID    = "input"
)

// Action types understood by CounterReducer.
const (
	ActionIncrease = "increase"
	ActionDecrease = "decrease"
)

// ErrCorruptState is returned when the persisted counter cannot be decoded.
var ErrCorruptState = errors.New("corrupt persisted counter state")

// CounterState is persisted as {"count": N}.
type CounterState struct {
	Count int `json:"count"`
}

type Action struct {
	Type string
}

// CounterReducer applies increase and decrease; any other action returns
// prev unchanged.
func CounterReducer(prev CounterState, action Action) CounterState {
	switch action.Type {
	case ActionIncrease:
		return CounterState{Count: prev.Count + 1}
	case ActionDecrease:
		return CounterState{Count: prev.Count - 1}
	default:
		return prev
	}
}

// LoadCounter reads the persisted counter. An absent key or an empty value
// is a zero count; a value that does not decode is ErrCorruptState.
func LoadCounter(kv storage.KV) (CounterState, error) {
	raw, err := kv.Get(KeyState)
	if errors.Is(err, storage.ErrNotFound) || (err == nil && raw == "") {
		return CounterState{}, nil
	}
	if err != nil {
		return CounterState{}, fmt.Errorf("load counter: %w", err)
	}

	var s CounterState
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		return CounterState{}, fmt.Errorf("%w: %q: %v", ErrCorruptState, raw, err)
	}
	return s, nil
}

// Counter renders the count with increment and decrement buttons, and
// writes the state back to kv whenever it changes.
func Counter(kv storage.KV) hooks.Component {
	return func(p *hooks.Pass) (*vdom.VNode, error) {
		state, dispatch := hooks.UseReducerFunc(p, CounterReducer, func() (CounterState, error) {
			return LoadCounter(kv)
		})

		hooks.UseEffect(p, func() error {
			raw, err := json.Marshal(state)
			if err != nil {
				return err
			}
			return kv.Set(KeyState, string(raw))
		}, []any{state})

		return vdom.Div(nil,
			vdom.Paragraph(strconv.Itoa(state.Count), nil),
			vdom.Button("+", map[string]any{
				"id":      IncreaseID,
				"onClick": func() { dispatch(Action{Type: ActionIncrease}) },
			}),
			vdom.Button("-", map[string]any{
				"id":      DecreaseID,
				"onClick": func() { dispatch(Action{Type: ActionDecrease}) },
			}),
		), nil
	}
}
