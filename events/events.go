// Package events describes host events delivered to component handlers and
// the scripted event form used to drive an in-memory document.
package events

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Input is the state of a text control right after an input event fired.
// Cursor is the caret position in runes, after the edit.
type Input struct {
	Value  string
	Cursor int
}

// Kind names a scripted event.
type Kind string

const (
	Click Kind = "click"
	Type  Kind = "type"
)

// EndOfValue as an Event.Cursor places the caret after the last rune.
const EndOfValue = -1

// Event is one scripted host event.
type Event struct {
	Kind   Kind
	Target string // element id
	Value  string // new control value, Type only
	Cursor int    // caret after the edit, Type only
}

var ErrBadEvent = errors.New("malformed event")

// Parse reads the scripted form of an event:
//
//	click:<id>
//	type:<id>:<value>[:<cursor>]
//
// A type event without a cursor leaves the caret at the end of the value.
// A value that itself contains ':' needs an explicit cursor, -1 for the
// end: "type:input:12:30:-1".
func Parse(s string) (Event, error) {
	kind, rest, ok := strings.Cut(s, ":")
	if !ok || rest == "" {
		return Event{}, fmt.Errorf("%w: %q", ErrBadEvent, s)
	}

	switch Kind(kind) {
	case Click:
		return Event{Kind: Click, Target: rest}, nil
	case Type:
		target, value, ok := strings.Cut(rest, ":")
		if !ok || target == "" {
			return Event{}, fmt.Errorf("%w: %q: want type:<id>:<value>[:<cursor>]", ErrBadEvent, s)
		}
		ev := Event{Kind: Type, Target: target, Value: value, Cursor: EndOfValue}
		if i := strings.LastIndex(value, ":"); i >= 0 {
			if n, err := strconv.Atoi(value[i+1:]); err == nil {
				ev.Value, ev.Cursor = value[:i], n
			}
		}
		return ev, nil
	default:
		return Event{}, fmt.Errorf("%w: unknown kind %q", ErrBadEvent, kind)
	}
}

// String returns the scripted form of e. A value containing ':' always
// carries its cursor, so Parse reads the same event back.
func (e Event) String() string {
	if e.Kind == Type {
		if e.Cursor == EndOfValue && !strings.Contains(e.Value, ":") {
			return fmt.Sprintf("type:%s:%s", e.Target, e.Value)
		}
		return fmt.Sprintf("type:%s:%s:%d", e.Target, e.Value, e.Cursor)
	}
	return fmt.Sprintf("%s:%s", e.Kind, e.Target)
}
