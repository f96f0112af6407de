package hooks

import (
	"errors"
	"fmt"
)

// ErrOrder reports that a hook found a slot written by a different hook.
// It is only detectable when the kinds or value types differ.
var ErrOrder = errors.New("hook order violation")

// OrderError describes a slot that does not match the hook reading it.
type OrderError struct {
	Index int    // slot position
	Hook  string // hook that claimed the slot
	Found string // what the slot holds
}

func (e *OrderError) Error() string {
	return fmt.Sprintf("hooks: %s at slot %d found %s", e.Hook, e.Index, e.Found)
}

func (e *OrderError) Unwrap() error {
	return ErrOrder
}
