// Package hooks implements positional hook state for component functions.
//
// A component calls hooks in a fixed order during every render pass. Each
// call claims the next slot of the engine's Store; identity is the call
// position, not a name or key. Calling hooks conditionally shifts every
// later slot, which is not detected unless a slot of the wrong kind or type
// is hit.
package hooks

type slotKind uint8

const (
	emptySlot slotKind = iota
	valueSlot
	effectSlot
)

func (k slotKind) String() string {
	switch k {
	case valueSlot:
		return "value"
	case effectSlot:
		return "effect"
	default:
		return "empty"
	}
}

// slot is either a state value or the dependencies an effect last ran with.
type slot struct {
	kind  slotKind
	value any
	deps  []any
}

// Store is the ordered slot sequence of one mounted root. Slots are created
// on first access and never removed.
type Store struct {
	slots []slot
}

// Len returns the number of slots allocated so far.
func (s *Store) Len() int {
	return len(s.slots)
}

// Value returns the state held in slot i. ok is false for effect slots and
// slots that do not exist yet.
func (s *Store) Value(i int) (v any, ok bool) {
	if i < 0 || i >= len(s.slots) || s.slots[i].kind != valueSlot {
		return nil, false
	}
	return s.slots[i].value, true
}

// at returns slot i, growing the store as needed. The pointer is only
// valid until the next call that may grow the store.
func (s *Store) at(i int) *slot {
	for len(s.slots) <= i {
		s.slots = append(s.slots, slot{})
	}
	return &s.slots[i]
}
