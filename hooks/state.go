package hooks

import "fmt"

// Setter replaces the value of one state slot. Every call signals the
// scheduler before returning; calls are not batched.
type Setter[T any] struct {
	engine *Engine
	index  int
}

// Set stores v.
func (s Setter[T]) Set(v T) {
	sl := s.engine.store.at(s.index)
	sl.kind, sl.value = valueSlot, v
	s.engine.schedule()
}

// Update stores fn applied to the current value.
func (s Setter[T]) Update(fn func(prev T) T) {
	prev, _ := s.engine.store.at(s.index).value.(T)
	s.Set(fn(prev))
}

// UseState claims the next slot. On first access the slot is initialized to
// initial; later passes ignore initial and return the stored value.
func UseState[T any](p *Pass, initial T) (T, Setter[T]) {
	v, i := useValue(p, "UseState", func() (T, error) { return initial, nil })
	return v, Setter[T]{engine: p.engine, index: i}
}

// UseStateFunc is UseState with a lazy initializer, run on first access
// only. An init error fails the pass.
func UseStateFunc[T any](p *Pass, init func() (T, error)) (T, Setter[T]) {
	v, i := useValue(p, "UseStateFunc", init)
	return v, Setter[T]{engine: p.engine, index: i}
}

// useValue claims the next slot as a value slot holding a T.
func useValue[T any](p *Pass, hook string, init func() (T, error)) (T, int) {
	var zero T
	i := p.next()

	switch sl := p.engine.store.at(i); sl.kind {
	case emptySlot:
		v, err := init()
		if err != nil {
			p.fail(fmt.Errorf("%s at slot %d: %w", hook, i, err))
			return zero, i
		}
		sl = p.engine.store.at(i)
		sl.kind, sl.value = valueSlot, v
		return v, i

	case valueSlot:
		if sl.value == nil && any(zero) == nil {
			// nil interface value of an interface type T
			return zero, i
		}
		v, ok := sl.value.(T)
		if !ok {
			p.fail(&OrderError{Index: i, Hook: hook, Found: fmt.Sprintf("value of type %T", sl.value)})
			return zero, i
		}
		return v, i

	default:
		p.fail(&OrderError{Index: i, Hook: hook, Found: sl.kind.String()})
		return zero, i
	}
}
