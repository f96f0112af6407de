package hooks

import (
	"fmt"
	"reflect"
)

// UseEffect claims the next slot and runs effect inline, during the pass,
// when any of these hold:
//   - deps is nil (run on every pass)
//   - the slot is new, or last stored no deps
//   - some deps[i] differs from the stored element at i, or has none
//
// Elements are compared with ==; pointers compare by identity, other
// comparable values by value, and an uncomparable element always differs.
// The new deps replace the stored ones before effect runs. An effect error
// fails the pass.
//
// Once the pass has failed, later effects do not run and their slots are
// left as they were. An effect that changes state triggers its update while
// the pass that ran it is still in progress.
func UseEffect(p *Pass, effect func() error, deps []any) {
	i := p.next()
	if p.err != nil {
		return
	}
	sl := p.engine.store.at(i)
	if sl.kind != emptySlot && sl.kind != effectSlot {
		p.fail(&OrderError{Index: i, Hook: "UseEffect", Found: sl.kind.String()})
		return
	}

	run := deps == nil || sl.kind == emptySlot || sl.deps == nil || depsChanged(sl.deps, deps)

	sl.kind = effectSlot
	if deps != nil {
		sl.deps = append(make([]any, 0, len(deps)), deps...)
	} else {
		sl.deps = nil
	}

	if !run {
		return
	}
	if err := effect(); err != nil {
		p.fail(fmt.Errorf("effect at slot %d: %w", i, err))
	}
}

func depsChanged(prev, next []any) bool {
	for i, d := range next {
		if i >= len(prev) || !sameDep(prev[i], d) {
			return true
		}
	}
	return false
}

func sameDep(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if reflect.TypeOf(a) != reflect.TypeOf(b) {
		return false
	}
	if !reflect.ValueOf(a).Comparable() {
		return false
	}
	return a == b
}
