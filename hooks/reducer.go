package hooks

// UseReducer claims the next slot, initialized to initial on first access.
// dispatch stores reducer(current, action) and signals the scheduler.
func UseReducer[S, A any](p *Pass, reducer func(S, A) S, initial S) (S, func(A)) {
	v, i := useValue(p, "UseReducer", func() (S, error) { return initial, nil })
	return v, dispatcher(p.engine, i, reducer)
}

// UseReducerFunc is UseReducer with a lazy initial state, computed on first
// access only. An init error fails the pass.
func UseReducerFunc[S, A any](p *Pass, reducer func(S, A) S, init func() (S, error)) (S, func(A)) {
	v, i := useValue(p, "UseReducerFunc", init)
	return v, dispatcher(p.engine, i, reducer)
}

func dispatcher[S, A any](e *Engine, i int, reducer func(S, A) S) func(A) {
	return func(action A) {
		sl := e.store.at(i)
		cur, _ := sl.value.(S)
		next := reducer(cur, action)

		sl = e.store.at(i)
		sl.kind, sl.value = valueSlot, next
		e.schedule()
	}
}
