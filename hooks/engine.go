package hooks

import (
	"github.com/vcrobe/hookdom/console"
	"github.com/vcrobe/hookdom/vdom"
)

// Component is a function component. It must call its hooks in the same
// order on every pass.
type Component func(p *Pass) (*vdom.VNode, error)

// Scheduler receives a signal every time a setter or dispatch changed a
// slot. It decides when the mounted root renders again.
type Scheduler interface {
	ScheduleUpdate()
}

// SchedulerFunc adapts a function to the Scheduler interface.
type SchedulerFunc func()

func (f SchedulerFunc) ScheduleUpdate() { f() }

// Engine renders components against one Store.
type Engine struct {
	store  Store
	sched  Scheduler
	passes uint64
}

// NewEngine creates an engine with an empty store. sched may be nil and set
// later with SetScheduler.
func NewEngine(sched Scheduler) *Engine {
	return &Engine{sched: sched}
}

// SetScheduler replaces the scheduler state changes are reported to.
func (e *Engine) SetScheduler(s Scheduler) {
	e.sched = s
}

// Store returns the engine's slot store.
func (e *Engine) Store() *Store {
	return &e.store
}

// Passes returns the number of render passes started.
func (e *Engine) Passes() uint64 {
	return e.passes
}

// Render runs one pass: a fresh cursor at zero, then c. An error recorded
// by a hook during the pass takes precedence over the one c returns, since
// it is usually the cause. Panics in c are not recovered.
func (e *Engine) Render(c Component) (*vdom.VNode, error) {
	e.passes++
	p := &Pass{engine: e}

	n, err := c(p)
	if p.err != nil {
		return nil, p.err
	}
	if err != nil {
		return nil, err
	}
	return n, nil
}

func (e *Engine) schedule() {
	if e.sched == nil {
		console.Warn("state changed, but no scheduler is attached (root not mounted?)")
		return
	}
	e.sched.ScheduleUpdate()
}

// Pass is the context of one render pass. It is passed by reference through
// the component call tree and must not be kept after the pass returns.
type Pass struct {
	engine *Engine
	cursor int
	err    error
}

// Cursor returns the index the next hook call will claim.
func (p *Pass) Cursor() int {
	return p.cursor
}

// Err returns the first error recorded during the pass.
func (p *Pass) Err() error {
	return p.err
}

func (p *Pass) next() int {
	i := p.cursor
	p.cursor++
	return i
}

func (p *Pass) fail(err error) {
	if p.err == nil {
		p.err = err
	}
}
