package runtime

import (
	"github.com/vcrobe/hookdom/console"
	"github.com/vcrobe/hookdom/hooks"
)

// Immediate renders inside the setter call: every state change produces a
// full synchronous pass before the setter returns. A setter called during
// a pass (from an effect) starts a nested pass. Nothing bounds the nesting;
// an effect that changes state on every pass never returns.
type Immediate struct {
	R Renderer
}

func (s *Immediate) ScheduleUpdate() {
	if err := s.R.Update(); err != nil {
		console.Debug("scheduled update failed", "err", err)
	}
}

// LoopScheduler queues one Update per state change on Loop. Updates run
// after the task that changed state returns, never nested, and are not
// coalesced.
type LoopScheduler struct {
	Loop *Loop
	R    Renderer
}

func (s *LoopScheduler) ScheduleUpdate() {
	ok := s.Loop.Post(func() {
		if err := s.R.Update(); err != nil {
			console.Debug("queued update failed", "err", err)
		}
	})
	if !ok {
		console.Warn("update dropped: loop closed")
	}
}

var (
	_ hooks.Scheduler = (*Immediate)(nil)
	_ hooks.Scheduler = (*LoopScheduler)(nil)
)
