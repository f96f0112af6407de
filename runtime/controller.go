package runtime

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/vcrobe/hookdom/console"
	"github.com/vcrobe/hookdom/dom"
	"github.com/vcrobe/hookdom/hooks"
	"github.com/vcrobe/hookdom/signals"
	"github.com/vcrobe/hookdom/vdom"
)

// Compile-time assertion to ensure Controller implements the Renderer interface.
var _ Renderer = (*Controller)(nil)

var (
	// ErrNotMounted is returned by Update before the first Render.
	ErrNotMounted = errors.New("update before render: no mounted root")
	// ErrNoContainer is returned by Render without a container.
	ErrNoContainer = errors.New("no container element")
)

// State is the mount state. There is no transition out of Mounted.
type State int

const (
	Unmounted State = iota
	Mounted
)

func (s State) String() string {
	if s == Mounted {
		return "mounted"
	}
	return "unmounted"
}

// RenderInfo describes one finished render pass.
type RenderInfo struct {
	Seq      uint64
	Depth    int // > 1 when the pass started inside another pass
	Slots    int
	Duration time.Duration
	Err      error
}

// Controller owns the container, the root component and the hook engine of
// one mounted tree. It is not safe for concurrent use; see Loop.
type Controller struct {
	doc    dom.Document
	engine *hooks.Engine
	log    *slog.Logger

	container dom.Element
	root      hooks.Component
	state     State

	before    []func()
	after     []func()
	preserved map[string]bool

	seq     uint64
	depth   int
	lastErr error

	// Rendered is set after every pass, failed ones included.
	Rendered *signals.Signal[RenderInfo]
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logger. The default is console.L.
func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) { c.log = l }
}

// WithScheduler sets how state changes reach Update. The default is
// Immediate.
func WithScheduler(newScheduler func(Renderer) hooks.Scheduler) Option {
	return func(c *Controller) { c.engine.SetScheduler(newScheduler(c)) }
}

// WithLoop queues updates on l instead of rendering inside the setter call.
func WithLoop(l *Loop) Option {
	return WithScheduler(func(r Renderer) hooks.Scheduler { return &LoopScheduler{Loop: l, R: r} })
}

// NewController creates an unmounted controller rendering into doc.
func NewController(doc dom.Document, opts ...Option) *Controller {
	c := &Controller{
		doc:      doc,
		log:      console.L,
		Rendered: signals.NewSignal(RenderInfo{}),
	}
	c.engine = hooks.NewEngine(nil)
	c.engine.SetScheduler(&Immediate{R: c})

	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Render records (container, root) as the mounted root, entering the
// Mounted state, and renders it. This is the only way to mount.
func (c *Controller) Render(container dom.Element, root hooks.Component) error {
	if container == nil {
		return ErrNoContainer
	}
	if root == nil {
		return errors.New("render: nil root component")
	}

	c.container, c.root = container, root
	if c.state == Unmounted {
		c.state = Mounted
		c.log.Debug("mounted", "container", container.ID())
	}
	return c.renderRoot()
}

// Update re-renders the mounted root. Before the first Render it returns
// ErrNotMounted and does nothing.
func (c *Controller) Update() error {
	if c.state != Mounted {
		c.log.Warn("update requested before render")
		return ErrNotMounted
	}
	return c.renderRoot()
}

// renderRoot runs a pass and swaps its tree into the container. The pass
// and the materialization happen before the container is cleared, so a
// failure leaves the previous tree in place.
func (c *Controller) renderRoot() (err error) {
	c.seq++
	c.depth++
	seq, depth, start := c.seq, c.depth, time.Now()
	if depth > 1 {
		c.log.Warn("re-entrant render", "seq", seq, "depth", depth)
	}

	defer func() {
		c.depth--
		c.lastErr = err
		info := RenderInfo{
			Seq:      seq,
			Depth:    depth,
			Slots:    c.engine.Store().Len(),
			Duration: time.Since(start),
			Err:      err,
		}
		if err != nil {
			c.log.Error("render failed", "seq", seq, "err", err)
		} else {
			c.log.Debug("rendered", "seq", seq, "depth", depth, "slots", info.Slots, "took", info.Duration)
		}
		c.Rendered.Set(info)
	}()

	for _, fn := range c.before {
		fn()
	}

	tree, err := c.renderPass(c.root)
	if err != nil {
		return err
	}
	node, err := vdom.Build(c.doc, tree)
	if err != nil {
		return fmt.Errorf("build: %w", err)
	}

	c.container.ReplaceChildren()
	if err := c.container.AppendChild(node); err != nil {
		return fmt.Errorf("attach: %w", err)
	}

	for _, fn := range c.after {
		fn()
	}
	return nil
}

// BeforeRender registers fn to run at the start of every pass, while the
// previous tree is still attached.
func (c *Controller) BeforeRender(fn func()) {
	c.before = append(c.before, fn)
}

// AfterRender registers fn to run after every successful pass, once the
// new tree is attached.
func (c *Controller) AfterRender(fn func()) {
	c.after = append(c.after, fn)
}

// State returns the mount state.
func (c *Controller) State() State { return c.state }

// Mounted reports whether Render has been called.
func (c *Controller) Mounted() bool { return c.state == Mounted }

// Err returns the result of the most recent pass. Scheduled updates have no
// caller to return their error to; this is where it ends up.
func (c *Controller) Err() error { return c.lastErr }

// Engine returns the hook engine of the mounted tree.
func (c *Controller) Engine() *hooks.Engine { return c.engine }

// Container returns the mounted container, or nil.
func (c *Controller) Container() dom.Element { return c.container }
