package runtime

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vcrobe/hookdom/dom"
	"github.com/vcrobe/hookdom/events"
	"github.com/vcrobe/hookdom/hooks"
	"github.com/vcrobe/hookdom/vdom"
)

// clicker renders a count and a button that increments it.
func clicker(p *hooks.Pass) (*vdom.VNode, error) {
	n, set := hooks.UseState(p, 0)
	return vdom.Div(nil,
		vdom.Paragraph(strconv.Itoa(n), nil),
		vdom.Button("+", map[string]any{"id": "inc", "onClick": func() { set.Update(func(v int) int { return v + 1 }) }}),
	), nil
}

// textbox renders a controlled input echoing its value.
func textbox(p *hooks.Pass) (*vdom.VNode, error) {
	v, set := hooks.UseState(p, "abc")
	return vdom.Div(nil,
		vdom.InputText(v, map[string]any{"id": "input", "onInput": func(e events.Input) { set.Set(e.Value) }}),
		vdom.Paragraph(v, nil),
	), nil
}

func mount(t *testing.T, root hooks.Component, opts ...Option) (*Controller, *dom.Memory, *[]RenderInfo) {
	t.Helper()
	doc := dom.NewMemory()
	c := NewController(doc, opts...)

	var renders []RenderInfo
	c.Rendered.Subscribe(func(info RenderInfo) { renders = append(renders, info) })

	require.NoError(t, c.Render(doc.MountPoint("root"), root))
	return c, doc, &renders
}

func TestController_RenderMounts(t *testing.T) {
	c := NewController(dom.NewMemory())
	assert.Equal(t, Unmounted, c.State())

	c, doc, renders := mount(t, clicker)

	assert.True(t, c.Mounted())
	assert.Equal(t, `<div id="root"><div><p>0</p><button id="inc">+</button></div></div>`, doc.HTML())
	require.Len(t, *renders, 1)
	assert.Equal(t, uint64(1), (*renders)[0].Seq)
	assert.Equal(t, 1, (*renders)[0].Slots)
}

func TestController_UpdateBeforeRender(t *testing.T) {
	c := NewController(dom.NewMemory())
	rendered := false
	c.Rendered.Subscribe(func(RenderInfo) { rendered = true })

	assert.ErrorIs(t, c.Update(), ErrNotMounted)
	assert.False(t, rendered)
	assert.Equal(t, Unmounted, c.State())
}

func TestController_RenderNeedsContainer(t *testing.T) {
	c := NewController(dom.NewMemory())
	assert.ErrorIs(t, c.Render(nil, clicker), ErrNoContainer)
	assert.False(t, c.Mounted())
}

func TestController_EachSetterCallRendersSynchronously(t *testing.T) {
	_, doc, renders := mount(t, clicker)

	require.NoError(t, doc.Click("inc"))
	assert.Len(t, *renders, 2, "the click handler returns after the re-render")
	assert.Contains(t, doc.HTML(), "<p>1</p>")

	require.NoError(t, doc.Click("inc"))
	require.NoError(t, doc.Click("inc"))
	assert.Len(t, *renders, 4)
	assert.Contains(t, doc.HTML(), "<p>3</p>")
}

func TestController_RecreatesSubtreeOnUpdate(t *testing.T) {
	c, doc, _ := mount(t, clicker)
	before, ok := doc.ElementByID("inc")
	require.True(t, ok)

	require.NoError(t, c.Update())
	after, ok := doc.ElementByID("inc")
	require.True(t, ok)

	assert.NotSame(t, before, after)
}

func TestController_FailedPassKeepsPreviousTree(t *testing.T) {
	fail := false
	boom := errors.New("boom")
	root := func(p *hooks.Pass) (*vdom.VNode, error) {
		n, err := clicker(p)
		if fail {
			return nil, boom
		}
		return n, err
	}
	c, doc, renders := mount(t, root)
	html := doc.HTML()

	fail = true
	err := c.Update()
	assert.ErrorIs(t, err, boom)
	assert.ErrorIs(t, c.Err(), boom)
	assert.Equal(t, html, doc.HTML())
	require.Len(t, *renders, 2)
	assert.ErrorIs(t, (*renders)[1].Err, boom)
}

func TestController_UnsupportedTagFailsBuild(t *testing.T) {
	doc := dom.NewMemory()
	c := NewController(doc)
	err := c.Render(doc.MountPoint("root"), func(p *hooks.Pass) (*vdom.VNode, error) {
		return vdom.NewVNode("blink", nil, nil, ""), nil
	})
	assert.ErrorIs(t, err, vdom.ErrUnsupportedTag)
	assert.True(t, c.Mounted(), "the root is recorded even when its first pass fails")
}

func TestController_ScheduledUpdateErrorIsRecorded(t *testing.T) {
	boom := errors.New("boom")
	root := func(p *hooks.Pass) (*vdom.VNode, error) {
		n, set := hooks.UseState(p, 0)
		if n > 0 {
			return nil, boom
		}
		return vdom.Button("+", map[string]any{"id": "inc", "onClick": func() { set.Set(n + 1) }}), nil
	}
	c, doc, _ := mount(t, root)
	html := doc.HTML()

	// The click handler's setter has no caller to report to.
	require.NoError(t, doc.Click("inc"))
	assert.ErrorIs(t, c.Err(), boom)
	assert.Equal(t, html, doc.HTML())
}

// TestController_EffectSetterRendersReentrantly documents the nested pass an
// effect starts when it changes state under the Immediate scheduler.
func TestController_EffectSetterRendersReentrantly(t *testing.T) {
	root := func(p *hooks.Pass) (*vdom.VNode, error) {
		n, set := hooks.UseState(p, 0)
		hooks.UseEffect(p, func() error {
			if n == 0 {
				set.Set(1)
			}
			return nil
		}, []any{n})
		return vdom.Paragraph(strconv.Itoa(n), nil), nil
	}

	_, doc, renders := mount(t, root)

	require.Len(t, *renders, 2)
	inner, outer := (*renders)[0], (*renders)[1]
	assert.Equal(t, 2, inner.Depth, "the nested pass finishes first")
	assert.Equal(t, uint64(2), inner.Seq)
	assert.Equal(t, 1, outer.Depth)
	assert.Equal(t, uint64(1), outer.Seq)

	// The outer pass attaches last, with the value it read before the effect.
	assert.Equal(t, `<div id="root"><p>0</p></div>`, doc.HTML())
}

func TestController_LoopDefersUpdates(t *testing.T) {
	loop := NewLoop()
	_, doc, renders := mount(t, clicker, WithLoop(loop))

	require.NoError(t, doc.Click("inc"))
	require.NoError(t, doc.Click("inc"))
	assert.Len(t, *renders, 1, "updates wait for the loop")
	assert.Equal(t, 2, loop.Len())

	// Both clicks hit the first tree's handler; the second read the stored value.
	assert.Equal(t, 2, loop.Drain())
	assert.Len(t, *renders, 3, "one render per state change")
	assert.Contains(t, doc.HTML(), "<p>2</p>")
}

func TestController_LoopRunsEffectUpdatesAfterPass(t *testing.T) {
	loop := NewLoop()
	root := func(p *hooks.Pass) (*vdom.VNode, error) {
		n, set := hooks.UseState(p, 0)
		hooks.UseEffect(p, func() error {
			if n == 0 {
				set.Set(1)
			}
			return nil
		}, []any{n})
		return vdom.Paragraph(strconv.Itoa(n), nil), nil
	}

	_, doc, renders := mount(t, root, WithLoop(loop))
	loop.Drain()

	require.Len(t, *renders, 2)
	for _, r := range *renders {
		assert.Equal(t, 1, r.Depth)
	}
	assert.Equal(t, `<div id="root"><p>1</p></div>`, doc.HTML())
}

func TestPreserveCursor(t *testing.T) {
	doc := dom.NewMemory()
	c := NewController(doc)
	c.PreserveCursor("input")
	require.NoError(t, c.Render(doc.MountPoint("root"), textbox))

	// "a|bc" + "x" -> "ax|bc"
	require.NoError(t, doc.Type("input", "axbc", 2))

	el, ok := doc.Active()
	require.True(t, ok, "the new input is focused")
	assert.Equal(t, "input", el.ID())
	assert.Equal(t, "axbc", el.Value())

	off, err := doc.CursorOffset("input")
	require.NoError(t, err)
	assert.Equal(t, 2, off)
}

func TestPreserveCursor_RegistersOncePerID(t *testing.T) {
	c := NewController(dom.NewMemory())
	c.PreserveCursor("input")
	c.PreserveCursor("input")
	assert.Len(t, c.before, 1)
	assert.Len(t, c.after, 1)

	c.PreserveCursor("other")
	assert.Len(t, c.before, 2)
}

func TestPreserveCursor_WithoutIt(t *testing.T) {
	doc := dom.NewMemory()
	c := NewController(doc)
	require.NoError(t, c.Render(doc.MountPoint("root"), textbox))

	require.NoError(t, doc.Type("input", "axbc", 2))

	_, ok := doc.Active()
	assert.False(t, ok, "focus is lost with the replaced element")
	off, err := doc.CursorOffset("input")
	require.NoError(t, err)
	assert.Equal(t, 4, off, "a fresh element has its caret at the end")
}

func TestPreserveCursor_IgnoresUnfocused(t *testing.T) {
	doc := dom.NewMemory()
	c := NewController(doc)
	c.PreserveCursor("input")
	root := func(p *hooks.Pass) (*vdom.VNode, error) {
		a, err := textbox(p)
		if err != nil {
			return nil, err
		}
		b, err := clicker(p)
		if err != nil {
			return nil, err
		}
		return vdom.Div(nil, a, b), nil
	}
	require.NoError(t, c.Render(doc.MountPoint("root"), root))

	require.NoError(t, doc.Click("inc"))
	_, ok := doc.Active()
	assert.False(t, ok, "a click elsewhere does not pull focus into the input")
}
