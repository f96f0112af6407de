package dom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vcrobe/hookdom/events"
)

func TestMemory_HTML(t *testing.T) {
	doc := NewMemory()
	root := doc.MountPoint("root")

	p := doc.CreateElement("p")
	p.SetText(`a < "b"`)
	in := doc.CreateElement("input")
	in.SetAttribute("type", "text")
	in.SetAttribute("id", "input")
	in.SetValue("abc")

	require.NoError(t, root.AppendChild(p))
	require.NoError(t, root.AppendChild(in))

	assert.Equal(t,
		`<div id="root"><p>a &lt; &#34;b&#34;</p><input id="input" type="text" value="abc"></div>`,
		doc.HTML())
}

func TestMemory_ElementByIDOnlyFindsAttached(t *testing.T) {
	doc := NewMemory()
	root := doc.MountPoint("root")
	el := doc.CreateElement("input")
	el.SetAttribute("id", "input")

	_, ok := doc.ElementByID("input")
	assert.False(t, ok, "detached elements are not found")

	require.NoError(t, root.AppendChild(el))
	found, ok := doc.ElementByID("input")
	require.True(t, ok)
	assert.Same(t, el, found)
}

func TestMemory_FocusLostOnDetach(t *testing.T) {
	doc := NewMemory()
	root := doc.MountPoint("root")
	el := doc.CreateElement("input")
	el.SetAttribute("id", "input")
	require.NoError(t, root.AppendChild(el))

	el.Focus()
	active, ok := doc.Active()
	require.True(t, ok)
	assert.Equal(t, "input", active.ID())

	root.ReplaceChildren()
	_, ok = doc.Active()
	assert.False(t, ok)
}

func TestMemory_TypeFiresInputWithCursor(t *testing.T) {
	doc := NewMemory()
	root := doc.MountPoint("root")
	el := doc.CreateElement("input")
	el.SetAttribute("id", "input")
	require.NoError(t, root.AppendChild(el))

	var got []events.Input
	el.OnInput(func(in events.Input) { got = append(got, in) })

	require.NoError(t, doc.Type("input", "axbc", 2))
	require.NoError(t, doc.Type("input", "héllo", events.EndOfValue))

	assert.Equal(t, []events.Input{{Value: "axbc", Cursor: 2}, {Value: "héllo", Cursor: 5}}, got)

	off, err := doc.CursorOffset("input")
	require.NoError(t, err)
	assert.Equal(t, 5, off)
}

func TestMemory_SetCursorOffsetClampsAndFocuses(t *testing.T) {
	doc := NewMemory()
	root := doc.MountPoint("root")
	el := doc.CreateElement("input")
	el.SetAttribute("id", "input")
	el.SetValue("abc")
	require.NoError(t, root.AppendChild(el))

	require.NoError(t, doc.SetCursorOffset("input", 10))
	off, err := doc.CursorOffset("input")
	require.NoError(t, err)
	assert.Equal(t, 3, off)

	active, ok := doc.Active()
	require.True(t, ok)
	assert.Same(t, el, active)

	assert.ErrorIs(t, doc.SetCursorOffset("missing", 0), ErrNoElement)
}

func TestMemory_ClickAndDispatch(t *testing.T) {
	doc := NewMemory()
	root := doc.MountPoint("root")
	btn := doc.CreateElement("button")
	btn.SetAttribute("id", "increase")
	require.NoError(t, root.AppendChild(btn))

	clicks := 0
	btn.OnClick(func() { clicks++ })

	require.NoError(t, doc.Click("increase"))
	require.NoError(t, doc.Dispatch(events.Event{Kind: events.Click, Target: "increase"}))
	assert.Equal(t, 2, clicks)

	assert.ErrorIs(t, doc.Click("nope"), ErrNoElement)
}

func TestMemory_AppendForeignNode(t *testing.T) {
	a, b := NewMemory(), NewMemory()
	el := a.CreateElement("div")
	assert.ErrorIs(t, el.AppendChild(b.CreateText("x")), ErrForeignNode)
}
