package databinding

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vcrobe/hookdom/events"
	"github.com/vcrobe/hookdom/testcomponents"
)

func mount(t *testing.T, count int, label string) *testcomponents.Harness {
	t.Helper()
	h := testcomponents.NewHarness(nil)
	require.NoError(t, h.Render(Counter(count, label)))
	return h
}

// TestDataBinding_InitialRender verifies that state is interpolated into
// the tree on the first pass.
func TestDataBinding_InitialRender(t *testing.T) {
	h := mount(t, 5, "Test Counter")

	vnode := h.Tree()
	require.Equal(t, "div", vnode.Tag)
	require.Len(t, vnode.Children, 4)

	assert.Equal(t, "p", vnode.Children[0].Tag)
	assert.Equal(t, "Count: 5", vnode.Children[0].Content)
	assert.Equal(t, "Label: Test Counter", vnode.Children[1].Content)
}

// TestDataBinding_StateUpdate verifies that a click re-renders with the new
// count and leaves the label alone.
func TestDataBinding_StateUpdate(t *testing.T) {
	h := mount(t, 3, "Initial")

	require.NoError(t, h.Click(IncrementID))

	vnode := h.Tree()
	assert.Equal(t, "Count: 4", vnode.Children[0].Content)
	assert.Equal(t, "Label: Initial", vnode.Children[1].Content)
	assert.Equal(t, 2, h.Renders())
}

// TestDataBinding_MultipleUpdates verifies that each change renders once.
func TestDataBinding_MultipleUpdates(t *testing.T) {
	h := mount(t, 2, "Start")

	for i := 1; i <= 5; i++ {
		require.NoError(t, h.Click(IncrementID))
	}
	require.NoError(t, h.Type(LabelID, "Updated", events.EndOfValue))

	vnode := h.Tree()
	assert.Equal(t, "Count: 7", vnode.Children[0].Content)
	assert.Equal(t, "Label: Updated", vnode.Children[1].Content)
	assert.Equal(t, 7, h.Renders())
}

// TestDataBinding_RenderIsolation verifies that two mounted instances keep
// separate state.
func TestDataBinding_RenderIsolation(t *testing.T) {
	h1 := mount(t, 10, "First")
	h2 := mount(t, 20, "Second")

	require.NoError(t, h1.Click(IncrementID))

	assert.Equal(t, "Count: 11", h1.Tree().Children[0].Content)
	assert.Equal(t, "Count: 20", h2.Tree().Children[0].Content)
}
