// Package testcomponents holds small components and a harness that mounts
// them on an in-memory document, for tests that run without a browser.
package testcomponents

import (
	"github.com/vcrobe/hookdom/dom"
	"github.com/vcrobe/hookdom/hooks"
	"github.com/vcrobe/hookdom/runtime"
	"github.com/vcrobe/hookdom/storage"
	"github.com/vcrobe/hookdom/vdom"
)

// Harness mounts a root on a dom.Memory document with a controller of its
// own. It captures the tree the root returned on its latest pass and every
// RenderInfo the controller published, so tests can:
//   - drive the document with Click and Type
//   - inspect the resulting HTML or virtual tree
//   - count passes
type Harness struct {
	Doc        *dom.Memory
	Container  *dom.MemNode
	KV         storage.KV
	Controller *runtime.Controller

	tree    *vdom.VNode
	renders []runtime.RenderInfo
}

// NewHarness creates an unmounted harness. A nil kv gets a fresh
// storage.Memory.
func NewHarness(kv storage.KV, opts ...runtime.Option) *Harness {
	if kv == nil {
		kv = storage.NewMemory()
	}
	doc := dom.NewMemory()
	h := &Harness{
		Doc:        doc,
		Container:  doc.MountPoint("root"),
		KV:         kv,
		Controller: runtime.NewController(doc, opts...),
	}
	h.Controller.Rendered.Subscribe(func(info runtime.RenderInfo) {
		h.renders = append(h.renders, info)
	})
	return h
}

// Render mounts root in the harness container.
func (h *Harness) Render(root hooks.Component) error {
	return h.Controller.Render(h.Container, h.Capture(root))
}

// Capture wraps root so that the tree of each successful pass is kept. Use
// it when mounting through a helper that calls Controller.Render itself.
func (h *Harness) Capture(root hooks.Component) hooks.Component {
	return func(p *hooks.Pass) (*vdom.VNode, error) {
		n, err := root(p)
		if err == nil {
			h.tree = n
		}
		return n, err
	}
}

// Tree returns the virtual tree of the latest successful pass.
func (h *Harness) Tree() *vdom.VNode { return h.tree }

// HTML serializes the document body.
func (h *Harness) HTML() string { return h.Doc.HTML() }

// Text returns the text content of the attached element with the given id,
// or "" if there is none.
func (h *Harness) Text(id string) string {
	el, ok := h.Doc.ElementByID(id)
	if !ok {
		return ""
	}
	return el.TextContent()
}

// Click clicks the element with the given id.
func (h *Harness) Click(id string) error { return h.Doc.Click(id) }

// Type edits the control with the given id, as dom.Memory.Type does.
func (h *Harness) Type(id, value string, cursor int) error {
	return h.Doc.Type(id, value, cursor)
}

// Renders returns the number of passes so far, failed ones included.
func (h *Harness) Renders() int { return len(h.renders) }

// LastRender returns the latest RenderInfo, or the zero value.
func (h *Harness) LastRender() runtime.RenderInfo {
	if len(h.renders) == 0 {
		return runtime.RenderInfo{}
	}
	return h.renders[len(h.renders)-1]
}
