//go:build js || wasm
// +build js wasm

package dom

import (
	"syscall/js"

	"github.com/vcrobe/hookdom/events"
)

// Compile-time assertion to ensure Browser implements the Document interface.
var _ Document = (*Browser)(nil)

// Browser is the page's document.
type Browser struct {
	doc js.Value
}

type jsNode struct {
	v js.Value
}

// jsElement tracks the Go callbacks it registered and the wrapped children
// appended through it, so replacing its children can release them.
type jsElement struct {
	jsNode
	b         *Browser
	callbacks []js.Func
	children  []Node
}

// NewBrowser wraps the global document.
func NewBrowser() *Browser {
	return &Browser{doc: js.Global().Get("document")}
}

func (b *Browser) CreateElement(tag string) Element {
	return &jsElement{jsNode: jsNode{v: b.doc.Call("createElement", tag)}, b: b}
}

func (b *Browser) CreateText(text string) Node {
	return &jsNode{v: b.doc.Call("createTextNode", text)}
}

// ElementByID wraps an element found in the page. The wrapper does not know
// about callbacks registered through other wrappers of the same element.
func (b *Browser) ElementByID(id string) (Element, bool) {
	el := b.doc.Call("getElementById", id)
	if !el.Truthy() {
		return nil, false
	}
	return &jsElement{jsNode: jsNode{v: el}, b: b}, true
}

func (b *Browser) Active() (Element, bool) {
	el := b.doc.Get("activeElement")
	if !el.Truthy() || el.Equal(b.doc.Get("body")) {
		return nil, false
	}
	return &jsElement{jsNode: jsNode{v: el}, b: b}, true
}

func (b *Browser) CursorOffset(id string) (int, error) {
	el := b.doc.Call("getElementById", id)
	if !el.Truthy() {
		return 0, ErrNoElement
	}
	return el.Get("selectionStart").Int(), nil
}

func (b *Browser) SetCursorOffset(id string, offset int) error {
	el := b.doc.Call("getElementById", id)
	if !el.Truthy() {
		return ErrNoElement
	}
	el.Call("focus")
	el.Call("setSelectionRange", offset, offset)
	return nil
}

func (n *jsNode) TextContent() string {
	return n.v.Get("textContent").String()
}

func (e *jsElement) Tag() string {
	return e.v.Get("tagName").String()
}

func (e *jsElement) ID() string {
	return e.v.Get("id").String()
}

func (e *jsElement) SetAttribute(name, value string) {
	e.v.Call("setAttribute", name, value)
}

func (e *jsElement) SetText(text string) {
	e.release()
	e.v.Set("textContent", text)
}

func (e *jsElement) Value() string {
	return e.v.Get("value").String()
}

func (e *jsElement) SetValue(v string) {
	e.v.Set("value", v)
}

func (e *jsElement) AppendChild(n Node) error {
	switch c := n.(type) {
	case *jsElement:
		e.v.Call("appendChild", c.v)
	case *jsNode:
		e.v.Call("appendChild", c.v)
	default:
		return ErrForeignNode
	}
	e.children = append(e.children, n)
	return nil
}

func (e *jsElement) ReplaceChildren() {
	e.release()
	e.v.Call("replaceChildren")
}

// release frees the callbacks of every wrapped descendant.
func (e *jsElement) release() {
	for _, c := range e.children {
		if ce, ok := c.(*jsElement); ok {
			ce.release()
			for _, cb := range ce.callbacks {
				cb.Release()
			}
			ce.callbacks = nil
		}
	}
	e.children = nil
}

func (e *jsElement) OnClick(fn func()) {
	cb := js.FuncOf(func(this js.Value, args []js.Value) any {
		fn()
		return nil
	})
	e.v.Call("addEventListener", "click", cb)
	e.callbacks = append(e.callbacks, cb)
}

func (e *jsElement) OnInput(fn func(events.Input)) {
	cb := js.FuncOf(func(this js.Value, args []js.Value) any {
		if len(args) == 0 {
			return nil
		}
		target := args[0].Get("target")
		fn(events.Input{
			Value:  target.Get("value").String(),
			Cursor: target.Get("selectionStart").Int(),
		})
		return nil
	})
	e.v.Call("addEventListener", "input", cb)
	e.callbacks = append(e.callbacks, cb)
}

func (e *jsElement) Focus() {
	e.v.Call("focus")
}
