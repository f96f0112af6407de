package dom

import (
	"fmt"
	"html"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/vcrobe/hookdom/events"
)

// Compile-time assertion to ensure Memory implements the Document interface.
var _ Document = (*Memory)(nil)

// Memory is an in-process document. It keeps just enough browser behavior
// for the renderer to be exercised natively: a body, attachment, focus that
// is lost when the focused element is detached, and a caret per control.
type Memory struct {
	body   *MemNode
	active *MemNode
}

// MemNode is an element or a text node of a Memory document.
type MemNode struct {
	doc      *Memory
	tag      string // "#text" for text nodes
	text     string
	attrs    map[string]string
	children []*MemNode
	parent   *MemNode

	value  string
	cursor int

	onClick func()
	onInput func(events.Input)
}

const textTag = "#text"

// NewMemory creates an empty document with a body.
func NewMemory() *Memory {
	d := &Memory{}
	d.body = d.newNode("body")
	return d
}

func (d *Memory) newNode(tag string) *MemNode {
	return &MemNode{doc: d, tag: tag, attrs: make(map[string]string)}
}

// Body returns the document body.
func (d *Memory) Body() *MemNode {
	return d.body
}

// MountPoint appends an empty <div id=id> to the body and returns it.
func (d *Memory) MountPoint(id string) *MemNode {
	el := d.newNode("div")
	el.SetAttribute("id", id)
	d.body.appendChild(el)
	return el
}

func (d *Memory) CreateElement(tag string) Element {
	return d.newNode(tag)
}

func (d *Memory) CreateText(text string) Node {
	n := d.newNode(textTag)
	n.text = text
	return n
}

func (d *Memory) ElementByID(id string) (Element, bool) {
	n := d.find(id)
	if n == nil {
		return nil, false
	}
	return n, true
}

func (d *Memory) find(id string) *MemNode {
	var walk func(n *MemNode) *MemNode
	walk = func(n *MemNode) *MemNode {
		if n.tag != textTag && n.attrs["id"] == id {
			return n
		}
		for _, c := range n.children {
			if found := walk(c); found != nil {
				return found
			}
		}
		return nil
	}
	return walk(d.body)
}

func (d *Memory) Active() (Element, bool) {
	if d.active == nil || !d.active.attached() {
		return nil, false
	}
	return d.active, true
}

func (d *Memory) CursorOffset(id string) (int, error) {
	n := d.find(id)
	if n == nil {
		return 0, fmt.Errorf("cursor of %q: %w", id, ErrNoElement)
	}
	return n.cursor, nil
}

func (d *Memory) SetCursorOffset(id string, offset int) error {
	n := d.find(id)
	if n == nil {
		return fmt.Errorf("set cursor of %q: %w", id, ErrNoElement)
	}
	n.Focus()
	n.cursor = clamp(offset, 0, utf8.RuneCountInString(n.value))
	return nil
}

// Click fires the click handler of the element with the given id.
func (d *Memory) Click(id string) error {
	n := d.find(id)
	if n == nil {
		return fmt.Errorf("click %q: %w", id, ErrNoElement)
	}
	if n.onClick != nil {
		n.onClick()
	}
	return nil
}

// Type focuses the element, replaces its value, places the caret and fires
// its input handler, the way a user edit does in a browser. A negative
// cursor places the caret at the end of the value.
func (d *Memory) Type(id, value string, cursor int) error {
	n := d.find(id)
	if n == nil {
		return fmt.Errorf("type into %q: %w", id, ErrNoElement)
	}
	n.Focus()
	n.value = value
	if cursor < 0 {
		cursor = utf8.RuneCountInString(value)
	}
	n.cursor = clamp(cursor, 0, utf8.RuneCountInString(value))
	if n.onInput != nil {
		n.onInput(events.Input{Value: n.value, Cursor: n.cursor})
	}
	return nil
}

// Dispatch delivers a scripted event.
func (d *Memory) Dispatch(ev events.Event) error {
	switch ev.Kind {
	case events.Click:
		return d.Click(ev.Target)
	case events.Type:
		return d.Type(ev.Target, ev.Value, ev.Cursor)
	default:
		return fmt.Errorf("dispatch %v: %w", ev, events.ErrBadEvent)
	}
}

// HTML serializes the children of the body. Attributes are sorted by name
// and an input's value is written as its value attribute.
func (d *Memory) HTML() string {
	var sb strings.Builder
	for _, c := range d.body.children {
		c.writeHTML(&sb)
	}
	return sb.String()
}

func (n *MemNode) Tag() string { return n.tag }

func (n *MemNode) ID() string { return n.attrs["id"] }

func (n *MemNode) Attribute(name string) (string, bool) {
	v, ok := n.attrs[name]
	return v, ok
}

func (n *MemNode) SetAttribute(name, value string) {
	n.attrs[name] = value
}

func (n *MemNode) SetText(text string) {
	n.ReplaceChildren()
	t := n.doc.CreateText(text).(*MemNode)
	n.appendChild(t)
}

func (n *MemNode) Value() string { return n.value }

// SetValue replaces the value and moves the caret to its end.
func (n *MemNode) SetValue(v string) {
	n.value = v
	n.cursor = utf8.RuneCountInString(v)
}

// Cursor returns the caret offset in runes.
func (n *MemNode) Cursor() int { return n.cursor }

func (n *MemNode) AppendChild(child Node) error {
	c, ok := child.(*MemNode)
	if !ok || c.doc != n.doc {
		return ErrForeignNode
	}
	n.appendChild(c)
	return nil
}

func (n *MemNode) appendChild(c *MemNode) {
	if c.parent != nil {
		c.parent.removeChild(c)
	}
	c.parent = n
	n.children = append(n.children, c)
}

func (n *MemNode) removeChild(c *MemNode) {
	for i, x := range n.children {
		if x == c {
			n.children = append(n.children[:i], n.children[i+1:]...)
			c.parent = nil
			return
		}
	}
}

func (n *MemNode) ReplaceChildren() {
	for _, c := range n.children {
		c.parent = nil
	}
	n.children = nil
}

// Children returns the child nodes.
func (n *MemNode) Children() []*MemNode { return n.children }

func (n *MemNode) OnClick(fn func()) { n.onClick = fn }

func (n *MemNode) OnInput(fn func(events.Input)) { n.onInput = fn }

func (n *MemNode) Focus() { n.doc.active = n }

func (n *MemNode) TextContent() string {
	if n.tag == textTag {
		return n.text
	}
	var sb strings.Builder
	for _, c := range n.children {
		sb.WriteString(c.TextContent())
	}
	return sb.String()
}

func (n *MemNode) attached() bool {
	for p := n; p != nil; p = p.parent {
		if p == n.doc.body {
			return true
		}
	}
	return false
}

func (n *MemNode) writeHTML(sb *strings.Builder) {
	if n.tag == textTag {
		sb.WriteString(html.EscapeString(n.text))
		return
	}

	attrs := make(map[string]string, len(n.attrs)+1)
	for k, v := range n.attrs {
		attrs[k] = v
	}
	if n.tag == "input" {
		attrs["value"] = n.value
	}
	names := make([]string, 0, len(attrs))
	for k := range attrs {
		names = append(names, k)
	}
	sort.Strings(names)

	sb.WriteString("<" + n.tag)
	for _, k := range names {
		fmt.Fprintf(sb, ` %s="%s"`, k, html.EscapeString(attrs[k]))
	}
	sb.WriteString(">")
	if n.tag == "input" {
		return
	}
	for _, c := range n.children {
		c.writeHTML(sb)
	}
	sb.WriteString("</" + n.tag + ">")
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
