// Package vdom describes the output of a render pass as a tree of node
// descriptors. Build materializes a tree into a dom.Document.
package vdom

import "github.com/vcrobe/hookdom/events"

// TextTag is the Tag of a bare text node.
const TextTag = "#text"

// VNode represents a virtual DOM node.
type VNode struct {
	Tag        string             // The HTML tag name
	Attributes map[string]any     // The attributes of the node
	Children   []*VNode           // The child nodes
	Content    string             // Text content, or the value of an input
	OnClick    func()             // Optional click event handler
	OnInput    func(events.Input) // Optional input event handler
}

// NewVNode creates a new VNode. Handlers passed as the "onClick" and
// "onInput" attributes are moved to their fields so they are not rendered
// as HTML attributes.
func NewVNode(tag string, attributes map[string]any, children []*VNode, content string) *VNode {
	v := &VNode{
		Tag:        tag,
		Attributes: attributes,
		Children:   children,
		Content:    content,
	}
	if attributes == nil {
		return v
	}
	if f, ok := attributes["onClick"].(func()); ok {
		v.OnClick = f
		delete(attributes, "onClick")
	}
	if f, ok := attributes["onInput"].(func(events.Input)); ok {
		v.OnInput = f
		delete(attributes, "onInput")
	}
	return v
}

// SetContent updates the Content field of the VNode.
func (v *VNode) SetContent(content string) {
	v.Content = content
}

// ID returns the "id" attribute, or "".
func (v *VNode) ID() string {
	if id, ok := v.Attributes["id"].(string); ok {
		return id
	}
	return ""
}

// Find returns the first node in depth-first order whose id is id.
func (v *VNode) Find(id string) *VNode {
	if v == nil {
		return nil
	}
	if v.ID() == id {
		return v
	}
	for _, c := range v.Children {
		if found := c.Find(id); found != nil {
			return found
		}
	}
	return nil
}

// Text creates a bare text node.
func Text(content string) *VNode {
	return NewVNode(TextTag, nil, nil, content)
}

// Paragraph creates a <p> VNode with the given text as its child and allows passing attributes.
func Paragraph(text string, attrs map[string]any) *VNode {
	return NewVNode("p", attrs, nil, text)
}

// InputText returns a VNode representing an <input type="text"> element
// holding value.
func InputText(value string, attrs map[string]any) *VNode {
	if attrs == nil {
		attrs = make(map[string]any)
	}
	attrs["type"] = "text"
	return NewVNode("input", attrs, nil, value)
}

// Div creates a <div> VNode with the given children and allows passing attributes.
func Div(attrs map[string]any, children ...*VNode) *VNode {
	return NewVNode("div", attrs, children, "")
}

// Button creates a <button> VNode with the given children and allows passing attributes.
func Button(content string, attrs map[string]any, children ...*VNode) *VNode {
	return NewVNode("button", attrs, children, content)
}
