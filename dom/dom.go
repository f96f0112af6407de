// Package dom is the narrow document contract the renderer depends on:
// create nodes, set text and attributes, append and replace children, bind
// click and input handlers, and read or move a text control's caret.
//
// Memory implements it in-process for native builds and tests. Browser
// implements it over syscall/js.
package dom

import (
	"errors"

	"github.com/vcrobe/hookdom/events"
)

var (
	ErrNoElement   = errors.New("no such element")
	ErrForeignNode = errors.New("node belongs to another document")
)

// Node is anything that can be appended to an Element.
type Node interface {
	// TextContent returns the concatenated text of the node and its descendants.
	TextContent() string
}

// Element is a node that has a tag, attributes and children.
type Element interface {
	Node

	Tag() string
	ID() string
	SetAttribute(name, value string)

	// SetText replaces all children with a single text node.
	SetText(text string)

	Value() string
	SetValue(v string)

	AppendChild(n Node) error
	// ReplaceChildren removes all children.
	ReplaceChildren()

	OnClick(fn func())
	OnInput(fn func(events.Input))

	Focus()
}

// Document creates nodes and looks up attached elements.
type Document interface {
	CreateElement(tag string) Element
	CreateText(text string) Node

	// ElementByID finds an element attached to the document.
	ElementByID(id string) (Element, bool)

	// Active returns the focused element, if it is still attached.
	Active() (Element, bool)

	CursorOffset(id string) (int, error)
	// SetCursorOffset focuses the element and collapses its selection at offset.
	SetCursorOffset(id string, offset int) error
}
