package vdom

import (
	"errors"
	"fmt"
	"sort"

	"github.com/vcrobe/hookdom/dom"
)

var ErrUnsupportedTag = errors.New("unsupported tag")

// Build creates the document nodes for n and all its descendants. Nothing
// is attached to the document; the caller appends the returned node.
func Build(doc dom.Document, n *VNode) (dom.Node, error) {
	if n == nil {
		return nil, errors.New("vdom: nil node")
	}

	switch n.Tag {
	case TextTag:
		return doc.CreateText(n.Content), nil

	case "input", "textarea":
		el := doc.CreateElement(n.Tag)
		setAttributes(el, n.Attributes)
		// For text controls Content is the value, not a child
		el.SetValue(n.Content)
		attachHandlers(el, n)
		return el, nil

	case "div", "p", "span", "button", "label", "ul", "li", "h1", "h2":
		el := doc.CreateElement(n.Tag)
		setAttributes(el, n.Attributes)
		if n.Content != "" {
			el.SetText(n.Content)
		}
		for _, child := range n.Children {
			if child == nil {
				continue
			}
			childEl, err := Build(doc, child)
			if err != nil {
				return nil, err
			}
			if err := el.AppendChild(childEl); err != nil {
				return nil, fmt.Errorf("append <%s> to <%s>: %w", child.Tag, n.Tag, err)
			}
		}
		attachHandlers(el, n)
		return el, nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedTag, n.Tag)
	}
}

// setAttributes sets attributes in name order. Boolean attributes are set
// with an empty value when true and omitted when false.
func setAttributes(el dom.Element, attrs map[string]any) {
	names := make([]string, 0, len(attrs))
	for k := range attrs {
		names = append(names, k)
	}
	sort.Strings(names)

	for _, k := range names {
		switch v := attrs[k].(type) {
		case bool:
			if v {
				el.SetAttribute(k, "")
			}
		case string:
			el.SetAttribute(k, v)
		case func(), nil:
			// Handlers belong in OnClick/OnInput
		default:
			el.SetAttribute(k, fmt.Sprint(v))
		}
	}
}

func attachHandlers(el dom.Element, n *VNode) {
	if n.OnClick != nil {
		el.OnClick(n.OnClick)
	}
	if n.OnInput != nil {
		el.OnInput(n.OnInput)
	}
}
