// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package sheetxml provides read-only navigation over a parsed XML
// element tree. Extractors consume the Node interface only; the concrete
// tree built by Decode is an implementation detail, so tests and future
// tree backends can substitute their own.
package sheetxml

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// Node is the tree access capability the extraction core depends on.
// All methods are nil-safe in the sense that lookups which find nothing
// return a nil Node, never panic.
type Node interface {
	// Child returns the first child element with the given namespace URI
	// and local name, or nil.
	Child(name xml.Name) Node

	// NextSibling returns the next element under the same parent,
	// regardless of its name, or nil at the end.
	NextSibling() Node

	// Attr returns the value of the named attribute and whether it is set.
	Attr(name xml.Name) (string, bool)

	// Text returns the element's character data, or "" when it has none.
	Text() string
}

// Element is the Node implementation produced by Decode.
type Element struct {
	name     xml.Name
	attrs    []xml.Attr
	text     strings.Builder
	children []*Element
	parent   *Element
	index    int
}

// Name returns the element's namespace-qualified name.
func (e *Element) Name() xml.Name { return e.name }

// Child implements Node.
func (e *Element) Child(name xml.Name) Node {
	for _, c := range e.children {
		if c.name == name {
			return c
		}
	}
	return nil
}

// NextSibling implements Node.
func (e *Element) NextSibling() Node {
	if e.parent == nil || e.index+1 >= len(e.parent.children) {
		return nil
	}
	return e.parent.children[e.index+1]
}

// Attr implements Node.
func (e *Element) Attr(name xml.Name) (string, bool) {
	for _, a := range e.attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// Text implements Node. For elements with child elements it returns the
// interleaved character data, which for this format is only whitespace.
func (e *Element) Text() string { return e.text.String() }

// Decode parses an XML document from r into an element tree. The returned
// Element is a synthetic document node whose children are the document's
// top-level elements, so callers look the root element up by name the
// same way they look up any other child.
func Decode(r io.Reader) (*Element, error) {
	doc := &Element{}
	current := doc

	dec := xml.NewDecoder(r)
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("decoding XML: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			child := &Element{
				name:   t.Name,
				attrs:  t.Copy().Attr,
				parent: current,
				index:  len(current.children),
			}
			current.children = append(current.children, child)
			current = child
		case xml.EndElement:
			current = current.parent
		case xml.CharData:
			if current != doc {
				current.text.Write(t)
			}
		}
	}

	if current != doc {
		return nil, fmt.Errorf("decoding XML: unclosed element %s", current.name.Local)
	}
	return doc, nil
}
