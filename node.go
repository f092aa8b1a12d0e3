package cmpengine

import "github.com/a-h/templ"

// Node is anything the renderers know how to write: Text, *Element, or
// markup produced by Raw and FromTempl.
type Node interface {
	isNode()
}

// Text is a leaf string. It is never passed through a Filter.
type Text string

func (Text) isNode() {}

// rawNode is markup written without escaping.
type rawNode string

func (rawNode) isNode() {}

type templNode struct {
	c templ.Component
}

func (templNode) isNode() {}

// Raw returns a node that writes html verbatim.
func Raw(html string) Node {
	return rawNode(html)
}

// FromTempl embeds a templ component in an element tree.
func FromTempl(c templ.Component) Node {
	return templNode{c: c}
}

// Element is a structural node.
//
// Exactly one of Tag and Renderer is normally set. A Tag element renders as
// markup; a Renderer element is expanded by calling the renderer with Props
// and Children. An element with neither renders its children only.
type Element struct {
	Tag      string
	Renderer Renderer
	Props    Props
	Children []Node

	block *BlockRef
}

func (*Element) isNode() {}

// BlockRef identifies the description node an element was built from.
type BlockRef struct {
	ComponentType string
	ID            string
}

// Block reports the description node this element was built from. Only
// elements produced by a Builder have one.
func (el *Element) Block() (BlockRef, bool) {
	if el == nil || el.block == nil {
		return BlockRef{}, false
	}
	return *el.block, true
}

// Tag creates a markup element.
//
//	cmpengine.Tag("a", cmpengine.Props{"href": "/"}, cmpengine.Text("home"))
func Tag(name string, props Props, children ...Node) *Element {
	return &Element{Tag: name, Props: props, Children: compact(children)}
}

// El creates an element expanded by r.
func El(r Renderer, props Props, children ...Node) *Element {
	return &Element{Renderer: r, Props: props, Children: compact(children)}
}

// Fragment groups nodes without emitting a wrapping tag.
func Fragment(children ...Node) *Element {
	return &Element{Children: compact(children)}
}

// compact drops nil nodes, including typed nil elements.
func compact(nodes []Node) []Node {
	if len(nodes) == 0 {
		return nil
	}
	out := nodes[:0:0]
	for _, n := range nodes {
		if isNil(n) {
			continue
		}
		out = append(out, n)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func isNil(n Node) bool {
	if n == nil {
		return true
	}
	el, ok := n.(*Element)
	return ok && el == nil
}
