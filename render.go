package cmpengine

import (
	"context"
	"strings"
)

// Filter post-processes the serialization of a structural node. It is
// applied once per *Element, after the element and its subtree have been
// serialized, and never to Text leaves.
type Filter func(serialized string, el *Element) string

// IdentityFilter returns serialized unchanged.
func IdentityFilter(serialized string, _ *Element) string {
	return serialized
}

// ComposeFilters chains filters; the first one sees the raw serialization.
func ComposeFilters(filters ...Filter) Filter {
	return func(serialized string, el *Element) string {
		for _, f := range filters {
			if f != nil {
				serialized = f(serialized, el)
			}
		}
		return serialized
	}
}

// RenderToString serializes n without going through templ.
//
// Tag elements render as markup: attributes come from props sorted by
// name, className is written as class, and an element without children
// self-closes (<div class="x" />). Renderer elements are expanded and the
// result rendered in their place. filter may be nil.
//
// Attribute values and text are HTML-escaped; use Raw for trusted markup.
func RenderToString(n Node, filter Filter) string {
	if filter == nil {
		filter = IdentityFilter
	}
	r := stringRenderer{filter: filter}
	return r.render(n)
}

type stringRenderer struct {
	filter Filter
}

func (r stringRenderer) render(n Node) string {
	switch n := n.(type) {
	case Text:
		return escapeText(string(n))
	case rawNode:
		return string(n)
	case templNode:
		return r.embedded(n)
	case *Element:
		if n == nil {
			return ""
		}
		return r.filter(r.element(n), n)
	default:
		return ""
	}
}

func (r stringRenderer) element(el *Element) string {
	switch {
	case el.Renderer != nil:
		return r.render(el.Renderer.Render(el.Props, el.Children))
	case el.Tag != "":
		return r.tag(el)
	default:
		return r.children(el.Children)
	}
}

func (r stringRenderer) tag(el *Element) string {
	var sb strings.Builder
	sb.WriteByte('<')
	sb.WriteString(el.Tag)
	writeAttrs(&sb, attrsOf(el.Props))
	if len(el.Children) == 0 {
		sb.WriteString(" />")
		return sb.String()
	}
	sb.WriteByte('>')
	sb.WriteString(r.children(el.Children))
	sb.WriteString("</")
	sb.WriteString(el.Tag)
	sb.WriteByte('>')
	return sb.String()
}

func (r stringRenderer) children(nodes []Node) string {
	var sb strings.Builder
	for _, child := range nodes {
		sb.WriteString(r.render(child))
	}
	return sb.String()
}

// filterKey carries the active Filter into embedded templ components, so
// Children can keep serializing built nodes as strings.
type filterKey struct{}

// embedded renders an embedded templ component. A failing component leaves an
// HTML comment in its place.
func (r stringRenderer) embedded(n templNode) string {
	if n.c == nil {
		return ""
	}
	ctx := context.WithValue(context.Background(), filterKey{}, r.filter)
	var sb strings.Builder
	if err := n.c.Render(ctx, &sb); err != nil {
		return "<!-- templ component failed: " + strings.ReplaceAll(err.Error(), "--", "- -") + " -->"
	}
	return sb.String()
}
