package cmpengine

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// Templ returns a templ component that renders n for a browser: text and
// attributes are escaped, void elements have no closing tag, other
// elements always get one, and no filter runs. The context is checked
// before each node so cancelled requests stop early.
//
//	cmpengine.Render(w, r, cmpengine.Templ(builder.Build(desc, cmpengine.LiveMode)))
func Templ(n Node) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return writeNode(ctx, w, n)
	})
}

func writeNode(ctx context.Context, w io.Writer, n Node) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	switch n := n.(type) {
	case Text:
		_, err := io.WriteString(w, escapeText(string(n)))
		return err
	case rawNode:
		_, err := io.WriteString(w, string(n))
		return err
	case templNode:
		if n.c == nil {
			return nil
		}
		return n.c.Render(ctx, w)
	case *Element:
		if n == nil {
			return nil
		}
		return writeElement(ctx, w, n)
	default:
		return nil
	}
}

func writeElement(ctx context.Context, w io.Writer, el *Element) error {
	switch {
	case el.Renderer != nil:
		return writeNode(ctx, w, el.Renderer.Render(el.Props, el.Children))
	case el.Tag == "":
		return writeChildren(ctx, w, el.Children)
	}

	var sb strings.Builder
	sb.WriteByte('<')
	sb.WriteString(el.Tag)
	writeAttrs(&sb, attrsOf(el.Props))
	sb.WriteByte('>')
	if _, err := io.WriteString(w, sb.String()); err != nil {
		return err
	}
	if voidElements[el.Tag] {
		return nil
	}
	if err := writeChildren(ctx, w, el.Children); err != nil {
		return err
	}
	_, err := io.WriteString(w, "</"+el.Tag+">")
	return err
}

func writeChildren(ctx context.Context, w io.Writer, nodes []Node) error {
	for _, child := range nodes {
		if err := writeNode(ctx, w, child); err != nil {
			return err
		}
	}
	return nil
}
