package cmpengine

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// Renderer turns props and children into a node.
//
// Renderers registered with a Registry receive the caller's props merged
// with the derived className, componentType and componentId fields.
// Renderers must not retain or mutate props.
type Renderer interface {
	Render(props Props, children []Node) Node
}

// RendererFunc adapts a function to Renderer.
//
//	reg.Register("TextWidget", cmpengine.RendererFunc(func(p cmpengine.Props, _ []cmpengine.Node) cmpengine.Node {
//	    return cmpengine.Tag("p", cmpengine.Props{"className": p.ClassName()}, cmpengine.Text(p.String("text")))
//	}))
type RendererFunc func(props Props, children []Node) Node

// Render calls f.
func (f RendererFunc) Render(props Props, children []Node) Node {
	return f(props, children)
}

// Instance is a component value created for a single render.
type Instance interface {
	Render() Node
}

// Factory constructs a fresh Instance for every render, then renders it.
// Use it for components that keep per-render state.
type Factory func(props Props, children []Node) Instance

// Render instantiates the component and renders it.
func (f Factory) Render(props Props, children []Node) Node {
	inst := f(props, children)
	if inst == nil {
		return nil
	}
	return inst.Render()
}

// TemplRenderer adapts a templ component constructor. Use Children to
// render the built child nodes from inside the template.
type TemplRenderer func(props Props, children []Node) templ.Component

// Render embeds the templ component.
func (f TemplRenderer) Render(props Props, children []Node) Node {
	return FromTempl(f(props, children))
}

// Children returns a templ component rendering nodes in order. Inside
// RenderToString the nodes are serialized with the active Filter, so built
// children keep their block markers.
func Children(nodes []Node) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		filter, ok := ctx.Value(filterKey{}).(Filter)
		if !ok {
			return Templ(Fragment(nodes...)).Render(ctx, w)
		}
		for _, n := range nodes {
			if _, err := io.WriteString(w, RenderToString(n, filter)); err != nil {
				return err
			}
		}
		return nil
	})
}
