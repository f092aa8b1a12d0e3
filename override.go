package cmpengine

// StringOverride is a component with a separate implementation for string
// rendering. The Builder picks Normal or String when it resolves the node,
// based on the Mode of the build.
type StringOverride struct {
	Normal Renderer
	String Renderer
}

// Render renders the live variant. Builders never call it directly; it lets
// a StringOverride be used anywhere a Renderer is.
func (o *StringOverride) Render(props Props, children []Node) Node {
	return o.Normal.Render(props, children)
}

// For returns the variant used in mode.
func (o *StringOverride) For(mode Mode) Renderer {
	if mode.StringRendering && o.String != nil {
		return o.String
	}
	return o.Normal
}

// WithStringOutput wraps a component so that string builds render
// stringImpl instead. Both variants receive identical props.
//
//	reg.Register("SearchWidget", cmpengine.WithStringOutput(staticSearch)(liveSearch))
func WithStringOutput(stringImpl Renderer) func(normal Renderer) Renderer {
	return func(normal Renderer) Renderer {
		return &StringOverride{Normal: normal, String: stringImpl}
	}
}

func selectVariant(r Renderer, mode Mode) Renderer {
	for {
		o, ok := r.(*StringOverride)
		if !ok || o == nil {
			return r
		}
		r = o.For(mode)
	}
}
