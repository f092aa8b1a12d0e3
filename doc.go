// Package cmpengine builds declarative component trees into markup.
//
// A tree is plain data, a Description, naming a component type, an optional
// id, props and children. It can come from JSON, YAML, TOML or MessagePack,
// or from a sealed token. Component types are resolved through a Registry
// that maps names to Renderer implementations and editor metadata.
//
// # Core Concepts
//
// Components implement Renderer. They receive the node's props, including
// the derived className ("TYPE ID"), componentType and componentId fields,
// and the already-built child nodes:
//
//	reg := cmpengine.NewRegistry()
//	reg.Register("Col", cmpengine.RendererFunc(func(p cmpengine.Props, children []cmpengine.Node) cmpengine.Node {
//	    return cmpengine.Tag("div", cmpengine.Props{"className": p.ClassName()}, children...)
//	}), cmpengine.Metadata{Title: "Column", HasChildren: true, Styles: ".Col{display:flex}"})
//
// Factory wraps components that keep per-render state, and TemplRenderer
// embeds a templ component.
//
// # Building and Rendering
//
// A Builder turns a Description into an *Element tree. Ids are preserved
// when given and generated otherwise, unique within one Build call. Unknown
// types render a visible notice instead of failing. Nesting deeper than the
// depth limit, and nodes past the node budget, render a notice as well, so
// self-referencing trees always terminate.
//
// The same tree renders two ways:
//   - Live: Templ (or Engine.Render) returns a templ.Component for a browser
//   - String: RenderToString serializes the tree without templ, applying a
//     Filter to every element. BlockMarkers is the filter that wraps each
//     description node in <!-- @block-start type:T id:I --> ... <!-- @block-end -->
//
// The Mode passed to Build picks which variant of a StringOverride
// component is used. WithStringOutput registers a static implementation for
// string output next to the live one.
//
// # Styles
//
// Builder.CollectStyles gathers the Styles of every distinct type in a tree,
// in discovery order, and scopes each selector under a namespace so the CSS
// only applies inside the rendered content.
//
// # Engine and HTTP
//
// Engine bundles a registry, a builder, a token encoder and output settings.
// Engine.Handler serves render, styles, seal and palette endpoints; the
// adapters/echo package mounts it on Echo.
//
//	eng := cmpengine.NewEngine(cmpengine.WithKey(key))
//	components.Register(eng.Registry())
//	http.Handle("/_engine/", http.StripPrefix("/_engine", eng.Handler()))
//
// Building and rendering never return errors. Errors only come from decoding
// documents and tokens.
package cmpengine
