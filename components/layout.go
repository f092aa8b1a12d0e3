package components

import "github.com/pthm/cmpengine"

// derived are the props every built node gets; they are never inherited.
var derived = []string{
	cmpengine.PropClassName,
	cmpengine.PropComponentType,
	cmpengine.PropComponentID,
}

// ColumnComponent stacks its children vertically. Its own props are handed
// down to children that do not set them.
func ColumnComponent(props cmpengine.Props, children []cmpengine.Node) cmpengine.Node {
	return cmpengine.Tag("div", cmpengine.Props{cmpengine.PropClassName: props.ClassName()},
		inherit(children, props.Without(derived...))...,
	)
}

// RowComponent lays its children out horizontally.
func RowComponent(props cmpengine.Props, children []cmpengine.Node) cmpengine.Node {
	return cmpengine.Tag("div", cmpengine.Props{cmpengine.PropClassName: props.ClassName()}, children...)
}

// PageLayout is the outermost page wrapper.
func PageLayout(props cmpengine.Props, children []cmpengine.Node) cmpengine.Node {
	attrs := cmpengine.Props{cmpengine.PropClassName: props.ClassName()}
	if lang := props.String("lang"); lang != "" {
		attrs["lang"] = lang
	}
	return cmpengine.Tag("main", attrs, children...)
}

// inherit returns children with props filled in from parent where the
// child has no value of its own.
func inherit(children []cmpengine.Node, parent cmpengine.Props) []cmpengine.Node {
	if len(parent) == 0 {
		return children
	}
	out := make([]cmpengine.Node, len(children))
	for i, child := range children {
		el, ok := child.(*cmpengine.Element)
		if !ok || el == nil {
			out[i] = child
			continue
		}
		merged := parent.Clone()
		for k, v := range el.Props {
			merged[k] = v
		}
		cp := *el
		cp.Props = merged
		out[i] = &cp
	}
	return out
}
