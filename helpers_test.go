package cmpengine

import "testing"

// tagComponent renders a plain element carrying the node's class.
func tagComponent(tag string) Renderer {
	return RendererFunc(func(p Props, children []Node) Node {
		return Tag(tag, Props{PropClassName: p.ClassName()}, children...)
	})
}

// textComponent renders the text prop inside tag.
func textComponent(tag string) Renderer {
	return RendererFunc(func(p Props, _ []Node) Node {
		return Tag(tag, Props{PropClassName: p.ClassName()}, Text(p.String("text")))
	})
}

func newTestRegistry(t *testing.T) *Registry {
	t.Helper()
	reg := NewRegistry()
	reg.Register("Col", tagComponent("div"), Metadata{HasChildren: true, Styles: ".Col{display:flex}"})
	reg.Register("Txt", textComponent("span"), Metadata{Styles: ".Txt{color:red}"})
	reg.Register("Tag", tagComponent("div"))
	reg.Register("Leaf", tagComponent("div"))
	return reg
}

func newTestEngine(t *testing.T, opts ...Option) *Engine {
	t.Helper()
	base := []Option{
		WithRegistry(newTestRegistry(t)),
		WithIDGenerator(SequentialIDs("id")),
		WithKey([]byte("0123456789abcdef0123456789abcdef")),
	}
	return NewEngine(append(base, opts...)...)
}

var colTree = Description{
	ComponentType: "Col",
	ID:            "c1",
	Children: []Description{
		{ComponentType: "Txt", ID: "t1", Props: Props{"text": "hi"}},
	},
}
