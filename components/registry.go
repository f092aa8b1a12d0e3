// Package components holds the stock widgets used by the cmpengine CLI and
// examples.
package components

import "github.com/pthm/cmpengine"

// Register adds every stock widget to reg.
func Register(reg *cmpengine.Registry) {
	reg.Register("TextWidget", cmpengine.RendererFunc(TextWidget), cmpengine.Metadata{
		Title:       "Text",
		Description: "A paragraph of text.",
		EditableProps: map[string]cmpengine.PropSchema{
			"text":  {Type: "string", Label: "Text"},
			"color": {Type: "string", Label: "Color"},
		},
		Styles: ".TextWidget{padding:0.5em 0}",
	})
	reg.Register("HeaderText", cmpengine.RendererFunc(HeaderText), cmpengine.Metadata{
		Title:       "Header",
		Description: "The site title with an optional **tagline**.",
		EditableProps: map[string]cmpengine.PropSchema{
			"text":    {Type: "string", Label: "Title"},
			"tagline": {Type: "string", Label: "Tagline"},
		},
		Styles: ".HeaderText h1{margin:0}.HeaderText .tagline{opacity:0.7}",
	})
	reg.Register("FooterText", cmpengine.RendererFunc(FooterText), cmpengine.Metadata{
		Title:         "Footer",
		Description:   "A line of footer text.",
		EditableProps: map[string]cmpengine.PropSchema{"text": {Type: "string", Label: "Text"}},
		Styles:        ".FooterText{font-size:0.8em}",
	})
	reg.Register("ColumnComponent", cmpengine.RendererFunc(ColumnComponent), cmpengine.Metadata{
		Title:       "Column",
		Description: "Stacks children vertically and passes its props down to them.",
		HasChildren: true,
		Styles:      ".ColumnComponent{display:flex;flex-direction:column}",
	})
	reg.Register("RowComponent", cmpengine.RendererFunc(RowComponent), cmpengine.Metadata{
		Title:       "Row",
		Description: "Lays children out side by side.",
		HasChildren: true,
		Styles:      ".RowComponent{display:flex;flex-direction:row}",
	})
	reg.Register("PageLayout", cmpengine.RendererFunc(PageLayout), cmpengine.Metadata{
		Title:         "Page",
		Description:   "The outermost page container.",
		HasChildren:   true,
		EditableProps: map[string]cmpengine.PropSchema{"lang": {Type: "string", Label: "Language", Default: "en"}},
		Styles:        ".PageLayout{max-width:60em;margin:0 auto}",
	})
	reg.Register("MenuWidget", MenuWidget, cmpengine.Metadata{
		Title:         "Menu",
		Description:   "A list of navigation links.",
		EditableProps: map[string]cmpengine.PropSchema{"items": {Type: "array", Label: "Items"}},
		Styles:        ".MenuWidget ul{list-style:none;display:flex;gap:1em}",
	})
	reg.Register("SearchWidget", SearchWidget, cmpengine.Metadata{
		Title:       "Search",
		Description: "A search box. Live pages search in place; serialized pages submit a form.",
		EditableProps: map[string]cmpengine.PropSchema{
			"placeholder": {Type: "string", Label: "Placeholder"},
			"action":      {Type: "string", Label: "Search URL", Default: "/search"},
		},
	})
}
