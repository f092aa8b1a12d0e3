package components

import "github.com/pthm/cmpengine"

// liveSearch submits through HTMX and swaps results in place.
func liveSearch(props cmpengine.Props, _ []cmpengine.Node) cmpengine.Node {
	action := searchAction(props)
	return cmpengine.Tag("form", cmpengine.Props{
		cmpengine.PropClassName: props.ClassName(),
		"role":                  "search",
		"hx-get":                action,
		"hx-target":             "#" + props.ComponentID() + "-results",
	},
		searchInput(props),
		cmpengine.Tag("div", cmpengine.Props{"id": props.ComponentID() + "-results"}),
	)
}

// staticSearch is a plain form for serialized pages.
func staticSearch(props cmpengine.Props, _ []cmpengine.Node) cmpengine.Node {
	return cmpengine.Tag("form", cmpengine.Props{
		cmpengine.PropClassName: props.ClassName(),
		"role":                  "search",
		"action":                searchAction(props),
		"method":                "get",
	}, searchInput(props))
}

func searchInput(props cmpengine.Props) cmpengine.Node {
	placeholder := props.String("placeholder")
	if placeholder == "" {
		placeholder = "Search"
	}
	return cmpengine.Tag("input", cmpengine.Props{"type": "search", "name": "q", "placeholder": placeholder})
}

func searchAction(props cmpengine.Props) string {
	if a := props.String("action"); a != "" {
		return a
	}
	return "/search"
}

// SearchWidget renders an HTMX search form when live and a plain GET form
// when serialized.
var SearchWidget = cmpengine.WithStringOutput(cmpengine.RendererFunc(staticSearch))(cmpengine.RendererFunc(liveSearch))
