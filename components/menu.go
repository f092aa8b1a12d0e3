package components

import (
	"fmt"

	"github.com/pthm/cmpengine"
)

// menu is created for every render of a MenuWidget.
type menu struct {
	props cmpengine.Props
	items []menuItem
}

type menuItem struct {
	label string
	href  string
}

// newMenu reads the items prop, which may hold plain labels or
// {label, href} maps.
func newMenu(props cmpengine.Props, _ []cmpengine.Node) cmpengine.Instance {
	m := &menu{props: props}
	raw, _ := props["items"].([]any)
	for _, it := range raw {
		switch v := it.(type) {
		case string:
			m.items = append(m.items, menuItem{label: v, href: "#"})
		case map[string]any:
			item := menuItem{label: fmt.Sprint(v["label"]), href: "#"}
			if href, ok := v["href"].(string); ok && href != "" {
				item.href = href
			}
			m.items = append(m.items, item)
		}
	}
	return m
}

func (m *menu) Render() cmpengine.Node {
	if len(m.items) == 0 {
		return cmpengine.Tag("nav", cmpengine.Props{cmpengine.PropClassName: m.props.ClassName()})
	}
	lis := make([]cmpengine.Node, 0, len(m.items))
	for _, it := range m.items {
		lis = append(lis, cmpengine.Tag("li", nil,
			cmpengine.Tag("a", cmpengine.Props{"href": it.href}, cmpengine.Text(it.label)),
		))
	}
	return cmpengine.Tag("nav", cmpengine.Props{cmpengine.PropClassName: m.props.ClassName()},
		cmpengine.Tag("ul", nil, lis...),
	)
}

// MenuWidget renders a navigation list.
var MenuWidget = cmpengine.Factory(newMenu)
