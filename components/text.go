package components

import "github.com/pthm/cmpengine"

// TextWidget renders a paragraph of text.
func TextWidget(props cmpengine.Props, _ []cmpengine.Node) cmpengine.Node {
	text := props.String("text")
	if text == "" {
		text = "This is a text widget with no data!"
	}
	attrs := cmpengine.Props{cmpengine.PropClassName: props.ClassName()}
	if color := props.String("color"); color != "" {
		attrs["style"] = "color: " + color
	}
	return cmpengine.Tag("div", attrs, cmpengine.Tag("p", nil, cmpengine.Text(text)))
}

// HeaderText renders a site heading.
func HeaderText(props cmpengine.Props, _ []cmpengine.Node) cmpengine.Node {
	heading := cmpengine.Tag("h1", nil, cmpengine.Text(props.String("text")))
	if tagline := props.String("tagline"); tagline != "" {
		return cmpengine.Tag("header", cmpengine.Props{cmpengine.PropClassName: props.ClassName()},
			heading,
			cmpengine.Tag("p", cmpengine.Props{cmpengine.PropClassName: "tagline"}, cmpengine.Text(tagline)),
		)
	}
	return cmpengine.Tag("header", cmpengine.Props{cmpengine.PropClassName: props.ClassName()}, heading)
}

// FooterText renders a footer line.
func FooterText(props cmpengine.Props, _ []cmpengine.Node) cmpengine.Node {
	return cmpengine.Tag("footer", cmpengine.Props{cmpengine.PropClassName: props.ClassName()},
		cmpengine.Text(props.String("text")),
	)
}
