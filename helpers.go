package cmpengine

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/a-h/templ"
)

// Render writes a templ component to the HTTP response.
//
// Sets Content-Type to text/html and renders the component using the
// request's context:
//
//	func handler(w http.ResponseWriter, r *http.Request) {
//	    cmpengine.Render(w, r, eng.Render(desc))
//	}
func Render(w http.ResponseWriter, r *http.Request, component templ.Component) error {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	return component.Render(r.Context(), w)
}

// Page wraps a rendered description in a complete HTML document with the
// collected styles inlined and the body content placed inside the
// namespace element, so the scoped selectors match.
func (e *Engine) Page(title string, desc Description) templ.Component {
	body := e.Render(desc)
	styles := e.RenderStyles(desc)
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var head strings.Builder
		head.WriteString("<!DOCTYPE html><html><head><meta charset=\"utf-8\"><title>")
		head.WriteString(escapeText(title))
		head.WriteString("</title>")
		if styles != "" {
			head.WriteString("<style>")
			head.WriteString(styles)
			head.WriteString("</style>")
		}
		head.WriteString("</head><body><div")
		writeAttrs(&head, namespaceAttrs(e.namespace))
		head.WriteString(">")
		if _, err := io.WriteString(w, head.String()); err != nil {
			return err
		}
		if err := body.Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, "</div></body></html>")
		return err
	})
}

// namespaceAttrs returns the attributes making an element match a simple
// class or id selector.
func namespaceAttrs(ns string) []attr {
	switch {
	case strings.HasPrefix(ns, "."):
		return []attr{{name: "class", value: ns[1:]}}
	case strings.HasPrefix(ns, "#"):
		return []attr{{name: "id", value: ns[1:]}}
	case ns == "":
		return nil
	}
	return []attr{{name: "class", value: ns}}
}

func writeJSON(w http.ResponseWriter, v any) error {
	w.Header().Set("Content-Type", "application/json")
	return json.NewEncoder(w).Encode(v)
}
