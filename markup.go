package cmpengine

import (
	"fmt"
	"slices"
	"strings"

	"github.com/a-h/templ"
	"github.com/samber/lo"
)

type attr struct {
	name  string
	value string
}

// attrsOf turns props into attributes sorted by name. className becomes
// class; children, nil values and an empty className are skipped.
func attrsOf(props Props) []attr {
	if len(props) == 0 {
		return nil
	}
	names := lo.Filter(lo.Keys(props), func(k string, _ int) bool {
		if k == PropClassName && props[k] == "" {
			return false
		}
		return k != propChildren && props[k] != nil
	})
	slices.Sort(names)

	attrs := make([]attr, 0, len(names))
	for _, k := range names {
		name := k
		if k == PropClassName {
			name = "class"
		}
		attrs = append(attrs, attr{name: name, value: attrValue(props[k])})
	}
	return attrs
}

func attrValue(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

func writeAttrs(sb *strings.Builder, attrs []attr) {
	for _, a := range attrs {
		sb.WriteByte(' ')
		sb.WriteString(a.name)
		sb.WriteString(`="`)
		sb.WriteString(templ.EscapeString(a.value))
		sb.WriteByte('"')
	}
}

// Text content only needs &, < and > escaped; quotes stay readable.
var textEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

func escapeText(s string) string {
	return textEscaper.Replace(s)
}

// voidElements never have children or a closing tag in live output.
var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"source": true, "track": true, "wbr": true,
}
