// Package cssscope rewrites stylesheets so that every selector only
// matches inside a namespace element.
package cssscope

import (
	"fmt"
	"strings"

	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
)

// Scope prefixes every selector in styles with namespace and returns the
// stylesheet minified. Selectors inside @media and @supports blocks are
// prefixed too; @keyframes steps are not. With an empty namespace the
// stylesheet is only minified.
//
//	Scope(".ns", "p { color: red }") // ".ns p{color:red}"
func Scope(namespace, styles string) (string, error) {
	if strings.TrimSpace(styles) == "" {
		return "", nil
	}
	return rewrite(namespace, styles)
}

// Minify reformats styles without changing selectors.
func Minify(styles string) (string, error) {
	return Scope("", styles)
}

func rewrite(namespace, styles string) (string, error) {
	sheet, err := parser.Parse(styles)
	if err != nil {
		return "", fmt.Errorf("cssscope: parse stylesheet: %w", err)
	}

	var sb strings.Builder
	for _, rule := range sheet.Rules {
		writeRule(&sb, rule, namespace)
	}
	return sb.String(), nil
}

func writeRule(sb *strings.Builder, rule *css.Rule, namespace string) {
	if rule.Kind == css.QualifiedRule {
		sb.WriteString(strings.Join(selectors(rule, namespace), ","))
		writeDeclarations(sb, rule.Declarations)
		return
	}

	sb.WriteString(rule.Name)
	if prelude := strings.TrimSpace(rule.Prelude); prelude != "" {
		sb.WriteByte(' ')
		sb.WriteString(prelude)
	}

	switch {
	case rule.EmbedsRules():
		inner := namespace
		if isKeyframes(rule.Name) {
			inner = ""
		}
		sb.WriteByte('{')
		for _, r := range rule.Rules {
			writeRule(sb, r, inner)
		}
		sb.WriteByte('}')
	case len(rule.Declarations) > 0 || hasDeclarationBlock(rule.Name):
		writeDeclarations(sb, rule.Declarations)
	default:
		sb.WriteByte(';')
	}
}

func selectors(rule *css.Rule, namespace string) []string {
	sels := rule.Selectors
	if len(sels) == 0 {
		sels = strings.Split(rule.Prelude, ",")
	}
	out := make([]string, 0, len(sels))
	for _, s := range sels {
		s = strings.Join(strings.Fields(s), " ")
		if s == "" {
			continue
		}
		if namespace != "" {
			s = namespace + " " + s
		}
		out = append(out, s)
	}
	return out
}

func writeDeclarations(sb *strings.Builder, decls []*css.Declaration) {
	sb.WriteByte('{')
	for i, d := range decls {
		if i > 0 {
			sb.WriteByte(';')
		}
		sb.WriteString(d.Property)
		sb.WriteByte(':')
		sb.WriteString(strings.TrimSpace(d.Value))
		if d.Important {
			sb.WriteString(" !important")
		}
	}
	sb.WriteByte('}')
}

func isKeyframes(name string) bool {
	return strings.HasSuffix(name, "keyframes")
}

func hasDeclarationBlock(name string) bool {
	switch name {
	case "@font-face", "@page", "@viewport", "@counter-style":
		return true
	}
	return false
}
