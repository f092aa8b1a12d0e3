package cmpengine

import (
	"strings"

	"github.com/pthm/cmpengine/lib/cssscope"
	"github.com/samber/lo"
)

// DefaultNamespace scopes collected styles when no namespace is configured.
const DefaultNamespace = ".ComponentEngine"

// CollectStyles gathers the styles of every distinct component type in
// desc, concatenated in discovery order, and scopes them under namespace.
// A type used many times contributes its styles once. The result is
// minified; it is "" when no type in the tree has styles.
//
// The walk stops at DefaultMaxDepth and DefaultMaxNodes, like a default
// Builder. Use Builder.CollectStyles to honour other limits.
//
// Styles that fail to parse are returned unscoped rather than dropped.
func (reg *Registry) CollectStyles(desc Description, namespace string) string {
	return reg.collectStyles(desc, namespace, DefaultMaxDepth, DefaultMaxNodes)
}

func (reg *Registry) collectStyles(desc Description, namespace string, maxDepth, maxNodes int) string {
	w := &typeWalk{maxDepth: maxDepth, maxNodes: maxNodes}
	w.visit(desc, 0)
	types := lo.Uniq(w.types)

	var sb strings.Builder
	for _, t := range types {
		sb.WriteString(reg.MetadataFor(t).Styles)
	}
	raw := sb.String()
	if strings.TrimSpace(raw) == "" {
		return ""
	}

	scoped, err := cssscope.Scope(namespace, raw)
	if err != nil {
		reg.logger.Warn().Err(err).Str("namespace", namespace).Msg("could not scope component styles")
		return raw
	}
	return scoped
}

// typeWalk lists component types pre-order, with repeats. It counts nodes
// the same way Build does, so nodes Build replaces with a limit notice
// contribute nothing.
type typeWalk struct {
	maxDepth int
	maxNodes int
	nodes    int
	types    []string
}

func (w *typeWalk) visit(desc Description, depth int) {
	w.nodes++
	if w.nodes > w.maxNodes || depth >= w.maxDepth {
		return
	}
	w.types = append(w.types, desc.ComponentType)
	for _, child := range desc.Children {
		w.visit(child, depth+1)
	}
}
