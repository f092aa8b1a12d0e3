package cmpengine

import (
	"strings"

	"github.com/rs/zerolog"
	"github.com/samber/lo"
)

// DefaultMaxDepth bounds how deep Build and CollectStyles descend into a
// description.
const DefaultMaxDepth = 512

// DefaultMaxNodes bounds how many description nodes one Build or
// CollectStyles call visits. Aliased Children slices can describe trees
// that are shallow enough for the depth limit but exponentially wide.
const DefaultMaxNodes = 100_000

// Builder turns descriptions into element trees using a Registry.
type Builder struct {
	reg      *Registry
	ids      IDGenerator
	maxDepth int
	maxNodes int
	logger   zerolog.Logger
}

// BuilderOption configures a Builder.
type BuilderOption func(*Builder)

// WithIDs sets the generator used for nodes without an id.
func WithIDs(g IDGenerator) BuilderOption {
	return func(b *Builder) {
		b.ids = g
	}
}

// WithMaxDepth sets the nesting limit. Nodes below it render a notice
// instead of their component.
func WithMaxDepth(n int) BuilderOption {
	return func(b *Builder) {
		if n > 0 {
			b.maxDepth = n
		}
	}
}

// WithMaxNodes sets the node budget of a single Build. Nodes past it render
// a notice and their children are not visited.
func WithMaxNodes(n int) BuilderOption {
	return func(b *Builder) {
		if n > 0 {
			b.maxNodes = n
		}
	}
}

// WithBuilderLogger sets the builder's logger.
func WithBuilderLogger(l zerolog.Logger) BuilderOption {
	return func(b *Builder) {
		b.logger = l
	}
}

// NewBuilder creates a builder resolving components from reg.
func NewBuilder(reg *Registry, opts ...BuilderOption) *Builder {
	b := &Builder{
		reg:      reg,
		ids:      RandomIDs(),
		maxDepth: DefaultMaxDepth,
		maxNodes: DefaultMaxNodes,
		logger:   zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Build resolves desc and its children into an element tree.
//
// Ids are assigned pre-order: a node without an id gets a generated one
// before its children are visited. Generated ids are unique within one
// call. Every element receives className ("TYPE ID"), componentType and
// componentId props on top of the description's own props.
//
// Build never fails. Unknown types render a notice naming the type.
func (b *Builder) Build(desc Description, mode Mode) *Element {
	bc := &buildCall{
		Builder: b,
		mode:    mode,
		seen:    make(map[string]struct{}),
	}
	el := bc.build(desc, 0)
	b.logger.Debug().
		Str("mode", mode.String()).
		Int("nodes", bc.nodes).
		Msg("built component tree")
	return el
}

// CollectStyles collects the styles of desc from the builder's registry,
// skipping the nodes Build would not render because of its limits.
func (b *Builder) CollectStyles(desc Description, namespace string) string {
	return b.reg.collectStyles(desc, namespace, b.maxDepth, b.maxNodes)
}

// buildCall holds the state of a single Build invocation.
type buildCall struct {
	*Builder
	mode      Mode
	seen      map[string]struct{}
	nodes     int
	truncated bool
}

func (bc *buildCall) build(desc Description, depth int) *Element {
	bc.nodes++

	id := desc.ID
	if id == "" {
		id = bc.newID()
	}
	bc.seen[id] = struct{}{}

	var impl Renderer
	var children []Node
	switch {
	case bc.nodes > bc.maxNodes:
		if !bc.truncated {
			bc.logger.Warn().
				Str("componentType", desc.ComponentType).
				Int("maxNodes", bc.maxNodes).
				Msg("description has too many nodes")
			bc.truncated = true
		}
		impl = tooMany(desc.ComponentType)
	case depth >= bc.maxDepth:
		bc.logger.Warn().
			Str("componentType", desc.ComponentType).
			Str("componentId", id).
			Int("maxDepth", bc.maxDepth).
			Msg("description nested too deeply")
		impl = tooDeep(desc.ComponentType)
	default:
		impl = bc.reg.ResolveFor(desc.ComponentType, bc.mode)
		if desc.Children != nil {
			children = make([]Node, 0, len(desc.Children))
			for _, child := range desc.Children {
				children = append(children, bc.build(child, depth+1))
			}
		}
	}

	props := desc.Props.Clone()
	props[PropClassName] = className(desc.ComponentType, id)
	props[PropComponentType] = desc.ComponentType
	props[PropComponentID] = id

	return &Element{
		Renderer: impl,
		Props:    props,
		Children: children,
		block:    &BlockRef{ComponentType: desc.ComponentType, ID: id},
	}
}

// newID draws ids until one unused in this build comes up. A generator
// that keeps repeating itself is replaced by random ids.
func (bc *buildCall) newID() string {
	for attempt := 0; ; attempt++ {
		id := bc.ids.NewID()
		if id == "" || attempt >= maxIDAttempts {
			id = fallbackIDs.NewID()
		}
		if _, dup := bc.seen[id]; !dup {
			return id
		}
	}
}

const maxIDAttempts = 8

var fallbackIDs = RandomIDs()

func className(componentType, id string) string {
	return strings.Join(lo.Compact([]string{componentType, id}), " ")
}

func tooDeep(componentType string) Renderer {
	return RendererFunc(func(Props, []Node) Node {
		return Tag("p", nil, Text("The component '"+componentType+"' is nested too deeply!"))
	})
}

func tooMany(componentType string) Renderer {
	return RendererFunc(func(Props, []Node) Node {
		return Tag("p", nil, Text("The component '"+componentType+"' exceeds the node limit!"))
	})
}
