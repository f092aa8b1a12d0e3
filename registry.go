package cmpengine

import (
	"slices"
	"sync"

	"github.com/rs/zerolog"
	"github.com/samber/lo"
)

// Metadata describes a registered component for tooling and styling.
type Metadata struct {
	Title         string                `json:"title,omitempty" yaml:"title,omitempty"`
	Description   string                `json:"description,omitempty" yaml:"description,omitempty"`
	EditableProps map[string]PropSchema `json:"editableProps,omitempty" yaml:"editableProps,omitempty"`
	HasChildren   bool                  `json:"hasChildren,omitempty" yaml:"hasChildren,omitempty"`
	Styles        string                `json:"styles,omitempty" yaml:"styles,omitempty"`
}

// PropSchema describes a prop an editor may expose for a component.
type PropSchema struct {
	Type        string `json:"type,omitempty" yaml:"type,omitempty"` // string, number, boolean, array, object
	Label       string `json:"label,omitempty" yaml:"label,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Default     any    `json:"default,omitempty" yaml:"default,omitempty"`
}

// PaletteEntry is one registered component as listed by Palette.
type PaletteEntry struct {
	Type string `json:"type"`
	Metadata
}

type registryEntry struct {
	impl Renderer
	meta Metadata
}

// Registry maps component type names to implementations and metadata.
//
// Populate a registry at startup, then share it between builds. Lookups are
// safe for concurrent use; registering while builds are running is allowed
// but gives no isolation: a build sees whichever entry is current when it
// reaches a node.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]registryEntry
	logger  zerolog.Logger
}

// RegistryOption configures a Registry.
type RegistryOption func(*Registry)

// WithRegistryLogger sets the logger used to report unresolved types.
func WithRegistryLogger(l zerolog.Logger) RegistryOption {
	return func(reg *Registry) {
		reg.logger = l
	}
}

// NewRegistry creates an empty registry.
func NewRegistry(opts ...RegistryOption) *Registry {
	reg := &Registry{
		entries: make(map[string]registryEntry),
		logger:  zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(reg)
	}
	return reg
}

// Register adds or replaces the implementation for componentType.
// The last registration for a type wins. Only the first meta is used.
func (reg *Registry) Register(componentType string, impl Renderer, meta ...Metadata) {
	var m Metadata
	if len(meta) > 0 {
		m = meta[0]
	}

	reg.mu.Lock()
	defer reg.mu.Unlock()

	if _, exists := reg.entries[componentType]; exists {
		reg.logger.Debug().Str("componentType", componentType).Msg("replacing registered component")
	}
	reg.entries[componentType] = registryEntry{impl: impl, meta: m}
}

// Lookup returns the registered implementation, if any.
func (reg *Registry) Lookup(componentType string) (Renderer, bool) {
	reg.mu.RLock()
	defer reg.mu.RUnlock()

	e, ok := reg.entries[componentType]
	if !ok || e.impl == nil {
		return nil, false
	}
	return e.impl, true
}

// Resolve returns the implementation for componentType. Unknown types
// resolve to a renderer that prints a notice naming the type.
func (reg *Registry) Resolve(componentType string) Renderer {
	if impl, ok := reg.Lookup(componentType); ok {
		return impl
	}
	reg.logger.Warn().Str("componentType", componentType).Msg("component type not registered")
	return notFound(componentType)
}

// ResolveFor resolves componentType and picks the variant for mode.
func (reg *Registry) ResolveFor(componentType string, mode Mode) Renderer {
	return selectVariant(reg.Resolve(componentType), mode)
}

// ListTypes returns the registered type names in lexicographic order.
func (reg *Registry) ListTypes() []string {
	reg.mu.RLock()
	types := lo.Keys(reg.entries)
	reg.mu.RUnlock()

	slices.Sort(types)
	return types
}

// MetadataFor returns the metadata registered for componentType, or the
// zero Metadata for unknown types.
func (reg *Registry) MetadataFor(componentType string) Metadata {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	return reg.entries[componentType].meta
}

// Title returns the display title, falling back to the type name.
func (reg *Registry) Title(componentType string) string {
	if t := reg.MetadataFor(componentType).Title; t != "" {
		return t
	}
	return componentType
}

// Description returns the registered description or "".
func (reg *Registry) Description(componentType string) string {
	return reg.MetadataFor(componentType).Description
}

// EditableProps returns the editable prop schema. Never nil.
func (reg *Registry) EditableProps(componentType string) map[string]PropSchema {
	if p := reg.MetadataFor(componentType).EditableProps; p != nil {
		return p
	}
	return map[string]PropSchema{}
}

// HasChildren reports whether componentType accepts children.
func (reg *Registry) HasChildren(componentType string) bool {
	return reg.MetadataFor(componentType).HasChildren
}

// Palette lists every registered component with its metadata, sorted by
// type. Titles default to the type name.
func (reg *Registry) Palette() []PaletteEntry {
	return lo.Map(reg.ListTypes(), func(t string, _ int) PaletteEntry {
		meta := reg.MetadataFor(t)
		meta.Title = reg.Title(t)
		return PaletteEntry{Type: t, Metadata: meta}
	})
}

// notFound renders a visible notice instead of failing the build.
func notFound(componentType string) Renderer {
	return RendererFunc(func(Props, []Node) Node {
		return Tag("p", nil, Text("I could not find the component '"+componentType+"'!"))
	})
}
