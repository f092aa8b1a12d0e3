package cmpengine

import (
	"crypto/rand"
	"fmt"
	"net/http"

	"github.com/a-h/templ"
	"github.com/rs/zerolog"
)

// Engine bundles a Registry, a Builder and output settings. It is the
// usual entry point for applications:
//
//	eng := cmpengine.NewEngine(cmpengine.WithNamespace(".site"))
//	components.Register(eng.Registry())
//	html := eng.RenderString(desc)
//	css := eng.RenderStyles(desc)
type Engine struct {
	registry  *Registry
	builder   *Builder
	encoder   *Encoder
	namespace string
	markers   bool
	logger    zerolog.Logger

	// OnError is called when an HTTP request cannot be served.
	// Customize this to handle errors appropriately for your application.
	OnError func(http.ResponseWriter, *http.Request, error)
}

// Option configures NewEngine.
type Option func(*options)

type options struct {
	registry  *Registry
	ids       IDGenerator
	maxDepth  int
	maxNodes  int
	key       []byte
	namespace string
	markers   bool
	logger    zerolog.Logger
}

// WithRegistry uses an existing registry instead of creating one.
func WithRegistry(reg *Registry) Option {
	return func(o *options) {
		o.registry = reg
	}
}

// WithIDGenerator sets the generator for nodes without an id.
func WithIDGenerator(g IDGenerator) Option {
	return func(o *options) {
		o.ids = g
	}
}

// WithDepthLimit bounds description nesting.
func WithDepthLimit(n int) Option {
	return func(o *options) {
		o.maxDepth = n
	}
}

// WithNodeLimit bounds how many description nodes one build visits.
func WithNodeLimit(n int) Option {
	return func(o *options) {
		o.maxNodes = n
	}
}

// WithKey sets the key used to seal and open description tokens.
// If not provided, a random key is generated (tokens then only survive
// for the life of the process).
func WithKey(key []byte) Option {
	return func(o *options) {
		o.key = key
	}
}

// WithNamespace sets the selector prefix for collected styles.
// Defaults to DefaultNamespace.
func WithNamespace(ns string) Option {
	return func(o *options) {
		o.namespace = ns
	}
}

// WithMarkers toggles block markers in RenderString output. On by default.
func WithMarkers(enabled bool) Option {
	return func(o *options) {
		o.markers = enabled
	}
}

// WithLogger sets the logger shared by the registry, builder and handler.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// NewEngine creates an engine. It panics if the token encoder cannot be
// created, which only happens if the system random source fails.
func NewEngine(opts ...Option) *Engine {
	o := &options{
		namespace: DefaultNamespace,
		markers:   true,
		logger:    zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(o)
	}

	reg := o.registry
	if reg == nil {
		reg = NewRegistry(WithRegistryLogger(o.logger))
	}

	builderOpts := []BuilderOption{WithBuilderLogger(o.logger), WithMaxDepth(o.maxDepth), WithMaxNodes(o.maxNodes)}
	if o.ids != nil {
		builderOpts = append(builderOpts, WithIDs(o.ids))
	}

	key := o.key
	if key == nil {
		key = make([]byte, 32)
		if _, err := rand.Read(key); err != nil {
			panic(fmt.Sprintf("cmpengine: failed to generate random key: %v", err))
		}
	}
	enc, err := NewEncoder(key)
	if err != nil {
		panic(fmt.Sprintf("cmpengine: failed to create encoder: %v", err))
	}

	e := &Engine{
		registry:  reg,
		builder:   NewBuilder(reg, builderOpts...),
		encoder:   enc,
		namespace: o.namespace,
		markers:   o.markers,
		logger:    o.logger,
	}
	e.OnError = e.defaultOnError
	return e
}

// Registry returns the engine's registry.
func (e *Engine) Registry() *Registry {
	return e.registry
}

// Encoder returns the engine's token encoder.
func (e *Engine) Encoder() *Encoder {
	return e.encoder
}

// Namespace returns the style namespace.
func (e *Engine) Namespace() string {
	return e.namespace
}

// Register is shorthand for e.Registry().Register.
func (e *Engine) Register(componentType string, impl Renderer, meta ...Metadata) {
	e.registry.Register(componentType, impl, meta...)
}

// Build builds desc in mode.
func (e *Engine) Build(desc Description, mode Mode) *Element {
	return e.builder.Build(desc, mode)
}

// Render builds desc in live mode and returns it as a templ component.
func (e *Engine) Render(desc Description) templ.Component {
	return Templ(e.builder.Build(desc, LiveMode))
}

// RenderString builds desc in string mode and serializes it, with block
// markers unless they were disabled.
func (e *Engine) RenderString(desc Description) string {
	var filter Filter
	if e.markers {
		filter = BlockMarkers
	}
	return RenderToString(e.builder.Build(desc, StringMode), filter)
}

// RenderStyles collects the scoped styles used by desc.
func (e *Engine) RenderStyles(desc Description) string {
	return e.builder.CollectStyles(desc, e.namespace)
}

// Seal packs desc into a token with the engine's key.
func (e *Engine) Seal(desc Description, sensitive bool) (string, error) {
	return SealDescription(e.encoder, desc, sensitive)
}

// Open unpacks a token produced by Seal.
func (e *Engine) Open(token string) (Description, error) {
	return OpenDescription(e.encoder, token)
}
