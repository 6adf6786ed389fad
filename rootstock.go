package rootstock

import (
	"io"
	"log/slog"

	"github.com/aretw0/rootstock/internal/runtime"
	"github.com/aretw0/rootstock/pkg/domain"
)

// Runtime is the high-level entry point for the Rootstock library.
// It wraps the internal engine and provides a simplified API for front ends.
// Each Runtime owns its own layout trie and bootstrap roots; independent
// Runtimes never interfere.
type Runtime struct {
	engine *runtime.Engine
	hooks  domain.LifecycleHooks
	logger *slog.Logger
	Name   string
}

// Option defines a functional option for configuring the Runtime.
type Option func(*Runtime)

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(r *Runtime) {
		r.hooks = hooks
	}
}

// WithLogger sets a custom structured logger for the runtime.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runtime) {
		r.logger = logger
	}
}

// WithName labels the runtime in log output, useful when a host embeds
// several.
func WithName(name string) Option {
	return func(r *Runtime) {
		r.Name = name
	}
}

// New initializes a bootstrapped Runtime: the universal base class and the
// default metaclass exist and the default write hook is installed.
func New(opts ...Option) *Runtime {
	rt := &Runtime{}
	for _, opt := range opts {
		opt(rt)
	}

	// Ensure logger is initialized (so we don't pass nil to the engine,
	// which would overwrite its default).
	if rt.logger == nil {
		rt.logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	if rt.Name != "" {
		rt.logger = rt.logger.With("runtime", rt.Name)
	}

	rt.engine = runtime.NewEngine(
		runtime.WithLogger(rt.logger),
		runtime.WithLifecycleHooks(rt.hooks),
	)
	return rt
}

// MakeClass creates a class. A nil base defaults to the universal base
// class, a nil metaclass to the default metaclass; fields may be nil.
func (r *Runtime) MakeClass(name string, base *domain.Class, fields map[string]domain.Value, metaclass *domain.Class) *domain.Class {
	return r.engine.MakeClass(name, base, fields, metaclass)
}

// NewInstance allocates an instance of cls with the empty layout.
func (r *Runtime) NewInstance(cls *domain.Class) *domain.Instance {
	return r.engine.NewInstance(cls)
}

// Read resolves name on obj through the attribute protocol.
// It fails with a *domain.AttributeError (wrapping ErrAttributeNotFound)
// when nothing resolves the name.
func (r *Runtime) Read(obj domain.Value, name string) (domain.Value, error) {
	return r.engine.Read(obj, name)
}

// Write stores value under name on obj through the class-side write hook.
func (r *Runtime) Write(obj domain.Value, name string, value domain.Value) error {
	return r.engine.Write(obj, name, value)
}

// CallMethod is dispatch sugar: Read followed by invocation.
func (r *Runtime) CallMethod(obj domain.Value, name string, args ...domain.Value) (domain.Value, error) {
	return r.engine.CallMethod(obj, name, args...)
}

// RawRead bypasses the protocol and reads storage directly. Intended for
// user-defined hooks and diagnostics.
func (r *Runtime) RawRead(obj domain.Value, name string) (domain.Value, bool) {
	return r.engine.RawRead(obj, name)
}

// RawWrite bypasses the protocol and writes storage directly. User-defined
// write hooks delegate to it for the default behavior.
func (r *Runtime) RawWrite(obj domain.Value, name string, value domain.Value) {
	r.engine.RawWrite(obj, name, value)
}

// Ancestors returns cls followed by its base chain up to the universal base
// class.
func (r *Runtime) Ancestors(cls *domain.Class) []*domain.Class {
	return r.engine.Ancestors(cls)
}

// IsSubclass reports whether b is in a's ancestor chain.
func (r *Runtime) IsSubclass(a, b *domain.Class) bool {
	return r.engine.IsSubclass(a, b)
}

// IsInstance reports whether obj is an instance of cls or of a subclass.
func (r *Runtime) IsInstance(obj domain.Value, cls *domain.Class) bool {
	return r.engine.IsInstance(obj, cls)
}

// ClassOf returns the class of an object (the metaclass, for a class).
func (r *Runtime) ClassOf(obj domain.Value) *domain.Class {
	return obj.ClassOf()
}

// ObjectClass returns the universal base class anchoring every ancestor
// chain.
func (r *Runtime) ObjectClass() *domain.Class {
	return r.engine.ObjectClass()
}

// Metaclass returns the default metaclass closing the instance-of graph.
func (r *Runtime) Metaclass() *domain.Class {
	return r.engine.Metaclass()
}
