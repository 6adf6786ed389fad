package runtime

import (
	"log/slog"

	"github.com/aretw0/rootstock/internal/logging"
	"github.com/aretw0/rootstock/pkg/domain"
)

// Engine is the core object-model runner. It owns the layout trie and the
// two bootstrap root classes, so independent engines never share state.
type Engine struct {
	emptyLayout *domain.Layout
	object      *domain.Class // universal base class
	metaclass   *domain.Class // default metaclass

	hooks  domain.LifecycleHooks
	logger *slog.Logger
}

// NewEngine creates a fully bootstrapped engine.
func NewEngine(opts ...EngineOption) *Engine {
	e := &Engine{
		emptyLayout: domain.NewEmptyLayout(),
		logger:      logging.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.bootstrap()
	return e
}

// ObjectClass returns the universal base class.
func (e *Engine) ObjectClass() *domain.Class {
	return e.object
}

// Metaclass returns the default metaclass.
func (e *Engine) Metaclass() *domain.Class {
	return e.metaclass
}

// MakeClass creates a class. A nil base defaults to the universal base
// class; a nil meta defaults to the default metaclass. The fields table is
// copied so the caller keeps ownership of its map.
func (e *Engine) MakeClass(name string, base *domain.Class, fields map[string]domain.Value, meta *domain.Class) *domain.Class {
	if base == nil {
		base = e.object
	}
	if meta == nil {
		meta = e.metaclass
	}
	cls := &domain.Class{
		Name:   name,
		Base:   base,
		Fields: make(map[string]domain.Value, len(fields)),
		Meta:   meta,
	}
	for k, v := range fields {
		cls.Fields[k] = v
	}
	e.logger.Debug("class created", "class", name, "base", base.Name, "meta", meta.Name)
	return cls
}

// NewInstance allocates an instance of cls with the empty layout and empty
// storage. A nil class is a broken front end and panics.
func (e *Engine) NewInstance(cls *domain.Class) *domain.Instance {
	if cls == nil {
		panic(&domain.InvariantError{Op: "new_instance", Msg: "class argument is not a class"})
	}
	return &domain.Instance{
		Class:  cls,
		Layout: e.emptyLayout,
	}
}

// classOf resolves the class of an object, panicking when the value is not
// an object at all: the protocol is only defined over classes and instances.
func (e *Engine) classOf(obj domain.Value) *domain.Class {
	cls := obj.ClassOf()
	if cls == nil {
		panic(&domain.InvariantError{Op: "class_of", Msg: "value of kind " + obj.Kind().String() + " is not an object"})
	}
	return cls
}
