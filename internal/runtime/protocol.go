package runtime

import (
	"time"

	"github.com/aretw0/rootstock/pkg/domain"
)

// Read resolves name on obj through the full attribute protocol: instance
// storage first, then the ancestor chain, then descriptor binding, then the
// class-side miss hook. Failures raised inside hooks propagate unchanged.
func (e *Engine) Read(obj domain.Value, name string) (domain.Value, error) {
	cls := e.classOf(obj)

	candidate, found := e.RawRead(obj, name)
	if !found {
		candidate, found = e.ClassLookup(cls, name)
	}
	if found {
		e.fireAttribute(e.hooks.OnRead, domain.EventRead, cls, name)
		switch candidate.Kind() {
		case domain.KindCallable:
			// Default bind hook: fix the receiver as first argument.
			return bindCallable(candidate, obj), nil
		case domain.KindDescriptor:
			return candidate.Descriptor().Bind(candidate, obj, cls)
		default:
			return candidate, nil
		}
	}

	// Miss hook resolution is class-side only, never through the full read
	// protocol, or an absent hook would recurse forever.
	if hook, ok := e.ClassLookup(cls, domain.FieldAttributeMissing); ok {
		e.fireAttribute(e.hooks.OnMiss, domain.EventMiss, cls, name)
		e.logger.Debug("miss hook invoked", "class", cls.Name, "name", name)
		return hook.Invoke(obj, domain.NewString(name))
	}

	return domain.Value{}, &domain.AttributeError{Name: name, Class: cls.Name}
}

// Write delegates unconditionally to the class-side write hook. The
// universal base class guarantees a default equal to RawWrite, so an
// unresolvable hook means the bootstrap is broken.
func (e *Engine) Write(obj domain.Value, name string, value domain.Value) error {
	cls := e.classOf(obj)
	hook, ok := e.ClassLookup(cls, domain.FieldWriteAttribute)
	if !ok {
		panic(&domain.InvariantError{Op: "write", Msg: "no resolvable " + domain.FieldWriteAttribute + " hook on class " + cls.Name})
	}
	e.fireAttribute(e.hooks.OnWrite, domain.EventWrite, cls, name)
	_, err := hook.Invoke(obj, domain.NewString(name), value)
	return err
}

// CallMethod is sugar over Read followed by invocation, so
// CallMethod(obj, name, args...) and Read(obj, name) + Invoke(args...) are
// observably identical.
func (e *Engine) CallMethod(obj domain.Value, name string, args ...domain.Value) (domain.Value, error) {
	fn, err := e.Read(obj, name)
	if err != nil {
		return domain.Value{}, err
	}
	return fn.Invoke(args...)
}

// bindCallable produces the ephemeral bound callable: it closes over the
// underlying callable and the receiver, re-supplying the receiver as first
// argument on every invocation.
func bindCallable(v, receiver domain.Value) domain.Value {
	fn := v.Callable()
	return domain.NewCallable(func(args []domain.Value) (domain.Value, error) {
		bound := make([]domain.Value, 0, len(args)+1)
		bound = append(bound, receiver)
		bound = append(bound, args...)
		return fn(bound)
	})
}

func (e *Engine) fireAttribute(hook func(*domain.AttributeEvent), typ domain.EventType, cls *domain.Class, name string) {
	if hook == nil {
		return
	}
	hook(&domain.AttributeEvent{
		EventBase: domain.EventBase{Timestamp: time.Now(), Type: typ},
		Class:     cls.Name,
		Name:      name,
	})
}
