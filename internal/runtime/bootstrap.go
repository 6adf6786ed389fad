package runtime

import (
	"github.com/aretw0/rootstock/pkg/domain"
)

// bootstrap constructs the two mutually-defining root classes.
//
// The instance-of edges form a cycle (the default metaclass is an instance
// of itself, the universal base class an instance of the default metaclass),
// so both roots are built with a placeholder Meta and patched once the
// metaclass exists. This is the one sanctioned post-construction mutation of
// a class-of-class field.
func (e *Engine) bootstrap() {
	object := &domain.Class{
		Name:   domain.ClassNameObject,
		Fields: make(map[string]domain.Value),
	}
	metaclass := &domain.Class{
		Name:   domain.ClassNameClass,
		Base:   object,
		Fields: make(map[string]domain.Value),
	}

	// Phase two: close the instance-of graph.
	object.Meta = metaclass
	metaclass.Meta = metaclass

	// The default write hook must exist before any instance write occurs;
	// it is plain raw storage. User hooks special-casing names delegate
	// back to it through RawWrite.
	object.Fields[domain.FieldWriteAttribute] = domain.NewCallable(func(args []domain.Value) (domain.Value, error) {
		if len(args) != 3 {
			panic(&domain.InvariantError{Op: "write_attribute", Msg: "default write hook expects (object, name, value)"})
		}
		e.RawWrite(args[0], args[1].String(), args[2])
		return domain.Value{}, nil
	})

	e.object = object
	e.metaclass = metaclass
	e.logger.Debug("bootstrap complete", "object", object.Name, "metaclass", metaclass.Name)
}
