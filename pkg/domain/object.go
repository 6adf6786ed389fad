package domain

// Class is a table-backed object: a named node in the single-inheritance
// graph. Insertion order in Fields is not significant, in contrast with the
// layout-backed instances; class-side mutation patterns are too irregular to
// benefit from slot sharing.
type Class struct {
	Name string

	// Base is the single parent class. It is nil only for the universal
	// base class; following Base from any class terminates there.
	Base *Class

	// Fields is the direct attribute/method table.
	Fields map[string]Value

	// Meta is the class this class is an instance of. Every metaclass
	// chain eventually reaches the default metaclass, which is an instance
	// of itself.
	Meta *Class
}

// Instance carries no field table of its own: attribute names live in the
// shared Layout, values in the index-aligned Storage slice. Instances start
// on the runtime's empty Layout and advance to successor Layouts as new
// names are first written; they never retreat.
type Instance struct {
	Class   *Class
	Layout  *Layout
	Storage []Value
}

// ClassOf resolves the class an object is an instance of: the Class of an
// instance, the metaclass of a class. Values that are not objects (plain
// data, callables) have no class in this model and yield nil.
func (v Value) ClassOf() *Class {
	switch v.kind {
	case KindInstance:
		return v.data.(*Instance).Class
	case KindClass:
		return v.data.(*Class).Meta
	default:
		return nil
	}
}
