package domain

// Well-known field names resolved by the attribute protocol.
const (
	// FieldWriteAttribute is the class-side write hook. Every write funnels
	// through it; the universal base class provides the raw-storage default.
	FieldWriteAttribute = "write_attribute"

	// FieldAttributeMissing is the class-side miss hook, consulted when
	// neither instance storage nor the ancestor chain resolves a name.
	FieldAttributeMissing = "attribute_missing"
)

// Names of the two bootstrap root classes.
const (
	// ClassNameObject is the universal base class terminating every
	// ancestor chain.
	ClassNameObject = "Object"
	// ClassNameClass is the default metaclass closing the instance-of graph.
	ClassNameClass = "Class"
)
