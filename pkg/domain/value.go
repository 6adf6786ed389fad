package domain

// ValueKind discriminates the payload carried by a Value.
type ValueKind int

const (
	KindNil ValueKind = iota
	KindBool
	KindInt
	KindFloat
	KindString
	KindData
	KindCallable
	KindDescriptor
	KindClass
	KindInstance
)

func (k ValueKind) String() string {
	switch k {
	case KindNil:
		return "nil"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindData:
		return "data"
	case KindCallable:
		return "callable"
	case KindDescriptor:
		return "descriptor"
	case KindClass:
		return "class"
	case KindInstance:
		return "instance"
	default:
		return "unknown"
	}
}

// Callable is an opaque invocable supplied by the front end (a compiled
// method body, a builtin, a hook). By convention the receiver, when there is
// one, is args[0]; binding a class-side callable through an instance fixes
// that argument.
type Callable func(args []Value) (Value, error)

// BindFunc computes the result of reading a class-side value through an
// object. self is the stored value itself, receiver the object the read went
// through, and owner that object's class.
type BindFunc func(self, receiver Value, owner *Class) (Value, error)

// Descriptor wraps a bind hook so a class-side entry can compute the value a
// read returns: derived properties, custom method binding, and the like.
type Descriptor struct {
	Bind BindFunc
}

// Value is the tagged variant flowing through the runtime.
// The zero Value is nil.
type Value struct {
	kind ValueKind
	data any
}

func NewBool(b bool) Value { return Value{kind: KindBool, data: b} }

func NewInt(i int64) Value { return Value{kind: KindInt, data: i} }

func NewFloat(f float64) Value { return Value{kind: KindFloat, data: f} }

func NewString(s string) Value { return Value{kind: KindString, data: s} }

// NewData wraps an opaque host datum the runtime never interprets.
func NewData(data any) Value { return Value{kind: KindData, data: data} }

func NewCallable(fn Callable) Value { return Value{kind: KindCallable, data: fn} }

func NewDescriptor(d *Descriptor) Value { return Value{kind: KindDescriptor, data: d} }

// NewClassValue wraps a Class so it can travel through the protocol like any
// other object.
func NewClassValue(cls *Class) Value { return Value{kind: KindClass, data: cls} }

// NewInstanceValue wraps an Instance.
func NewInstanceValue(inst *Instance) Value { return Value{kind: KindInstance, data: inst} }
