package domain

import (
	"fmt"

	"github.com/spf13/cast"
)

func (v Value) Kind() ValueKind { return v.kind }

func (v Value) IsNil() bool { return v.kind == KindNil }

func (v Value) Bool() bool {
	switch v.kind {
	case KindBool:
		return v.data.(bool)
	case KindData:
		return cast.ToBool(v.data)
	default:
		return false
	}
}

func (v Value) Int() int64 {
	switch v.kind {
	case KindInt:
		return v.data.(int64)
	case KindFloat:
		return int64(v.data.(float64))
	case KindData:
		return cast.ToInt64(v.data)
	default:
		return 0
	}
}

func (v Value) Float() float64 {
	switch v.kind {
	case KindFloat:
		return v.data.(float64)
	case KindInt:
		return float64(v.data.(int64))
	case KindData:
		return cast.ToFloat64(v.data)
	default:
		return 0
	}
}

func (v Value) String() string {
	switch v.kind {
	case KindString:
		return v.data.(string)
	case KindData:
		return cast.ToString(v.data)
	default:
		return ""
	}
}

// Data returns the opaque payload of a KindData value.
func (v Value) Data() any {
	if v.kind != KindData {
		return nil
	}
	return v.data
}

func (v Value) Callable() Callable {
	if v.kind != KindCallable {
		return nil
	}
	return v.data.(Callable)
}

func (v Value) Descriptor() *Descriptor {
	if v.kind != KindDescriptor {
		return nil
	}
	return v.data.(*Descriptor)
}

func (v Value) Class() *Class {
	if v.kind != KindClass {
		return nil
	}
	return v.data.(*Class)
}

func (v Value) Instance() *Instance {
	if v.kind != KindInstance {
		return nil
	}
	return v.data.(*Instance)
}

// Invoke calls a KindCallable value with the given arguments.
// Any other kind fails with ErrNotCallable.
func (v Value) Invoke(args ...Value) (Value, error) {
	if v.kind != KindCallable {
		return Value{}, fmt.Errorf("cannot invoke %v value: %w", v.kind, ErrNotCallable)
	}
	return v.data.(Callable)(args)
}
