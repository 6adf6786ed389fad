package domain

import (
	"errors"
	"fmt"
)

// ErrAttributeNotFound is returned by reads that no direct value, class-side
// value, or miss hook resolves. Miss hooks may themselves return it (wrapped
// in an AttributeError) to signal "still not found".
var ErrAttributeNotFound = errors.New("attribute not found")

// ErrNotCallable is returned when a non-callable value is invoked.
var ErrNotCallable = errors.New("value is not callable")

// AttributeError reports which name failed to resolve and on what class.
type AttributeError struct {
	Name  string
	Class string
}

func (e *AttributeError) Error() string {
	return fmt.Sprintf("attribute %q not found on %s", e.Name, e.Class)
}

func (e *AttributeError) Unwrap() error {
	return ErrAttributeNotFound
}

// InvariantError indicates a broken bootstrap or primitive misuse: a
// non-class used as a class, a duplicate layout extension, a missing default
// write hook. It is panicked, never returned, so user hooks cannot intercept
// it.
type InvariantError struct {
	Op  string
	Msg string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("rootstock: invariant violation in %s: %s", e.Op, e.Msg)
}
