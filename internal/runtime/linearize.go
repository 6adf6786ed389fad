package runtime

import (
	"github.com/aretw0/rootstock/pkg/domain"
)

// Ancestors returns cls followed by its base chain, terminating at the
// universal base class. Single inheritance needs no merge or tie-break
// logic.
func (e *Engine) Ancestors(cls *domain.Class) []*domain.Class {
	var chain []*domain.Class
	for c := cls; c != nil; c = c.Base {
		chain = append(chain, c)
	}
	return chain
}

// IsSubclass reports whether b appears in a's ancestor chain.
// Every class is a subclass of itself.
func (e *Engine) IsSubclass(a, b *domain.Class) bool {
	for c := a; c != nil; c = c.Base {
		if c == b {
			return true
		}
	}
	return false
}

// IsInstance reports whether obj's class is cls or a subclass of it.
func (e *Engine) IsInstance(obj domain.Value, cls *domain.Class) bool {
	return e.IsSubclass(e.classOf(obj), cls)
}

// ClassLookup scans the ancestor chain in order; the first class whose field
// table contains name wins. A subclass entry therefore shadows any ancestor
// entry of the same name.
func (e *Engine) ClassLookup(cls *domain.Class, name string) (domain.Value, bool) {
	for c := cls; c != nil; c = c.Base {
		if v, ok := c.Fields[name]; ok {
			return v, true
		}
	}
	return domain.Value{}, false
}
