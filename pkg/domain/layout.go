package domain

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Layout describes which attribute names occupy which storage slots.
// Insertion order is slot order, so the name table is an ordered map.
//
// A Layout is immutable once published: Extend never mutates the slot table,
// it derives (and interns) a successor. Layouts therefore form a trie keyed
// by attribute-addition order, rooted at a runtime's empty Layout, and any
// two live instances sharing a Layout agree on slot meaning per name.
//
// The transition cache is shared mutable state; concurrent extensions of the
// same Layout must be serialized by the host (the core holds no locks).
type Layout struct {
	slots       *orderedmap.OrderedMap[string, int]
	transitions map[string]*Layout
}

// NewEmptyLayout creates the root of a fresh layout trie. Each runtime owns
// its own root so independent runtimes never intern into each other.
func NewEmptyLayout() *Layout {
	return &Layout{
		slots:       orderedmap.New[string, int](),
		transitions: make(map[string]*Layout),
	}
}

// SlotOf returns the storage index of name, if any.
func (l *Layout) SlotOf(name string) (int, bool) {
	return l.slots.Get(name)
}

// Size is the number of occupied slots.
func (l *Layout) Size() int {
	return l.slots.Len()
}

// Names returns the attribute names in slot order.
func (l *Layout) Names() []string {
	names := make([]string, 0, l.slots.Len())
	for pair := l.slots.Oldest(); pair != nil; pair = pair.Next() {
		names = append(names, pair.Key)
	}
	return names
}

// Slots returns a name -> slot index view of the layout.
// The returned map is a copy; mutating it does not affect the layout.
func (l *Layout) Slots() map[string]int {
	slots := make(map[string]int, l.slots.Len())
	for pair := l.slots.Oldest(); pair != nil; pair = pair.Next() {
		slots[pair.Key] = pair.Value
	}
	return slots
}

// Extend returns the canonical successor layout: the current attributes plus
// name at the next free slot. Repeated calls with the same name return the
// identical Layout, so instances adding identical attribute sets in identical
// order converge on one Layout. Extending with a name already present is a
// primitive misuse and panics with an InvariantError.
func (l *Layout) Extend(name string) *Layout {
	if _, occupied := l.slots.Get(name); occupied {
		panic(&InvariantError{Op: "layout.extend", Msg: "name " + name + " already occupies a slot"})
	}
	if next, cached := l.transitions[name]; cached {
		return next
	}

	next := NewEmptyLayout()
	for pair := l.slots.Oldest(); pair != nil; pair = pair.Next() {
		next.slots.Set(pair.Key, pair.Value)
	}
	next.slots.Set(name, l.slots.Len())

	l.transitions[name] = next
	return next
}
