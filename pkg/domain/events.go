package domain

import "time"

// EventType defines the category of the event.
type EventType string

const (
	EventRead         EventType = "read"
	EventWrite        EventType = "write"
	EventMiss         EventType = "miss"
	EventLayoutExtend EventType = "layout_extend"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
}

// AttributeEvent describes one pass through the attribute protocol.
type AttributeEvent struct {
	EventBase
	Class string `json:"class"` // class of the object accessed
	Name  string `json:"name"`  // attribute name
}

// LayoutEvent describes a layout extension performed on first write of a new
// attribute name.
type LayoutEvent struct {
	EventBase
	Class string `json:"class"`
	Name  string `json:"name"`
	Slot  int    `json:"slot"`
	Size  int    `json:"size"` // slot count after the extension
}

// LifecycleHooks defines callbacks for engine observability.
// All hooks run synchronously on the calling goroutine; unset hooks are
// skipped.
type LifecycleHooks struct {
	OnRead         func(*AttributeEvent)
	OnWrite        func(*AttributeEvent)
	OnMiss         func(*AttributeEvent)
	OnLayoutExtend func(*LayoutEvent)
}
