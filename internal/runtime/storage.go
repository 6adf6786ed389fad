package runtime

import (
	"time"

	"github.com/aretw0/rootstock/pkg/domain"
)

// RawRead is the storage-level read primitive, distinct from the user-facing
// protocol: no class-side lookup, no hooks. For instances it indexes through
// the layout; for classes it reads the field table. The boolean is the
// distinguished absent marker, never conflated with a stored value.
func (e *Engine) RawRead(obj domain.Value, name string) (domain.Value, bool) {
	switch obj.Kind() {
	case domain.KindInstance:
		inst := obj.Instance()
		slot, ok := inst.Layout.SlotOf(name)
		if !ok {
			return domain.Value{}, false
		}
		return inst.Storage[slot], true
	case domain.KindClass:
		v, ok := obj.Class().Fields[name]
		return v, ok
	default:
		return domain.Value{}, false
	}
}

// RawWrite is the storage-level write primitive. For instances it overwrites
// an occupied slot or extends the layout and appends; for classes it writes
// the field table directly. Targeting a non-object is primitive misuse.
func (e *Engine) RawWrite(obj domain.Value, name string, value domain.Value) {
	switch obj.Kind() {
	case domain.KindInstance:
		inst := obj.Instance()
		if slot, ok := inst.Layout.SlotOf(name); ok {
			inst.Storage[slot] = value
			return
		}
		next := inst.Layout.Extend(name)
		inst.Layout = next
		inst.Storage = append(inst.Storage, value)
		e.fireLayoutExtend(inst.Class, name, next)
	case domain.KindClass:
		obj.Class().Fields[name] = value
	default:
		panic(&domain.InvariantError{Op: "raw_write", Msg: "value of kind " + obj.Kind().String() + " has no storage"})
	}
}

func (e *Engine) fireLayoutExtend(cls *domain.Class, name string, next *domain.Layout) {
	slot := next.Size() - 1
	e.logger.Debug("layout extended", "class", cls.Name, "name", name, "slot", slot)
	if e.hooks.OnLayoutExtend == nil {
		return
	}
	e.hooks.OnLayoutExtend(&domain.LayoutEvent{
		EventBase: domain.EventBase{Timestamp: time.Now(), Type: domain.EventLayoutExtend},
		Class:     cls.Name,
		Name:      name,
		Slot:      slot,
		Size:      next.Size(),
	})
}
