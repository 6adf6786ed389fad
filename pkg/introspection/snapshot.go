package introspection

import (
	"fmt"
	"sort"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/aretw0/rootstock/pkg/domain"
)

// LayoutSnapshot captures a layout's slot table.
type LayoutSnapshot struct {
	// Names lists attribute names in slot order.
	Names []string `json:"names" yaml:"names" mapstructure:"names"`
	// Slots maps attribute name to storage index.
	Slots map[string]int `json:"slots" yaml:"slots" mapstructure:"slots"`
}

// InstanceSnapshot captures an instance's class, layout and storage sequence.
type InstanceSnapshot struct {
	Class   string         `json:"class" yaml:"class" mapstructure:"class"`
	Layout  LayoutSnapshot `json:"layout" yaml:"layout" mapstructure:"layout"`
	Storage []any          `json:"storage" yaml:"storage" mapstructure:"storage"`
}

// ClassSnapshot captures a class's position in the graph.
type ClassSnapshot struct {
	Name      string   `json:"name" yaml:"name" mapstructure:"name"`
	Base      string   `json:"base,omitempty" yaml:"base,omitempty" mapstructure:"base"`
	Metaclass string   `json:"metaclass" yaml:"metaclass" mapstructure:"metaclass"`
	Fields    []string `json:"fields" yaml:"fields" mapstructure:"fields"`
	Ancestors []string `json:"ancestors" yaml:"ancestors" mapstructure:"ancestors"`
}

// CaptureLayout snapshots a layout.
func CaptureLayout(layout *domain.Layout) LayoutSnapshot {
	return LayoutSnapshot{
		Names: layout.Names(),
		Slots: layout.Slots(),
	}
}

// CaptureInstance snapshots an instance's layout and storage.
func CaptureInstance(inst *domain.Instance) InstanceSnapshot {
	storage := make([]any, len(inst.Storage))
	for i, v := range inst.Storage {
		storage[i] = describe(v)
	}
	return InstanceSnapshot{
		Class:   inst.Class.Name,
		Layout:  CaptureLayout(inst.Layout),
		Storage: storage,
	}
}

// CaptureClass snapshots a class: its field names (sorted, the table is
// unordered) and its ancestor chain in linearization order.
func CaptureClass(cls *domain.Class) ClassSnapshot {
	fields := make([]string, 0, len(cls.Fields))
	for name := range cls.Fields {
		fields = append(fields, name)
	}
	sort.Strings(fields)

	var ancestors []string
	for c := cls; c != nil; c = c.Base {
		ancestors = append(ancestors, c.Name)
	}

	snap := ClassSnapshot{
		Name:      cls.Name,
		Metaclass: cls.Meta.Name,
		Fields:    fields,
		Ancestors: ancestors,
	}
	if cls.Base != nil {
		snap.Base = cls.Base.Name
	}
	return snap
}

// EncodeYAML renders any snapshot as YAML for golden files or debug dumps.
func EncodeYAML(snapshot any) ([]byte, error) {
	out, err := yaml.Marshal(snapshot)
	if err != nil {
		return nil, fmt.Errorf("failed to encode snapshot: %w", err)
	}
	return out, nil
}

// DecodeInstance rebuilds an InstanceSnapshot from a generic map, e.g. one a
// host decoded from its own transport or fixture format.
func DecodeInstance(data map[string]any) (InstanceSnapshot, error) {
	var snap InstanceSnapshot
	if err := mapstructure.Decode(data, &snap); err != nil {
		return InstanceSnapshot{}, fmt.Errorf("failed to decode instance snapshot: %w", err)
	}
	return snap, nil
}

// DecodeClass rebuilds a ClassSnapshot from a generic map.
func DecodeClass(data map[string]any) (ClassSnapshot, error) {
	var snap ClassSnapshot
	if err := mapstructure.Decode(data, &snap); err != nil {
		return ClassSnapshot{}, fmt.Errorf("failed to decode class snapshot: %w", err)
	}
	return snap, nil
}

// describe renders a stored value as plain data. Scalars keep their payload;
// structural values degrade to a short descriptive string, since a snapshot
// must stay encodable.
func describe(v domain.Value) any {
	switch v.Kind() {
	case domain.KindNil:
		return nil
	case domain.KindBool:
		return v.Bool()
	case domain.KindInt:
		return v.Int()
	case domain.KindFloat:
		return v.Float()
	case domain.KindString:
		return v.String()
	case domain.KindData:
		return v.Data()
	case domain.KindClass:
		return fmt.Sprintf("class(%s)", v.Class().Name)
	case domain.KindInstance:
		return fmt.Sprintf("instance(%s)", v.Instance().Class.Name)
	default:
		return v.Kind().String()
	}
}
