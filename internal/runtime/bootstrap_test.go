package runtime_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/rootstock/internal/runtime"
	"github.com/aretw0/rootstock/pkg/domain"
)

func TestBootstrap_GraphClosure(t *testing.T) {
	engine := runtime.NewEngine()

	object := engine.ObjectClass()
	metaclass := engine.Metaclass()

	// The universal base class has no parent; the metaclass descends from it.
	assert.Nil(t, object.Base)
	assert.Same(t, object, metaclass.Base)

	// The instance-of cycle: Object is an instance of Class, Class of itself.
	assert.Same(t, metaclass, object.Meta)
	assert.Same(t, metaclass, metaclass.Meta)

	assert.Equal(t, domain.ClassNameObject, object.Name)
	assert.Equal(t, domain.ClassNameClass, metaclass.Name)
}

func TestBootstrap_DefaultWriteHookInstalled(t *testing.T) {
	engine := runtime.NewEngine()

	hook, ok := engine.ObjectClass().Fields[domain.FieldWriteAttribute]
	require.True(t, ok)
	assert.Equal(t, domain.KindCallable, hook.Kind())
}

func TestBootstrap_RootsAreWritableObjects(t *testing.T) {
	engine := runtime.NewEngine()

	// Both roots are ordinary objects under the protocol.
	obj := domain.NewClassValue(engine.ObjectClass())
	require.NoError(t, engine.Write(obj, "doc", domain.NewString("the root")))

	v, err := engine.Read(obj, "doc")
	require.NoError(t, err)
	assert.Equal(t, "the root", v.String())
}

func TestBootstrap_CustomMetaclass(t *testing.T) {
	engine := runtime.NewEngine()

	// Subclassing the default metaclass yields a usable custom metaclass.
	meta := engine.MakeClass("Meta", engine.Metaclass(), map[string]domain.Value{
		"registry": domain.NewString("plugins"),
	}, nil)
	widget := engine.MakeClass("Widget", nil, nil, meta)

	assert.Same(t, meta, widget.Meta)
	assert.True(t, engine.IsInstance(domain.NewClassValue(widget), engine.Metaclass()))

	// Class-side reads on Widget resolve through its metaclass chain.
	v, err := engine.Read(domain.NewClassValue(widget), "registry")
	require.NoError(t, err)
	assert.Equal(t, "plugins", v.String())
}
