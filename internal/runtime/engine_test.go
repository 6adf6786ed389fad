package runtime_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/rootstock/internal/runtime"
	"github.com/aretw0/rootstock/pkg/domain"
)

func TestEngine_NewInstanceStartsEmpty(t *testing.T) {
	engine := runtime.NewEngine()
	point := engine.MakeClass("Point", nil, nil, nil)

	inst := engine.NewInstance(point)

	assert.Same(t, point, inst.Class)
	assert.Equal(t, 0, inst.Layout.Size())
	assert.Empty(t, inst.Storage)
}

func TestEngine_NewInstanceNilClassPanics(t *testing.T) {
	engine := runtime.NewEngine()

	assert.Panics(t, func() {
		engine.NewInstance(nil)
	})
}

func TestEngine_RawReadWriteInstance(t *testing.T) {
	engine := runtime.NewEngine()
	point := engine.MakeClass("Point", nil, nil, nil)
	obj := domain.NewInstanceValue(engine.NewInstance(point))

	// A miss returns the distinguished absent marker.
	_, found := engine.RawRead(obj, "x")
	assert.False(t, found)

	engine.RawWrite(obj, "x", domain.NewInt(1))
	v, found := engine.RawRead(obj, "x")
	require.True(t, found)
	assert.Equal(t, int64(1), v.Int())

	// Overwrite reuses the slot instead of extending.
	layoutBefore := obj.Instance().Layout
	engine.RawWrite(obj, "x", domain.NewInt(9))
	assert.Same(t, layoutBefore, obj.Instance().Layout)
	v, _ = engine.RawRead(obj, "x")
	assert.Equal(t, int64(9), v.Int())
}

func TestEngine_RawReadWriteClass(t *testing.T) {
	engine := runtime.NewEngine()
	point := engine.MakeClass("Point", nil, nil, nil)
	obj := domain.NewClassValue(point)

	_, found := engine.RawRead(obj, "origin")
	assert.False(t, found)

	engine.RawWrite(obj, "origin", domain.NewString("0,0"))

	// Classes stay table-backed: the write lands in the field table.
	v, found := engine.RawRead(obj, "origin")
	require.True(t, found)
	assert.Equal(t, "0,0", v.String())
	assert.Equal(t, domain.NewString("0,0"), point.Fields["origin"])
}

func TestEngine_RawWriteNonObjectPanics(t *testing.T) {
	engine := runtime.NewEngine()

	assert.Panics(t, func() {
		engine.RawWrite(domain.NewInt(1), "x", domain.NewInt(2))
	})
}

func TestEngine_LayoutSharing(t *testing.T) {
	engine := runtime.NewEngine()
	point := engine.MakeClass("Point", nil, nil, nil)

	p1 := domain.NewInstanceValue(engine.NewInstance(point))
	p2 := domain.NewInstanceValue(engine.NewInstance(point))

	for _, obj := range []domain.Value{p1, p2} {
		require.NoError(t, engine.Write(obj, "x", domain.NewInt(1)))
		require.NoError(t, engine.Write(obj, "y", domain.NewInt(2)))
	}

	// Identical names in identical order converge on one layout object.
	assert.Same(t, p1.Instance().Layout, p2.Instance().Layout)

	// Storage stays independent.
	require.NoError(t, engine.Write(p2, "x", domain.NewInt(100)))
	v, err := engine.Read(p1, "x")
	require.NoError(t, err)
	assert.Equal(t, int64(1), v.Int())
}

func TestEngine_LayoutOrderYieldsDistinctLayouts(t *testing.T) {
	engine := runtime.NewEngine()
	point := engine.MakeClass("Point", nil, nil, nil)

	xy := domain.NewInstanceValue(engine.NewInstance(point))
	require.NoError(t, engine.Write(xy, "x", domain.NewInt(1)))
	require.NoError(t, engine.Write(xy, "y", domain.NewInt(2)))

	yx := domain.NewInstanceValue(engine.NewInstance(point))
	require.NoError(t, engine.Write(yx, "y", domain.NewInt(2)))
	require.NoError(t, engine.Write(yx, "x", domain.NewInt(1)))

	assert.NotSame(t, xy.Instance().Layout, yx.Instance().Layout)
}

// End-to-end scenario: three Point instances, two write orders.
func TestEngine_PointScenario(t *testing.T) {
	engine := runtime.NewEngine()
	point := engine.MakeClass("Point", nil, nil, nil)

	p1 := domain.NewInstanceValue(engine.NewInstance(point))
	require.NoError(t, engine.Write(p1, "x", domain.NewInt(1)))
	require.NoError(t, engine.Write(p1, "y", domain.NewInt(2)))

	assert.Equal(t, []domain.Value{domain.NewInt(1), domain.NewInt(2)}, p1.Instance().Storage)
	assert.Equal(t, map[string]int{"x": 0, "y": 1}, p1.Instance().Layout.Slots())

	p2 := domain.NewInstanceValue(engine.NewInstance(point))
	require.NoError(t, engine.Write(p2, "x", domain.NewInt(3)))
	require.NoError(t, engine.Write(p2, "y", domain.NewInt(4)))
	assert.Same(t, p1.Instance().Layout, p2.Instance().Layout)

	p3 := domain.NewInstanceValue(engine.NewInstance(point))
	require.NoError(t, engine.Write(p3, "x", domain.NewInt(5)))
	require.NoError(t, engine.Write(p3, "z", domain.NewInt(6)))
	assert.NotSame(t, p1.Instance().Layout, p3.Instance().Layout)
	assert.Equal(t, map[string]int{"x": 0, "z": 1}, p3.Instance().Layout.Slots())
}

func TestEngine_IndependentEnginesDoNotShareLayouts(t *testing.T) {
	a := runtime.NewEngine()
	b := runtime.NewEngine()

	instA := domain.NewInstanceValue(a.NewInstance(a.MakeClass("Point", nil, nil, nil)))
	instB := domain.NewInstanceValue(b.NewInstance(b.MakeClass("Point", nil, nil, nil)))

	require.NoError(t, a.Write(instA, "x", domain.NewInt(1)))
	require.NoError(t, b.Write(instB, "x", domain.NewInt(1)))

	assert.NotSame(t, instA.Instance().Layout, instB.Instance().Layout)
}
