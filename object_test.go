package threed

import (
	"testing"

	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vzplot/threed/gfx"
)

func twoPointLine(x0, x1 float32) *PolyLine {
	pl := NewPolyLine(&gfx.LineStyle{})
	pl.AddPoints([]float32{x0, x1}, []float32{0, 0}, []float32{0, 0})
	return pl
}

func TestContainerChildOrder(t *testing.T) {
	first := twoPointLine(0, 1)
	second := twoPointLine(10, 11)
	c := NewContainer(first, second)

	var out Buffer
	c.EmitFragments(math32.Identity4(), &out)

	require.Equal(t, 2, out.Len())
	assert.Same(t, first, out.Fragments[0].Object)
	assert.Same(t, second, out.Fragments[1].Object)
	// Each child's sequence starts over.
	assert.Equal(t, uint32(0), out.Fragments[0].Index)
	assert.Equal(t, uint32(0), out.Fragments[1].Index)
}

func TestContainerComposesTransforms(t *testing.T) {
	p := &Points{
		X: []float32{0},
		Y: []float32{0},
		Z: []float32{0},
	}
	inner := NewContainer(p)
	inner.Transform = *translate3(0, 0, 1)
	root := NewContainer(inner)
	root.Transform = *translate3(0, 1, 0)

	var out Buffer
	root.EmitFragments(translate3(1, 0, 0), &out)

	require.Equal(t, 1, out.Len())
	assert.Equal(t, math32.Vec3(1, 1, 1), out.Fragments[0].Points[0])
}

func TestContainerEmpty(t *testing.T) {
	var out Buffer
	NewContainer().EmitFragments(math32.Identity4(), &out)
	assert.Equal(t, 0, out.Len())
}

func TestContainerAdd(t *testing.T) {
	c := NewContainer()
	c.Add(twoPointLine(0, 1))
	c.Add(twoPointLine(2, 3), twoPointLine(4, 5))
	assert.Len(t, c.Objects, 3)
}

// A traversal over mixed geometry never emits a non-finite coordinate,
// whatever the inputs.
func TestTraversalOutputAlwaysFinite(t *testing.T) {
	nan := math32.NaN()
	inf := math32.Inf(1)

	pl := NewPolyLine(&gfx.LineStyle{})
	pl.AddPoints(
		[]float32{0, nan, 1, 2, inf},
		[]float32{0, 0, 0, 0, 0},
		[]float32{0, 0, 0, 0, 0},
	)
	mesh := &Mesh{
		Pos1:    []float32{0, 1, 2},
		Pos2:    []float32{0, 1},
		Heights: []float32{0, inf, nan, 1, 2, 3},
		Dirn:    DirY,
		Line:    &gfx.LineStyle{},
		Surface: &gfx.SurfaceStyle{},
	}
	pts := &Points{
		X: []float32{0, 1, nan},
		Y: []float32{0, inf, 0},
		Z: []float32{0, 0, 0},
	}
	root := NewContainer(pl, mesh, pts)

	var out Buffer
	root.EmitFragments(math32.Identity4(), &out)

	require.NotZero(t, out.Len())
	for _, f := range out.Fragments {
		for i := range f.NumPoints() {
			assert.True(t, finite3(f.Points[i]), "fragment %d point %d", f.Index, i)
		}
	}
}
