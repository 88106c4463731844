package threed

import (
	"cogentcore.org/core/math32"
	"honnef.co/go/safeish"

	"github.com/vzplot/threed/gfx"
)

// Kind distinguishes the renderable primitive a Fragment describes.
type Kind uint8

const (
	KindTriangle Kind = iota
	KindLineSegment
	KindPath
)

// Fragment is one flattened renderable primitive in the composed
// coordinate space. Triangles use all three entries of Points, line
// segments the first two, path (point marker) fragments the first one.
type Fragment struct {
	Kind   Kind
	Points [3]math32.Vector3

	// Style handles are opaque here; only the consumer interprets them.
	// Triangles carry Surface, line segments Line, path fragments may
	// carry both (fill and edge).
	Surface *gfx.SurfaceStyle
	Line    *gfx.LineStyle

	// Object identifies the emitter. Identity only, not ownership.
	Object Object

	// Index orders the fragments of a single object within one traversal:
	// 0 for the object's first fragment, then +1 per fragment with no
	// gaps, so the consumer can reconstruct per-object order after depth
	// sorting.
	Index uint32

	// Path fragments only.
	PathSize float32
	Marker   *gfx.Marker
}

// NumPoints returns how many entries of Points are meaningful for the
// fragment's kind.
func (f *Fragment) NumPoints() int {
	switch f.Kind {
	case KindTriangle:
		return 3
	case KindLineSegment:
		return 2
	default:
		return 1
	}
}

// MeanDepth returns the mean Z of the used points. Depth-sorting
// consumers order fragments by these depths.
func (f *Fragment) MeanDepth() float32 {
	n := f.NumPoints()
	var d float32
	for i := range n {
		d += f.Points[i].Z
	}
	return d / float32(n)
}

// MinDepth returns the smallest Z of the used points.
func (f *Fragment) MinDepth() float32 {
	d := f.Points[0].Z
	for i := 1; i < f.NumPoints(); i++ {
		d = min(d, f.Points[i].Z)
	}
	return d
}

// MaxDepth returns the largest Z of the used points.
func (f *Fragment) MaxDepth() float32 {
	d := f.Points[0].Z
	for i := 1; i < f.NumPoints(); i++ {
		d = max(d, f.Points[i].Z)
	}
	return d
}

// Buffer collects the fragments of one traversal. It can be reused across
// traversals with Reset, which keeps the underlying storage.
type Buffer struct {
	Fragments []Fragment
}

func (b *Buffer) Reset() {
	b.Fragments = b.Fragments[:0]
}

func (b *Buffer) Len() int {
	return len(b.Fragments)
}

func (b *Buffer) add(f Fragment) {
	b.Fragments = append(b.Fragments, f)
}

// TrianglePositions packs the corner positions of all triangle fragments
// into a flat xyz stream for handoff to a rasterizer.
func (b *Buffer) TrianglePositions() []float32 {
	pts := make([]math32.Vector3, 0, 3*len(b.Fragments))
	for i := range b.Fragments {
		f := &b.Fragments[i]
		if f.Kind != KindTriangle {
			continue
		}
		pts = append(pts, f.Points[0], f.Points[1], f.Points[2])
	}
	return safeish.SliceCast[[]float32](pts)
}
