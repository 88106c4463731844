package threed

import (
	"cogentcore.org/core/math32"

	"github.com/vzplot/threed/gfx"
)

// DefaultPathSize is the marker scale used when a point cloud carries no
// per-point sizes.
const DefaultPathSize = 1

// Points is a cloud of marker points. The parallel coordinate sequences
// are truncated to the shortest; Sizes, when non-empty, scales each
// marker and participates in the truncation.
type Points struct {
	X, Y, Z []float32
	Sizes   []float32
	Marker  *gfx.Marker
	Edge    *gfx.LineStyle
	Fill    *gfx.SurfaceStyle
}

// EmitFragments emits one path fragment per finite transformed point,
// carrying the shared marker outline, both style handles and the point's
// size. Non-finite points are skipped individually.
func (p *Points) EmitFragments(outer *math32.Matrix4, out *Buffer) {
	n := minLen(len(p.X), len(p.Y), len(p.Z))
	hasSizes := len(p.Sizes) > 0
	if hasSizes {
		n = minLen(n, len(p.Sizes))
	}

	f := Fragment{
		Kind:     KindPath,
		Surface:  p.Fill,
		Line:     p.Edge,
		Object:   p,
		Marker:   p.Marker,
		PathSize: DefaultPathSize,
	}
	for i := range n {
		f.Points[0] = project(outer, point4(p.X[i], p.Y[i], p.Z[i]))
		if hasSizes {
			f.PathSize = p.Sizes[i]
		}
		if finite3(f.Points[0]) {
			out.add(f)
			f.Index++
		}
	}
}
