package threed

import (
	"cogentcore.org/core/math32"

	"github.com/vzplot/threed/gfx"
)

// Triangle is a single fixed triangle with a surface style.
type Triangle struct {
	Points  [3]math32.Vector4
	Surface *gfx.SurfaceStyle
}

func NewTriangle(a, b, c math32.Vector3, surface *gfx.SurfaceStyle) *Triangle {
	return &Triangle{
		Points: [3]math32.Vector4{
			point4(a.X, a.Y, a.Z),
			point4(b.X, b.Y, b.Z),
			point4(c.X, c.Y, c.Z),
		},
		Surface: surface,
	}
}

// EmitFragments appends exactly one triangle fragment. Unlike the other
// emitters it applies no finiteness filter: triangles are built from
// fixed construction-time geometry rather than mapped data.
func (t *Triangle) EmitFragments(outer *math32.Matrix4, out *Buffer) {
	f := Fragment{
		Kind:    KindTriangle,
		Surface: t.Surface,
		Object:  t,
	}
	for i, p := range t.Points {
		f.Points[i] = project(outer, p)
	}
	out.add(f)
}
