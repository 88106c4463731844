// Package threed flattens a hierarchical 3D scene into an ordered list of
// renderable fragments.
//
// Scene objects form a tree of Containers with leaf geometry (Triangle,
// PolyLine, LineSegments, Mesh, Points). Calling EmitFragments on the root
// composes transforms down the tree and appends one Fragment per visible
// primitive to a Buffer, depth-first and in insertion order. The flat list
// carries everything a depth-sorting rasterizer needs afterwards: points
// in the composed space, style handles, the emitting object, and a
// per-object sequence index.
//
// Geometry that has become numerically invalid, for example from
// logarithmic axis mapping or clipping, carries NaN or infinite
// coordinates. Emitters drop exactly the affected segment, cell or point
// and keep going; no fragment with a non-finite coordinate ever reaches
// the output.
package threed

import (
	"cogentcore.org/core/math32"
	"golang.org/x/exp/constraints"
)

// project applies m to the homogeneous point v and perspective-divides the
// result down to three components.
func project(m *math32.Matrix4, v math32.Vector4) math32.Vector3 {
	return v.MulMatrix4(m).PerspDiv()
}

func point4(x, y, z float32) math32.Vector4 {
	return math32.Vec4(x, y, z, 1)
}

func finite(f float32) bool {
	return !math32.IsNaN(f) && !math32.IsInf(f, 0)
}

func finite3(v math32.Vector3) bool {
	return finite(v.X) && finite(v.Y) && finite(v.Z)
}

func finite4(v math32.Vector4) bool {
	return finite(v.X) && finite(v.Y) && finite(v.Z) && finite(v.W)
}

func minLen[T constraints.Ordered](x T, ys ...T) T {
	for _, y := range ys {
		if y < x {
			x = y
		}
	}
	return x
}
