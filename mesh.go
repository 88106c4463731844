package threed

import (
	"cogentcore.org/core/math32"

	"github.com/vzplot/threed/gfx"
)

// Direction selects the spatial axis a mesh's height values populate. The
// remaining two axes carry the Pos1 and Pos2 grid coordinates.
type Direction uint8

const (
	DirX Direction = iota
	DirY
	DirZ
)

// vecDims returns the vector components for (height, axis1, axis2):
// X→(X,Y,Z), Y→(Y,Z,X), Z→(Z,X,Y).
func (d Direction) vecDims() (h, a1, a2 math32.Dims) {
	switch d {
	case DirY:
		return math32.Y, math32.Z, math32.X
	case DirZ:
		return math32.Z, math32.X, math32.Y
	default:
		return math32.X, math32.Y, math32.Z
	}
}

// Mesh is a parametric height grid. Heights is row-major with
// len(Pos1)*len(Pos2) entries: Heights[i1*len(Pos2)+i2] is the height at
// (Pos1[i1], Pos2[i2]). A nil Line suppresses the wireframe, a nil
// Surface the tessellated surface.
type Mesh struct {
	Pos1    []float32
	Pos2    []float32
	Heights []float32
	Dirn    Direction
	Line    *gfx.LineStyle
	Surface *gfx.SurfaceStyle
}

// EmitFragments emits the wireframe line segments followed by the surface
// triangles. One sequence index counter spans both halves.
func (m *Mesh) EmitFragments(outer *math32.Matrix4, out *Buffer) {
	idx := m.lineFragments(outer, out, 0)
	m.surfaceFragments(outer, out, idx)
}

// lineFragments walks the grid twice, first varying Pos1 for each fixed
// Pos2 value and then varying Pos2 for each fixed Pos1 value, producing
// both families of grid lines with the same sliding-window filtering as
// PolyLine. It returns the next sequence index.
func (m *Mesh) lineFragments(outer *math32.Matrix4, out *Buffer, idx uint32) uint32 {
	if m.Line == nil {
		return idx
	}
	hd, a1, a2 := m.Dirn.vecDims()

	f := Fragment{
		Kind:   KindLineSegment,
		Line:   m.Line,
		Object: m,
		Index:  idx,
	}

	n2 := len(m.Pos2)
	pt := point4(0, 0, 0)
	for step := 0; step <= 1; step++ {
		vecStep, vecConst := m.Pos1, m.Pos2
		dimStep, dimConst := a1, a2
		if step == 1 {
			vecStep, vecConst = m.Pos2, m.Pos1
			dimStep, dimConst = a2, a1
		}

		for ci, cv := range vecConst {
			pt.SetDim(dimConst, cv)
			for si, sv := range vecStep {
				var h float32
				if step == 0 {
					h = m.Heights[si*n2+ci]
				} else {
					h = m.Heights[ci*n2+si]
				}
				pt.SetDim(dimStep, sv)
				pt.SetDim(hd, h)

				f.Points[1] = f.Points[0]
				f.Points[0] = project(outer, pt)
				if si > 0 && finite3(f.Points[0]) && finite3(f.Points[1]) {
					out.add(f)
					f.Index++
				}
			}
		}
	}
	return f.Index
}

// surfaceFragments tessellates every grid cell into two triangles sharing
// the (1,0)-(0,1) diagonal. The split is fixed so adjacent cells stay
// visually consistent. A cell with any non-finite corner is skipped
// whole, before transformation.
func (m *Mesh) surfaceFragments(outer *math32.Matrix4, out *Buffer, idx uint32) {
	if m.Surface == nil {
		return
	}
	hd, a1, a2 := m.Dirn.vecDims()

	f := Fragment{
		Kind:    KindTriangle,
		Surface: m.Surface,
		Object:  m,
		Index:   idx,
	}

	n1 := len(m.Pos1)
	n2 := len(m.Pos2)
	c00 := point4(0, 0, 0)
	c10, c01, c11 := c00, c00, c00
	for i1 := 0; i1+1 < n1; i1++ {
		for i2 := 0; i2+1 < n2; i2++ {
			c00.SetDim(hd, m.Heights[i1*n2+i2])
			c00.SetDim(a1, m.Pos1[i1])
			c00.SetDim(a2, m.Pos2[i2])
			c10.SetDim(hd, m.Heights[(i1+1)*n2+i2])
			c10.SetDim(a1, m.Pos1[i1+1])
			c10.SetDim(a2, m.Pos2[i2])
			c01.SetDim(hd, m.Heights[i1*n2+(i2+1)])
			c01.SetDim(a1, m.Pos1[i1])
			c01.SetDim(a2, m.Pos2[i2+1])
			c11.SetDim(hd, m.Heights[(i1+1)*n2+(i2+1)])
			c11.SetDim(a1, m.Pos1[i1+1])
			c11.SetDim(a2, m.Pos2[i2+1])

			if !(finite4(c00) && finite4(c10) && finite4(c01) && finite4(c11)) {
				continue
			}

			f.Points[1] = project(outer, c10)
			f.Points[2] = project(outer, c01)

			f.Points[0] = project(outer, c00)
			out.add(f)
			f.Index++

			f.Points[0] = project(outer, c11)
			out.add(f)
			f.Index++
		}
	}
}
