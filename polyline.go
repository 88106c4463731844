package threed

import (
	"slices"

	"cogentcore.org/core/math32"

	"github.com/vzplot/threed/gfx"
)

// PolyLine is a connected sequence of points drawn as line segments.
type PolyLine struct {
	Points []math32.Vector4
	Line   *gfx.LineStyle
}

func NewPolyLine(line *gfx.LineStyle) *PolyLine {
	return &PolyLine{Line: line}
}

// AddPoints appends one point per index of the shortest input sequence,
// pairing xs, ys and zs elementwise. Excess entries in the longer
// sequences are ignored.
func (pl *PolyLine) AddPoints(xs, ys, zs []float32) {
	n := minLen(len(xs), len(ys), len(zs))
	pl.Points = slices.Grow(pl.Points, n)
	for i := range n {
		pl.Points = append(pl.Points, point4(xs[i], ys[i], zs[i]))
	}
}

// EmitFragments folds over consecutive point pairs, emitting a segment
// for each pair whose transformed endpoints are all finite. A non-finite
// point breaks the segments on both sides of it without aborting the rest
// of the line. Fewer than two points emit nothing.
func (pl *PolyLine) EmitFragments(outer *math32.Matrix4, out *Buffer) {
	f := Fragment{
		Kind:   KindLineSegment,
		Line:   pl.Line,
		Object: pl,
	}
	for i, p := range pl.Points {
		f.Points[1] = f.Points[0]
		f.Points[0] = project(outer, p)
		if i > 0 && finite3(f.Points[0]) && finite3(f.Points[1]) {
			out.add(f)
			f.Index++
		}
	}
}

// LineSegments is a set of independent segments given as endpoint pairs.
// Unlike PolyLine the segments share no points.
type LineSegments struct {
	// Points holds interleaved endpoints: start, end, start, end, ...
	Points []math32.Vector4
	Line   *gfx.LineStyle
}

// NewLineSegments pairs the six parallel coordinate sequences into
// segments, truncating to the shortest sequence.
func NewLineSegments(x1, y1, z1, x2, y2, z2 []float32, line *gfx.LineStyle) *LineSegments {
	n := minLen(len(x1), len(y1), len(z1), len(x2), len(y2), len(z2))
	ls := &LineSegments{
		Points: make([]math32.Vector4, 0, 2*n),
		Line:   line,
	}
	for i := range n {
		ls.Points = append(ls.Points,
			point4(x1[i], y1[i], z1[i]),
			point4(x2[i], y2[i], z2[i]))
	}
	return ls
}

// EmitFragments emits one segment per endpoint pair whose transformed
// endpoints are all finite.
func (ls *LineSegments) EmitFragments(outer *math32.Matrix4, out *Buffer) {
	f := Fragment{
		Kind:   KindLineSegment,
		Line:   ls.Line,
		Object: ls,
	}
	for i := 0; i+1 < len(ls.Points); i += 2 {
		f.Points[0] = project(outer, ls.Points[i])
		f.Points[1] = project(outer, ls.Points[i+1])
		if finite3(f.Points[0]) && finite3(f.Points[1]) {
			out.add(f)
			f.Index++
		}
	}
}
