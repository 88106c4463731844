package gfx

import (
	"slices"

	"honnef.co/go/curve"
)

// markerTolerance bounds the flattening error of marker outlines. Markers
// are tiny on screen, so a coarse tolerance suffices.
const markerTolerance = 0.1

// Marker is a shared point-marker outline. Every path fragment a point
// cloud emits references the same Marker, scaled per fragment by its path
// size.
type Marker struct {
	Path []curve.PathElement
	// ScaleLine scales the edge line width along with the marker size.
	ScaleLine bool
}

// MarkerShape builds a marker from any shape, flattening it to path
// elements once so all fragments can share the result.
func MarkerShape(shape curve.Shape) *Marker {
	return &Marker{Path: slices.Collect(shape.PathElements(markerTolerance))}
}
