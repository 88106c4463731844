// Package gfx holds the appearance state referenced by fragments: line
// and surface styles and shared point-marker outlines. The flattening
// core passes these through untouched; only the sorting/rasterizing
// consumer interprets them.
package gfx

import "honnef.co/go/color"

// LineStyle describes stroke appearance for line segments and marker
// edges. Styles are shared, immutable handles: many objects and all their
// fragments may reference one value.
type LineStyle struct {
	Color color.Color
	Width float32
	Hide  bool
}

// SurfaceStyle describes fill appearance for triangles and marker fills.
type SurfaceStyle struct {
	Color        color.Color
	Reflectivity float32
	Hide         bool
}

func (s *LineStyle) Premul() [4]float32 {
	return premul32(&s.Color)
}

func (s *SurfaceStyle) Premul() [4]float32 {
	return premul32(&s.Color)
}
