package gfx

import "honnef.co/go/color"

// premul32 converts a style color to premultiplied linear sRGB, the form
// the rasterization stage blends in.
func premul32(c *color.Color) [4]float32 {
	cc := c.Convert(color.LinearSRGB)
	r := cc.Values[0]
	g := cc.Values[1]
	b := cc.Values[2]
	a := cc.Values[3]

	return [4]float32{
		float32(r * a),
		float32(g * a),
		float32(b * a),
		float32(a),
	}
}
