package threed

import (
	"cogentcore.org/core/math32"
)

// translate3 builds a pure translation matrix (column-major, translation
// in elements 12..14).
func translate3(x, y, z float32) *math32.Matrix4 {
	m := math32.Identity4()
	m[12] = x
	m[13] = y
	m[14] = z
	return m
}

func scale3(s float32) *math32.Matrix4 {
	m := math32.Identity4()
	m[0] = s
	m[5] = s
	m[10] = s
	return m
}
