package gfx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"honnef.co/go/curve"
)

func TestMarkerShape(t *testing.T) {
	m := MarkerShape(curve.Rect{X1: 1, Y1: 1})
	require.NotNil(t, m)
	assert.NotEmpty(t, m.Path)
	assert.False(t, m.ScaleLine)
}
