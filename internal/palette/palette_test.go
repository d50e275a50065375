package palette

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBrewLength(t *testing.T) {
	for _, n := range []int{1, 2, 3, 4, 7, 10, 36, 100} {
		colors := Brew(n)
		assert.Len(t, colors, n, "Brew(%d)", n)
	}
}

func TestBrewDegenerate(t *testing.T) {
	assert.Nil(t, Brew(0))
	assert.Nil(t, Brew(-3))
}

func TestBrewKnownColors(t *testing.T) {
	// Hue 25 with s=0.75, v=0.9 truncates to (229, 129, 57); the rest of the
	// n=3 wheel lands 120 degrees apart with the channels rotated.
	colors := Brew(3)
	require.Len(t, colors, 3)

	assert.Equal(t, Color{229, 129, 57}, colors[0])
	assert.Equal(t, Color{57, 229, 129}, colors[1])
	assert.Equal(t, Color{129, 57, 229}, colors[2])

	// The first hue never depends on n.
	assert.Equal(t, Color{229, 129, 57}, Brew(1)[0])
	assert.Equal(t, Color{229, 129, 57}, Brew(7)[0])
}

func TestBrewTwoColors(t *testing.T) {
	// Hue 205 sits mid-segment, so the second color is not a channel
	// rotation of the first: x = 0.675*(1-|3.4167 mod 2 - 1|) = 0.39375
	// puts green at 157.
	colors := Brew(2)
	require.Len(t, colors, 2)

	assert.Equal(t, Color{229, 129, 57}, colors[0])
	assert.Equal(t, Color{57, 157, 229}, colors[1])
	assert.Equal(t, "#399de5", colors[1].Hex())
}

func TestBrewDeterministic(t *testing.T) {
	assert.Equal(t, Brew(12), Brew(12))
}

func TestHex(t *testing.T) {
	tests := []struct {
		color Color
		want  string
	}{
		{Color{0, 0, 0}, "#000000"},
		{Color{255, 255, 255}, "#ffffff"},
		{Color{229, 129, 57}, "#e58139"},
		{Color{16, 1, 250}, "#1001fa"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.color.Hex())
	}
}

func TestHexAlpha(t *testing.T) {
	c := Color{255, 255, 255}
	got := c.HexAlpha(128)
	require.Len(t, got, 9)
	assert.Equal(t, "#ffffff80", got)

	assert.Equal(t, "#00000000", Color{0, 0, 0}.HexAlpha(0))
	assert.Equal(t, "#e58139ff", Color{229, 129, 57}.HexAlpha(255))
}
