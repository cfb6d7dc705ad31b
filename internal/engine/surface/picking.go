package surface

import "math"

// Picking colors encode a vertex's grid coordinate into an RGB triple for
// GPU color-buffer picking: the mesh is rendered off screen with these
// colors as fragment output, the pixel under the cursor is read back and
// decoded into fractional grid coordinates, and the original position
// function can then be re-queried at those coordinates.
//
// The blue channel is a fixed sentinel: every encoded cell has b=1, the
// cleared background has b=0, so a hit is always distinguishable from
// empty space.

// PickCoord is a decoded pick location in fractional grid coordinates,
// each in [0,1] quantized to 255 levels.
type PickCoord struct {
	U float64
	V float64
}

// EncodePickingColor encodes linear vertex index i into an RGB picking
// color. The index decomposes as uIndex = i mod uCount,
// vIndex = (i - uIndex) / uCount, the same decomposition the topology
// builder uses. Callers must guard uCount, vCount >= 2.
func EncodePickingColor(i, uCount, vCount int) (r, g, b uint8) {
	uIndex := i % uCount
	vIndex := (i - uIndex) / uCount

	r = uint8(math.Round(float64(uIndex) / float64(uCount-1) * 255))
	g = uint8(math.Round(float64(vIndex) / float64(vCount-1) * 255))
	b = 1
	return r, g, b
}

// DecodePickingColor decodes a read-back pixel color. ok is false for the
// background sentinel (b == 0), meaning no grid cell was under the pixel.
func DecodePickingColor(r, g, b uint8) (coord PickCoord, ok bool) {
	if b == 0 {
		return PickCoord{}, false
	}
	return PickCoord{
		U: float64(r) / 255,
		V: float64(g) / 255,
	}, true
}

// BuildPickingColors fills the picking color buffer, 3 bytes per vertex,
// for a uCount x vCount grid.
func BuildPickingColors(uCount, vCount int) []uint8 {
	n := uCount * vCount
	colors := make([]uint8, n*3)
	for i := 0; i < n; i++ {
		r, g, b := EncodePickingColor(i, uCount, vCount)
		colors[i*3] = r
		colors[i*3+1] = g
		colors[i*3+2] = b
	}
	return colors
}
