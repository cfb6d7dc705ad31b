package surface

import "math"

// ComputeColors derives a 4-byte RGBA color per vertex by reading its
// position back from the positions buffer (4 float32 per vertex, vertical
// axis in the second slot) and passing the coordinates to getColor in
// original x,y,z order. Components are clamped to [0,255]; a NaN alpha
// becomes 255. Invalid vertices are colored like any other, from their
// sanitized positions.
func ComputeColors(getColor ColorFunc, positions []float32) []uint8 {
	vertexCount := len(positions) / 4
	colors := make([]uint8, vertexCount*4)

	for i := 0; i < vertexCount; i++ {
		// Undo the storage swap: the third slot is y, the second is z.
		x := float64(positions[i*4])
		y := float64(positions[i*4+2])
		z := float64(positions[i*4+1])

		r, g, b, a := getColor(x, y, z)

		colors[i*4] = clampByte(r)
		colors[i*4+1] = clampByte(g)
		colors[i*4+2] = clampByte(b)
		if math.IsNaN(a) {
			colors[i*4+3] = 255
		} else {
			colors[i*4+3] = clampByte(a)
		}
	}
	return colors
}

// clampByte clamps v to [0,255]. NaN maps to 0 so a conversion from NaN
// never reaches the uint8 cast.
func clampByte(v float64) uint8 {
	if math.IsNaN(v) || v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}
