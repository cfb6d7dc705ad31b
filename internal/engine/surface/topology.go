package surface

// GenerateIndices builds the triangle index buffer for a uCount x vCount
// vertex grid. Each quad emits two triangles with winding (i0,i2,i1),
// (i1,i2,i3) so the front face points up in the render convention used by
// the rest of the pipeline. The result has (uCount-1)*(vCount-1)*6 entries;
// grids smaller than 2x2 produce an empty buffer.
func GenerateIndices(uCount, vCount int) []uint32 {
	if uCount < 2 || vCount < 2 {
		return nil
	}

	indices := make([]uint32, 0, (uCount-1)*(vCount-1)*6)
	for vIndex := 0; vIndex < vCount-1; vIndex++ {
		for uIndex := 0; uIndex < uCount-1; uIndex++ {
			i0 := uint32(vIndex*uCount + uIndex)
			i1 := i0 + 1
			i2 := i0 + uint32(uCount)
			i3 := i2 + 1

			indices = append(indices,
				i0, i2, i1,
				i1, i2, i3,
			)
		}
	}
	return indices
}
