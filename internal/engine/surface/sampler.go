package surface

import "math"

// SampleResult holds the output of one full sampling pass.
type SampleResult struct {
	// Positions stores 4 float32 per vertex: the sampled x, the sampled z,
	// the sampled y (the vertical axis occupies the second slot) and a
	// validity flag (1 when any sampled component was non-finite).
	Positions []float32

	// Per-axis scales built from the accumulated extents. Exposed so the
	// caller can label axes or fit a camera.
	XScale Scale
	YScale Scale
	ZScale Scale

	// Raw sampled extents, accumulated before rescaling.
	XExtent Extent
	YExtent Extent
	ZExtent Extent
}

// SamplePositions samples getPosition over a uCount x vCount grid in
// row-major order (v outer, u inner) and produces render-space positions.
//
// The pass works in two stages. Stage one evaluates the function at every
// vertex, replaces non-finite components with 0 before folding them into
// the per-axis extent, and stores the (possibly sanitized) values with the
// vertical axis swapped into the second slot. Stage two instantiates one
// Scale per axis from the accumulated extent and rewrites every valid
// vertex through it; invalid vertices keep their sanitized values.
//
// Folding sanitized zeros into the extent can pull the observed range
// toward zero even though the original sample was invalid. That matches
// the historical behavior; excludeInvalid opts out of it.
//
// Nil factories default to Identity. Callers must guard uCount, vCount >= 2
// since normalization divides by count-1.
func SamplePositions(getPosition PositionFunc, uCount, vCount int, xScale, yScale, zScale ScaleFactory, excludeInvalid bool) *SampleResult {
	if xScale == nil {
		xScale = Identity
	}
	if yScale == nil {
		yScale = Identity
	}
	if zScale == nil {
		zScale = Identity
	}

	res := &SampleResult{
		Positions: make([]float32, uCount*vCount*4),
		XExtent:   Extent{Min: math.Inf(1), Max: math.Inf(-1)},
		YExtent:   Extent{Min: math.Inf(1), Max: math.Inf(-1)},
		ZExtent:   Extent{Min: math.Inf(1), Max: math.Inf(-1)},
	}

	i := 0
	for vIndex := 0; vIndex < vCount; vIndex++ {
		v := float64(vIndex) / float64(vCount-1)
		for uIndex := 0; uIndex < uCount; uIndex++ {
			u := float64(uIndex) / float64(uCount-1)

			x, y, z := getPosition(u, v)

			var validity float32
			x, y, z, validity = sanitize(x, y, z)

			if validity == 0 || !excludeInvalid {
				res.XExtent.Fold(x)
				res.YExtent.Fold(y)
				res.ZExtent.Fold(z)
			}

			// Vertical axis goes into the second slot.
			res.Positions[i] = float32(x)
			res.Positions[i+1] = float32(z)
			res.Positions[i+2] = float32(y)
			res.Positions[i+3] = validity
			i += 4
		}
	}

	res.XScale = xScale(res.XExtent.Min, res.XExtent.Max)
	res.YScale = yScale(res.YExtent.Min, res.YExtent.Max)
	res.ZScale = zScale(res.ZExtent.Min, res.ZExtent.Max)

	// Second pass: rescale valid vertices in place.
	for i := 0; i < len(res.Positions); i += 4 {
		if res.Positions[i+3] != 0 {
			continue
		}
		res.Positions[i] = float32(res.XScale.Map(float64(res.Positions[i])))
		res.Positions[i+1] = float32(res.ZScale.Map(float64(res.Positions[i+1])))
		res.Positions[i+2] = float32(res.YScale.Map(float64(res.Positions[i+2])))
	}

	return res
}

// sanitize zeroes non-finite components, returning validity 1 when any
// component was replaced.
func sanitize(x, y, z float64) (sx, sy, sz float64, validity float32) {
	sx, sy, sz = x, y, z
	if !isFinite(sx) {
		sx = 0
		validity = 1
	}
	if !isFinite(sy) {
		sy = 0
		validity = 1
	}
	if !isFinite(sz) {
		sz = 0
		validity = 1
	}
	return sx, sy, sz, validity
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
