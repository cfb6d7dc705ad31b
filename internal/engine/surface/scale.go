// Package surface turns a parametric function z = f(u,v), sampled on a
// regular grid, into triangulated GPU-ready attribute buffers: positions,
// vertex colors and picking colors.
package surface

// PositionFunc samples the surface at normalized grid coordinates
// u,v in [0,1]. Returned components may be non-finite; the sampler
// sanitizes them (see SamplePositions).
type PositionFunc func(u, v float64) (x, y, z float64)

// ColorFunc derives a vertex color from a world-space position.
// Components are clamped to [0,255]. A NaN alpha means opaque.
type ColorFunc func(x, y, z float64) (r, g, b, a float64)

// Scale maps a sampled value to render space.
type Scale interface {
	Map(v float64) float64
}

// ScaleFactory builds a Scale for one axis from the observed value range.
// The sampler invokes it once per axis after the sampling pass.
type ScaleFactory func(min, max float64) Scale

// ScaleFunc adapts a plain function to the Scale interface.
type ScaleFunc func(v float64) float64

// Map implements Scale.
func (f ScaleFunc) Map(v float64) float64 { return f(v) }

// Identity is a ScaleFactory that ignores the observed range and maps
// every value to itself. It is the default when the caller supplies no
// factory for an axis.
func Identity(min, max float64) Scale {
	return ScaleFunc(func(v float64) float64 { return v })
}

// Linear returns a ScaleFactory that normalizes the observed [min,max]
// range onto [outMin,outMax]. A degenerate range maps everything to outMin.
func Linear(outMin, outMax float64) ScaleFactory {
	return func(min, max float64) Scale {
		span := max - min
		if span == 0 {
			return ScaleFunc(func(v float64) float64 { return outMin })
		}
		k := (outMax - outMin) / span
		return ScaleFunc(func(v float64) float64 {
			return outMin + (v-min)*k
		})
	}
}

// Extent is the observed (min,max) range of sampled values along one axis.
type Extent struct {
	Min float64
	Max float64
}

// Fold widens the extent to include v.
func (e *Extent) Fold(v float64) {
	if v < e.Min {
		e.Min = v
	}
	if v > e.Max {
		e.Max = v
	}
}
