package plotfn

import (
	"fmt"
	"sort"

	"github.com/Faultbox/surfaceplot/internal/engine/surface"
)

// Colormap maps a normalized value t in [0, 1] to an RGB color, each
// channel in [0, 255].
type Colormap interface {
	At(t float64) (r, g, b float64)
}

// LinearColormap interpolates linearly between a sequence of color stops.
type LinearColormap struct {
	stops [][3]float64
}

// At returns the interpolated color at position t, clamping outside [0, 1].
func (c LinearColormap) At(t float64) (float64, float64, float64) {
	if t <= 0 || t != t {
		s := c.stops[0]
		return s[0], s[1], s[2]
	}
	if t >= 1 {
		s := c.stops[len(c.stops)-1]
		return s[0], s[1], s[2]
	}

	idx := t * float64(len(c.stops)-1)
	lower := int(idx)
	upper := lower + 1
	if upper >= len(c.stops) {
		upper = len(c.stops) - 1
	}

	frac := idx - float64(lower)
	lo, hi := c.stops[lower], c.stops[upper]
	return lo[0] + frac*(hi[0]-lo[0]),
		lo[1] + frac*(hi[1]-lo[1]),
		lo[2] + frac*(hi[2]-lo[2])
}

// Viridis colormap (matplotlib viridis)
var Viridis = LinearColormap{
	stops: [][3]float64{
		{68, 1, 84},
		{72, 35, 116},
		{64, 67, 135},
		{52, 94, 141},
		{41, 120, 142},
		{32, 144, 140},
		{34, 167, 132},
		{68, 190, 112},
		{121, 209, 81},
		{189, 222, 38},
		{253, 231, 37},
	},
}

// Plasma colormap
var Plasma = LinearColormap{
	stops: [][3]float64{
		{13, 8, 135},
		{75, 3, 161},
		{125, 3, 168},
		{168, 34, 150},
		{203, 70, 121},
		{229, 107, 93},
		{248, 148, 65},
		{253, 195, 40},
		{240, 249, 33},
	},
}

// Inferno colormap
var Inferno = LinearColormap{
	stops: [][3]float64{
		{0, 0, 4},
		{40, 11, 84},
		{101, 21, 110},
		{159, 42, 99},
		{212, 72, 66},
		{245, 125, 21},
		{250, 193, 39},
		{252, 255, 164},
	},
}

// Grayscale colormap
var Grayscale = LinearColormap{
	stops: [][3]float64{
		{0, 0, 0},
		{255, 255, 255},
	},
}

var colormaps = map[string]Colormap{
	"viridis":   Viridis,
	"plasma":    Plasma,
	"inferno":   Inferno,
	"grayscale": Grayscale,
}

// ColormapByName returns the named colormap.
func ColormapByName(name string) (Colormap, error) {
	cm, ok := colormaps[name]
	if !ok {
		return nil, fmt.Errorf("unknown colormap %q", name)
	}
	return cm, nil
}

// ColormapNames returns the available colormap names, sorted.
func ColormapNames() []string {
	names := make([]string, 0, len(colormaps))
	for name := range colormaps {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// HeightColor builds a color accessor that maps the vertical coordinate
// through the colormap. Heights at or below zMin take the first stop,
// heights at or above zMax the last.
func HeightColor(cm Colormap, zMin, zMax float64, alpha float64) surface.ColorFunc {
	span := zMax - zMin
	return func(x, y, z float64) (float64, float64, float64, float64) {
		t := 0.0
		if span != 0 {
			t = (z - zMin) / span
		}
		r, g, b := cm.At(t)
		return r, g, b, alpha
	}
}
