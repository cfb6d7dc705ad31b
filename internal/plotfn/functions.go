// Package plotfn provides a library of built-in surface functions and
// colormaps for the plotting pipeline.
package plotfn

import (
	"fmt"
	"math"
	"sort"

	"github.com/Faultbox/surfaceplot/internal/engine/surface"
)

// Domain describes the rectangular region a height field is sampled over.
// Normalized (u, v) coordinates in [0, 1] map linearly onto it.
type Domain struct {
	XMin, XMax float64
	YMin, YMax float64
}

// Map converts normalized grid coordinates to domain coordinates.
func (d Domain) Map(u, v float64) (x, y float64) {
	return d.XMin + u*(d.XMax-d.XMin), d.YMin + v*(d.YMax-d.YMin)
}

// HeightField wraps a z = f(x, y) function as a position accessor over
// the given domain.
func HeightField(f func(x, y float64) float64, d Domain) surface.PositionFunc {
	return func(u, v float64) (float64, float64, float64) {
		x, y := d.Map(u, v)
		return x, y, f(x, y)
	}
}

// Ripple is sin(r)/r around the origin. Undefined at r = 0, where it
// returns NaN; the sampler sanitizes that vertex.
func Ripple(x, y float64) float64 {
	r := math.Hypot(x, y)
	return math.Sin(3*r) / r
}

// Saddle is the hyperbolic paraboloid x^2 - y^2.
func Saddle(x, y float64) float64 {
	return x*x - y*y
}

// Waves is a product of sines along both axes.
func Waves(x, y float64) float64 {
	return math.Sin(x) * math.Cos(y)
}

// Peaks is a scaled-down version of MATLAB's peaks function, a mix of
// Gaussian bumps useful for exercising colormaps.
func Peaks(x, y float64) float64 {
	a := 3 * (1 - x) * (1 - x) * math.Exp(-x*x-(y+1)*(y+1))
	b := -10 * (x/5 - x*x*x - y*y*y*y*y) * math.Exp(-x*x-y*y)
	c := -math.Exp(-(x+1)*(x+1)-y*y) / 3
	return (a + b + c) / 8
}

// Torus is a parametric surface; the domain is ignored and (u, v) sweep
// the two angles directly.
func Torus(u, v float64) (float64, float64, float64) {
	const major, minor = 1.0, 0.35
	theta := u * 2 * math.Pi
	phi := v * 2 * math.Pi
	x := (major + minor*math.Cos(phi)) * math.Cos(theta)
	y := (major + minor*math.Cos(phi)) * math.Sin(theta)
	z := minor * math.Sin(phi)
	return x, y, z
}

// Sphere is a parametric unit sphere; u sweeps longitude and v latitude.
func Sphere(u, v float64) (float64, float64, float64) {
	theta := u * 2 * math.Pi
	phi := v * math.Pi
	x := math.Sin(phi) * math.Cos(theta)
	y := math.Sin(phi) * math.Sin(theta)
	z := math.Cos(phi)
	return x, y, z
}

var heightFields = map[string]func(x, y float64) float64{
	"ripple": Ripple,
	"saddle": Saddle,
	"waves":  Waves,
	"peaks":  Peaks,
}

var parametrics = map[string]surface.PositionFunc{
	"torus":  Torus,
	"sphere": Sphere,
}

// ByName returns the named surface function bound to the given domain.
// Parametric surfaces ignore the domain.
func ByName(name string, d Domain) (surface.PositionFunc, error) {
	if f, ok := heightFields[name]; ok {
		return HeightField(f, d), nil
	}
	if f, ok := parametrics[name]; ok {
		return f, nil
	}
	return nil, fmt.Errorf("unknown surface function %q", name)
}

// Names returns the available function names, sorted.
func Names() []string {
	names := make([]string, 0, len(heightFields)+len(parametrics))
	for name := range heightFields {
		names = append(names, name)
	}
	for name := range parametrics {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
