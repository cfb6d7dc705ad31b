// Package picking implements GPU color-buffer picking for the surface
// mesh: the mesh is rendered off screen with per-vertex picking colors,
// and the pixel under the cursor is read back and decoded into grid
// coordinates.
package picking

import (
	"github.com/Faultbox/surfaceplot/internal/engine/framebuffer"
	"github.com/Faultbox/surfaceplot/internal/engine/surface"
)

// Result describes the surface point under the cursor.
type Result struct {
	U, V    float64 // fractional grid coordinates in [0,1]
	X, Y, Z float64 // surface position, resampled at (U,V)
}

// Picker owns the offscreen target the picking pass renders into.
type Picker struct {
	fb *framebuffer.Framebuffer
}

// New creates a picker with a framebuffer of the given pixel size.
func New(width, height int32) (*Picker, error) {
	fb, err := framebuffer.New(width, height)
	if err != nil {
		return nil, err
	}
	return &Picker{fb: fb}, nil
}

// Resize matches the picking buffer to the viewport size.
func (p *Picker) Resize(width, height int32) {
	p.fb.Resize(width, height)
}

// Begin binds the picking framebuffer and clears it to the background
// sentinel (all channels zero, so decoded pixels outside the mesh report
// no hit). The returned function restores the previous render target;
// render the picking pass between the two.
func (p *Picker) Begin() func() {
	restore := p.fb.BindWithViewport()
	p.fb.Clear(0, 0, 0, 0)
	return restore
}

// Pick reads the pixel at window coordinates (x, y from top-left),
// decodes it, and resamples the surface at the decoded grid coordinates.
// ok is false when the cursor was over the background.
func (p *Picker) Pick(x, y int32, getPosition surface.PositionFunc) (Result, bool) {
	pixel := p.fb.ReadPixel(x, y)

	coord, ok := surface.DecodePickingColor(pixel[0], pixel[1], pixel[2])
	if !ok {
		return Result{}, false
	}

	res := Result{U: coord.U, V: coord.V}
	if getPosition != nil {
		res.X, res.Y, res.Z = getPosition(coord.U, coord.V)
	}
	return res, true
}

// Destroy releases the offscreen target.
func (p *Picker) Destroy() {
	p.fb.Destroy()
}
