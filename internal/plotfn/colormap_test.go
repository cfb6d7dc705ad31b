package plotfn

import (
	"math"
	"testing"
)

func TestLinearColormapEndpoints(t *testing.T) {
	r, g, b := Viridis.At(0)
	if r != 68 || g != 1 || b != 84 {
		t.Errorf("expected first viridis stop (68,1,84), got (%f,%f,%f)", r, g, b)
	}

	r, g, b = Viridis.At(1)
	if r != 253 || g != 231 || b != 37 {
		t.Errorf("expected last viridis stop (253,231,37), got (%f,%f,%f)", r, g, b)
	}

	// Out-of-range values clamp to the endpoints.
	r1, g1, b1 := Viridis.At(-0.5)
	r2, g2, b2 := Viridis.At(0)
	if r1 != r2 || g1 != g2 || b1 != b2 {
		t.Error("expected t < 0 to clamp to first stop")
	}
}

func TestLinearColormapInterpolation(t *testing.T) {
	cm := LinearColormap{stops: [][3]float64{{0, 0, 0}, {100, 200, 50}}}

	r, g, b := cm.At(0.5)
	if r != 50 || g != 100 || b != 25 {
		t.Errorf("expected midpoint (50,100,25), got (%f,%f,%f)", r, g, b)
	}
}

func TestLinearColormapNaN(t *testing.T) {
	r, g, b := Grayscale.At(math.NaN())
	if r != 0 || g != 0 || b != 0 {
		t.Errorf("expected NaN to clamp to first stop, got (%f,%f,%f)", r, g, b)
	}
}

func TestColormapByName(t *testing.T) {
	for _, name := range ColormapNames() {
		cm, err := ColormapByName(name)
		if err != nil {
			t.Errorf("ColormapByName(%q) failed: %v", name, err)
			continue
		}
		if cm == nil {
			t.Errorf("ColormapByName(%q) returned nil", name)
		}
	}

	if _, err := ColormapByName("rainbow-unicorn"); err == nil {
		t.Error("expected error for unknown colormap name")
	}
}

func TestHeightColor(t *testing.T) {
	f := HeightColor(Grayscale, -1, 1, 200)

	// Height at zMin maps to black.
	r, g, b, a := f(0, 0, -1)
	if r != 0 || g != 0 || b != 0 {
		t.Errorf("expected black at z_min, got (%f,%f,%f)", r, g, b)
	}
	if a != 200 {
		t.Errorf("expected alpha 200, got %f", a)
	}

	// Height at zMax maps to white.
	r, g, b, _ = f(0, 0, 1)
	if r != 255 || g != 255 || b != 255 {
		t.Errorf("expected white at z_max, got (%f,%f,%f)", r, g, b)
	}

	// Midpoint maps to mid gray.
	r, _, _, _ = f(0, 0, 0)
	if r != 127.5 {
		t.Errorf("expected mid gray 127.5 at center, got %f", r)
	}
}

func TestHeightColorDegenerateRange(t *testing.T) {
	f := HeightColor(Grayscale, 2, 2, 255)

	// A zero-span range pins everything to the first stop.
	r, g, b, _ := f(0, 0, 5)
	if r != 0 || g != 0 || b != 0 {
		t.Errorf("expected first stop for degenerate range, got (%f,%f,%f)", r, g, b)
	}
}
