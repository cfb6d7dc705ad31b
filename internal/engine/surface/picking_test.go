package surface

import (
	"math"
	"testing"
)

func TestPickingColor_RoundTrip(t *testing.T) {
	grids := []struct {
		uCount, vCount int
	}{
		{2, 2},
		{3, 3},
		{16, 9},
		{255, 255},
	}

	for _, g := range grids {
		for i := 0; i < g.uCount*g.vCount; i++ {
			r, gc, b := EncodePickingColor(i, g.uCount, g.vCount)
			coord, ok := DecodePickingColor(r, gc, b)
			if !ok {
				t.Fatalf("%dx%d vertex %d: decode reported no hit", g.uCount, g.vCount, i)
			}

			uIndex := i % g.uCount
			vIndex := (i - uIndex) / g.uCount

			gotU := int(math.Round(coord.U * float64(g.uCount-1)))
			gotV := int(math.Round(coord.V * float64(g.vCount-1)))
			if gotU != uIndex || gotV != vIndex {
				t.Fatalf("%dx%d vertex %d: expected (%d,%d), got (%d,%d)",
					g.uCount, g.vCount, i, uIndex, vIndex, gotU, gotV)
			}
		}
	}
}

func TestPickingColor_SentinelReserved(t *testing.T) {
	// encode always sets b=1, so b=0 can never collide with a real cell.
	for i := 0; i < 4*4; i++ {
		_, _, b := EncodePickingColor(i, 4, 4)
		if b != 1 {
			t.Errorf("vertex %d: expected b=1, got %d", i, b)
		}
	}
}

func TestDecodePickingColor_NoHit(t *testing.T) {
	for _, rg := range [][2]uint8{{0, 0}, {255, 255}, {17, 213}} {
		if _, ok := DecodePickingColor(rg[0], rg[1], 0); ok {
			t.Errorf("decode(%d,%d,0): expected no hit", rg[0], rg[1])
		}
	}
}

func TestBuildPickingColors(t *testing.T) {
	colors := BuildPickingColors(3, 2)
	if len(colors) != 3*2*3 {
		t.Fatalf("expected %d bytes, got %d", 3*2*3, len(colors))
	}

	// Vertex 2 is (uIndex=2, vIndex=0): r=255, g=0, b=1.
	if colors[6] != 255 || colors[7] != 0 || colors[8] != 1 {
		t.Errorf("vertex 2: expected (255,0,1), got (%d,%d,%d)", colors[6], colors[7], colors[8])
	}

	// Vertex 3 is (uIndex=0, vIndex=1): r=0, g=255, b=1.
	if colors[9] != 0 || colors[10] != 255 || colors[11] != 1 {
		t.Errorf("vertex 3: expected (0,255,1), got (%d,%d,%d)", colors[9], colors[10], colors[11])
	}
}
