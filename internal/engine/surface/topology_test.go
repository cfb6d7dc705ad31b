package surface

import "testing"

func TestGenerateIndices_Length(t *testing.T) {
	cases := []struct {
		uCount, vCount int
	}{
		{2, 2},
		{3, 3},
		{4, 7},
		{10, 10},
		{20, 10},
	}

	for _, tc := range cases {
		indices := GenerateIndices(tc.uCount, tc.vCount)
		want := (tc.uCount - 1) * (tc.vCount - 1) * 6
		if len(indices) != want {
			t.Errorf("%dx%d: expected %d indices, got %d", tc.uCount, tc.vCount, want, len(indices))
		}

		limit := uint32(tc.uCount * tc.vCount)
		for _, idx := range indices {
			if idx >= limit {
				t.Fatalf("%dx%d: index %d out of range [0, %d)", tc.uCount, tc.vCount, idx, limit)
			}
		}
	}
}

func TestGenerateIndices_Winding(t *testing.T) {
	// Single quad of a 2x2 grid: i0=0, i1=1, i2=2, i3=3.
	indices := GenerateIndices(2, 2)

	want := []uint32{0, 2, 1, 1, 2, 3}
	if len(indices) != len(want) {
		t.Fatalf("expected %d indices, got %d", len(want), len(indices))
	}
	for i, idx := range want {
		if indices[i] != idx {
			t.Errorf("index %d: expected %d, got %d", i, idx, indices[i])
		}
	}
}

func TestGenerateIndices_SecondRowOffset(t *testing.T) {
	// 3x3 grid: the quad at (u=1, v=1) starts at i0 = 1*3+1 = 4.
	indices := GenerateIndices(3, 3)

	if len(indices) != 24 {
		t.Fatalf("expected 24 indices for 3x3, got %d", len(indices))
	}

	// Last quad occupies the final 6 entries.
	last := indices[18:]
	want := []uint32{4, 7, 5, 5, 7, 8}
	for i, idx := range want {
		if last[i] != idx {
			t.Errorf("last quad index %d: expected %d, got %d", i, idx, last[i])
		}
	}
}

func TestGenerateIndices_Degenerate(t *testing.T) {
	if got := GenerateIndices(1, 5); got != nil {
		t.Errorf("expected empty buffer for uCount=1, got %d indices", len(got))
	}
	if got := GenerateIndices(5, 1); got != nil {
		t.Errorf("expected empty buffer for vCount=1, got %d indices", len(got))
	}
	if got := GenerateIndices(0, 0); got != nil {
		t.Errorf("expected empty buffer for 0x0, got %d indices", len(got))
	}
}
