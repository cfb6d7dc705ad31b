package math

import (
	"math"
	"testing"
)

func TestIdentity(t *testing.T) {
	m := Identity()
	if m[0] != 1 || m[5] != 1 || m[10] != 1 || m[15] != 1 {
		t.Error("Identity diagonal should be 1")
	}
	if m[1] != 0 || m[4] != 0 {
		t.Error("Identity off-diagonal should be 0")
	}
}

func TestMulIdentity(t *testing.T) {
	m := Translate(1, 2, 3)
	id := Identity()
	result := m.Mul(id)

	for i := 0; i < 16; i++ {
		if result[i] != m[i] {
			t.Errorf("M * I should equal M, element %d: got %f, want %f", i, result[i], m[i])
		}
	}
}

func TestTranslate(t *testing.T) {
	m := Translate(5, 10, 15)

	// Translation lives in column 4 (indices 12, 13, 14)
	if m[12] != 5 || m[13] != 10 || m[14] != 15 {
		t.Errorf("Translate: got (%f, %f, %f), want (5, 10, 15)", m[12], m[13], m[14])
	}
}

func TestTransformPoint(t *testing.T) {
	m := Translate(10, 20, 30)
	p := [3]float32{1, 2, 3}
	result := m.TransformPoint(p)

	expected := [3]float32{11, 22, 33}
	if result != expected {
		t.Errorf("TransformPoint: got %v, want %v", result, expected)
	}
}

func TestTransformPointScale(t *testing.T) {
	m := Scale(2, 2, 2)
	p := [3]float32{1, 2, 3}
	result := m.TransformPoint(p)

	expected := [3]float32{2, 4, 6}
	if result != expected {
		t.Errorf("TransformPoint with scale: got %v, want %v", result, expected)
	}
}

func TestLookAtOrigin(t *testing.T) {
	// Camera at +Z looking at the origin: the origin should land in
	// front of the camera (negative view-space z).
	view := LookAt(Vec3{0, 0, 5}, Vec3{0, 0, 0}, Vec3{0, 1, 0})
	p := view.TransformPoint([3]float32{0, 0, 0})

	if p[2] >= 0 {
		t.Errorf("origin should be in front of camera, got view-space z %f", p[2])
	}
	if math.Abs(float64(p[0])) > 1e-5 || math.Abs(float64(p[1])) > 1e-5 {
		t.Errorf("origin should be centered, got (%f, %f)", p[0], p[1])
	}
}

func TestPerspectiveDepthRange(t *testing.T) {
	proj := Perspective(float32(math.Pi/4), 1.0, 0.1, 100.0)

	// A point on the near plane maps to NDC z = -1.
	near := proj.TransformPoint([3]float32{0, 0, -0.1})
	if math.Abs(float64(near[2]+1)) > 1e-4 {
		t.Errorf("near plane should map to -1, got %f", near[2])
	}

	// A point on the far plane maps to NDC z = +1.
	far := proj.TransformPoint([3]float32{0, 0, -100.0})
	if math.Abs(float64(far[2]-1)) > 1e-4 {
		t.Errorf("far plane should map to +1, got %f", far[2])
	}
}

func TestPerspectiveFieldOfView(t *testing.T) {
	// The fov argument is radians: element [5] is 1/tan(fovY/2), so the
	// angle must round-trip through the matrix.
	fov := math.Pi / 4
	proj := Perspective(float32(fov), 1.0, 0.1, 100.0)

	got := 2 * math.Atan(1/float64(proj[5]))
	if math.Abs(got-fov) > 1e-5 {
		t.Errorf("expected fov %f rad, matrix encodes %f rad", fov, got)
	}

	// A degree value on a radian API opens the frustum to a different
	// angle entirely.
	wrong := Perspective(45, 1.0, 0.1, 100.0)
	gotWrong := 2 * math.Atan(1/float64(wrong[5]))
	if math.Abs(gotWrong-fov) < 1e-2 {
		t.Error("Perspective(45) should not produce a 45-degree frustum")
	}
}

func TestMulVec4(t *testing.T) {
	m := Translate(1, 2, 3)
	v := m.MulVec4(Vec4{0, 0, 0, 1})

	if v[0] != 1 || v[1] != 2 || v[2] != 3 || v[3] != 1 {
		t.Errorf("MulVec4: got %v, want (1, 2, 3, 1)", v)
	}
}
