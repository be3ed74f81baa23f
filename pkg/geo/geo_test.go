package geo

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

const tolerance = 0.01

func approxEqual(a, b, tol float64) bool {
	return math.Abs(a-b) < tol
}

// --- Vector tests ---

func TestLerp(t *testing.T) {
	if !approxEqual(Lerp(0.08, 0.06, 0.5), 0.07, 1e-9) {
		t.Errorf("expected 0.07, got %f", Lerp(0.08, 0.06, 0.5))
	}
	mid := LerpVec(V(0, 0, 0), V(10, 10, 10), 0.5)
	if !approxEqual(mid.X(), 5, tolerance) || !approxEqual(mid.Z(), 5, tolerance) {
		t.Errorf("expected (5,5,5), got %v", mid)
	}
}

func TestDistance(t *testing.T) {
	if !approxEqual(Distance(V(0, 0, 0), V(2, 3, 6)), 7, tolerance) {
		t.Errorf("expected distance 7, got %f", Distance(V(0, 0, 0), V(2, 3, 6)))
	}
}

func TestIsFinite(t *testing.T) {
	if !IsFinite(V(1, 2, 3)) {
		t.Error("expected finite vector")
	}
	if IsFinite(V(1, math.NaN(), 3)) {
		t.Error("NaN component should not be finite")
	}
	if IsFinite(V(math.Inf(1), 0, 0)) {
		t.Error("Inf component should not be finite")
	}
}

func TestSphericalIsUnit(t *testing.T) {
	for _, tc := range [][2]float64{{0, 0}, {1, 1}, {math.Pi, math.Pi / 2}, {5, 3}} {
		v := Spherical(tc[0], tc[1])
		if !approxEqual(v.Len(), 1, 1e-9) {
			t.Errorf("Spherical(%v, %v) length = %f, want 1", tc[0], tc[1], v.Len())
		}
	}
	if v := Spherical(0, 0); !v.ApproxEqual(mgl64.Vec3{0, 0, 1}) {
		t.Errorf("phi=0 should point to +Z, got %v", v)
	}
}

// --- Box tests ---

func TestBoxMinMax(t *testing.T) {
	b := NewBox(V(1, 2, 3), V(1, 1, 2))
	if !b.Min().ApproxEqual(V(0, 1, 1)) || !b.Max().ApproxEqual(V(2, 3, 5)) {
		t.Errorf("unexpected corners: min=%v max=%v", b.Min(), b.Max())
	}
	if !approxEqual(b.Volume(), 16, tolerance) {
		t.Errorf("expected volume 16, got %f", b.Volume())
	}
	rt := BoxFromMinMax(b.Min(), b.Max())
	if !rt.Center.ApproxEqual(b.Center) || !rt.HalfExtents.ApproxEqual(b.HalfExtents) {
		t.Errorf("BoxFromMinMax round trip mismatch: %+v", rt)
	}
}

func TestBoxOverlaps(t *testing.T) {
	a := NewBox(V(0, 0, 0), V(1, 1, 1))

	tests := []struct {
		name string
		b    Box
		want bool
	}{
		{"same", NewBox(V(0, 0, 0), V(1, 1, 1)), true},
		{"partial", NewBox(V(1.5, 0.5, -0.5), V(1, 1, 1)), true},
		{"touching face", NewBox(V(2, 0, 0), V(1, 1, 1)), false},
		{"separated on y only", NewBox(V(0, 5, 0), V(1, 1, 1)), false},
		{"nested", NewBox(V(0.2, 0.2, 0.2), V(0.1, 0.1, 0.1)), true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := a.Overlaps(tc.b); got != tc.want {
				t.Errorf("Overlaps = %v, want %v", got, tc.want)
			}
			if got := tc.b.Overlaps(a); got != tc.want {
				t.Errorf("Overlaps not symmetric: %v", got)
			}
		})
	}
}

func TestBoxContains(t *testing.T) {
	outer := NewBox(V(0, 0, 0), V(5, 5, 5))
	inner := NewBox(V(1, 1, 1), V(1, 1, 1))
	if !outer.Contains(inner) {
		t.Error("outer should contain inner")
	}
	if inner.Contains(outer) {
		t.Error("inner should not contain outer")
	}
	if !outer.ContainsPoint(V(5, -5, 0)) {
		t.Error("boundary point should be contained")
	}
	if outer.ContainsPoint(V(5.1, 0, 0)) {
		t.Error("outside point should not be contained")
	}
}

func TestBoxUnion(t *testing.T) {
	u := NewBox(V(0, 0, 0), V(1, 1, 1)).Union(NewBox(V(4, 0, 0), V(1, 1, 1)))
	if !u.Min().ApproxEqual(V(-1, -1, -1)) || !u.Max().ApproxEqual(V(5, 1, 1)) {
		t.Errorf("unexpected union bounds: %v %v", u.Min(), u.Max())
	}
}

// --- Sphere tests ---

func TestSphereContainsPoint(t *testing.T) {
	s := Sphere{Center: V(1, 0, 0), Radius: 2}
	if !s.ContainsPoint(V(3, 0, 0)) {
		t.Error("surface point should be contained")
	}
	if s.ContainsPoint(V(3.01, 0, 0)) {
		t.Error("outside point should not be contained")
	}
}

func TestSphereBoundingBox(t *testing.T) {
	s := Sphere{Center: V(0, 1, 0), Radius: 3}
	b := s.BoundingBox()
	if !b.Min().ApproxEqual(V(-3, -2, -3)) || !b.Max().ApproxEqual(V(3, 4, 3)) {
		t.Errorf("unexpected bounding box: %v %v", b.Min(), b.Max())
	}
	if !approxEqual(s.Volume(), 36*math.Pi, tolerance) {
		t.Errorf("expected volume 36π, got %f", s.Volume())
	}
}
