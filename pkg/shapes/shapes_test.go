package shapes

import (
	"math"
	"testing"

	"github.com/matzehuels/sketchy/pkg/geom"
)

const eps = 1e-9

func near(a, b geom.Point) bool {
	return math.Abs(a.X-b.X) < eps && math.Abs(a.Y-b.Y) < eps
}

func nearBox(a, b geom.AABB) bool {
	return near(a.Min, b.Min) && near(a.Max, b.Max)
}

func TestBounds(t *testing.T) {
	tests := []struct {
		name  string
		shape Shape
		want  geom.AABB
	}{
		{
			name:  "line",
			shape: Line{Start: geom.Pt(10, 5), End: geom.Pt(-2, 8)},
			want:  geom.AABB{Min: geom.Pt(-2, 5), Max: geom.Pt(10, 8)},
		},
		{
			name:  "unit square",
			shape: Rectangle{Transform: geom.Identity(), HalfExtents: geom.Pt(0.5, 0.5)},
			want:  geom.AABB{Min: geom.Pt(-0.5, -0.5), Max: geom.Pt(0.5, 0.5)},
		},
		{
			name:  "rotated square",
			shape: NewRectangle(geom.Pt(0, 0), geom.Pt(1, 1), math.Pi/4),
			want:  geom.AABB{Min: geom.Pt(-math.Sqrt2, -math.Sqrt2), Max: geom.Pt(math.Sqrt2, math.Sqrt2)},
		},
		{
			name:  "translated ellipse",
			shape: NewEllipse(geom.Pt(10, 20), geom.Pt(4, 2), 0),
			want:  geom.AABB{Min: geom.Pt(6, 18), Max: geom.Pt(14, 22)},
		},
		{
			name:  "quarter turned ellipse",
			shape: NewEllipse(geom.Pt(0, 0), geom.Pt(4, 2), math.Pi/2),
			want:  geom.AABB{Min: geom.Pt(-2, -4), Max: geom.Pt(2, 4)},
		},
		{
			name:  "quadratic apex",
			shape: QuadraticBezier{Start: geom.Pt(0, 0), Cp: geom.Pt(5, 10), End: geom.Pt(10, 0)},
			want:  geom.AABB{Min: geom.Pt(0, 0), Max: geom.Pt(10, 5)},
		},
		{
			name:  "cubic symmetric arch",
			shape: CubicBezier{Start: geom.Pt(0, 0), Cp1: geom.Pt(0, 4), Cp2: geom.Pt(10, 4), End: geom.Pt(10, 0)},
			want:  geom.AABB{Min: geom.Pt(0, 0), Max: geom.Pt(10, 3)},
		},
		{
			name:  "straight cubic",
			shape: CubicBezier{Start: geom.Pt(0, 0), Cp1: geom.Pt(1, 1), Cp2: geom.Pt(2, 2), End: geom.Pt(3, 3)},
			want:  geom.AABB{Min: geom.Pt(0, 0), Max: geom.Pt(3, 3)},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.shape.Bounds(); !nearBox(got, tt.want) {
				t.Errorf("Bounds() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCubicBounds_ContainSamples(t *testing.T) {
	c := CubicBezier{Start: geom.Pt(0, 0), Cp1: geom.Pt(-30, 80), Cp2: geom.Pt(120, -60), End: geom.Pt(40, 20)}
	b := c.Bounds().Loosened(eps)
	for i := 0; i <= 100; i++ {
		if p := c.Eval(float64(i) / 100); !b.Contains(p) {
			t.Fatalf("sample %v outside %v", p, b)
		}
	}
}

func TestRectangleFromCorners(t *testing.T) {
	r := RectangleFromCorners(geom.Pt(10, 40), geom.Pt(-10, 0))
	if !near(r.HalfExtents, geom.Pt(10, 20)) {
		t.Errorf("HalfExtents = %v, want (10, 20)", r.HalfExtents)
	}
	want := geom.AABB{Min: geom.Pt(-10, 0), Max: geom.Pt(10, 40)}
	if got := r.Bounds(); !nearBox(got, want) {
		t.Errorf("Bounds() = %v, want %v", got, want)
	}
}

func TestEllipseFromFociAndPoint(t *testing.T) {
	tests := []struct {
		name      string
		f0, f1, p geom.Point
		radii     geom.Point
		center    geom.Point
	}{
		{"horizontal", geom.Pt(-3, 0), geom.Pt(3, 0), geom.Pt(0, 4), geom.Pt(5, 4), geom.Pt(0, 0)},
		{"circle", geom.Pt(2, 2), geom.Pt(2, 2), geom.Pt(5, 2), geom.Pt(3, 3), geom.Pt(2, 2)},
		{"point on segment", geom.Pt(0, 0), geom.Pt(4, 0), geom.Pt(2, 0), geom.Pt(2, 0), geom.Pt(2, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := EllipseFromFociAndPoint(tt.f0, tt.f1, tt.p)
			if !near(e.Radii, tt.radii) {
				t.Errorf("Radii = %v, want %v", e.Radii, tt.radii)
			}
			if !near(e.Transform.Offset(), tt.center) {
				t.Errorf("center = %v, want %v", e.Transform.Offset(), tt.center)
			}
		})
	}
}

func TestRectangleOutline(t *testing.T) {
	r := NewRectangle(geom.Pt(5, 5), geom.Pt(2, 1), 0)
	want := [4]geom.Point{geom.Pt(3, 4), geom.Pt(7, 4), geom.Pt(7, 6), geom.Pt(3, 6)}
	for i, p := range r.Outline() {
		if !near(p, want[i]) {
			t.Errorf("corner %d = %v, want %v", i, p, want[i])
		}
	}
}
