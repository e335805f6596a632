package geom

import "math"

// AABB is an axis-aligned bounding box containing the points (X, Y) where
// Min.X <= X <= Max.X and Min.Y <= Y <= Max.Y.
type AABB struct {
	Min, Max Point
}

// NewAABB returns the box spanned by a and b, in any corner order.
func NewAABB(a, b Point) AABB {
	return AABB{
		Min: Point{X: math.Min(a.X, b.X), Y: math.Min(a.Y, b.Y)},
		Max: Point{X: math.Max(a.X, b.X), Y: math.Max(a.Y, b.Y)},
	}
}

// FromHalfExtents returns the box centered at c reaching he in each direction.
func FromHalfExtents(c, he Point) AABB {
	he = he.Abs()
	return AABB{Min: c.Sub(he), Max: c.Add(he)}
}

// FromPoints returns the smallest box containing every point in pts.
// It returns the zero box for an empty slice.
func FromPoints(pts ...Point) AABB {
	if len(pts) == 0 {
		return AABB{}
	}
	b := AABB{Min: pts[0], Max: pts[0]}
	for _, p := range pts[1:] {
		b = b.Extend(p)
	}
	return b
}

// Extend returns the smallest box containing b and p.
func (b AABB) Extend(p Point) AABB {
	return AABB{
		Min: Point{X: math.Min(b.Min.X, p.X), Y: math.Min(b.Min.Y, p.Y)},
		Max: Point{X: math.Max(b.Max.X, p.X), Y: math.Max(b.Max.Y, p.Y)},
	}
}

// Union returns the smallest box containing b and o.
func (b AABB) Union(o AABB) AABB {
	return b.Extend(o.Min).Extend(o.Max)
}

// Loosened grows b by m on every side.
func (b AABB) Loosened(m float64) AABB {
	d := Point{X: m, Y: m}
	return AABB{Min: b.Min.Sub(d), Max: b.Max.Add(d)}
}

// Contains reports whether p lies inside b, edges included.
func (b AABB) Contains(p Point) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X && p.Y >= b.Min.Y && p.Y <= b.Max.Y
}

// Size returns the width and height of b.
func (b AABB) Size() Point {
	return b.Max.Sub(b.Min)
}

// Center returns the midpoint of b.
func (b AABB) Center() Point {
	return b.Min.Lerp(b.Max, 0.5)
}
