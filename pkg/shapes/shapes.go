package shapes

import (
	"math"

	"github.com/matzehuels/sketchy/pkg/geom"
)

// Shape is implemented by the five primitive types of this package only.
type Shape interface {
	// Bounds returns the exact bounds of the shape in scene coordinates.
	Bounds() geom.AABB
	// Kind returns the short shape name used in scene files.
	Kind() string
	shape()
}

// Line is a straight segment.
type Line struct {
	Start, End geom.Point
}

// Rectangle is an axis-aligned box around the origin mapped by Transform.
type Rectangle struct {
	Transform   geom.Affine
	HalfExtents geom.Point
}

// Ellipse is an axis-aligned ellipse around the origin mapped by Transform.
type Ellipse struct {
	Transform geom.Affine
	Radii     geom.Point
}

// QuadraticBezier is a quadratic Bézier curve.
type QuadraticBezier struct {
	Start, Cp, End geom.Point
}

// CubicBezier is a cubic Bézier curve.
type CubicBezier struct {
	Start, Cp1, Cp2, End geom.Point
}

func (Line) shape()            {}
func (Rectangle) shape()       {}
func (Ellipse) shape()         {}
func (QuadraticBezier) shape() {}
func (CubicBezier) shape()     {}

func (Line) Kind() string            { return "line" }
func (Rectangle) Kind() string       { return "rectangle" }
func (Ellipse) Kind() string         { return "ellipse" }
func (QuadraticBezier) Kind() string { return "quadbez" }
func (CubicBezier) Kind() string     { return "cubbez" }

// NewRectangle returns a rectangle centered at center, rotated by angle
// radians.
func NewRectangle(center, halfExtents geom.Point, angle float64) Rectangle {
	return Rectangle{
		Transform:   placement(center, angle),
		HalfExtents: halfExtents.Abs(),
	}
}

// RectangleFromCorners returns the axis-aligned rectangle spanned by a and b.
func RectangleFromCorners(a, b geom.Point) Rectangle {
	return Rectangle{
		Transform:   geom.Translate(a.Lerp(b, 0.5)),
		HalfExtents: b.Sub(a).Abs().Mul(0.5),
	}
}

// NewEllipse returns an ellipse centered at center, rotated by angle radians.
func NewEllipse(center, radii geom.Point, angle float64) Ellipse {
	return Ellipse{
		Transform: placement(center, angle),
		Radii:     radii.Abs(),
	}
}

// EllipseFromFociAndPoint returns the ellipse with foci f0 and f1 passing
// through p. Coincident foci give a circle around them.
func EllipseFromFociAndPoint(f0, f1, p geom.Point) Ellipse {
	a := (p.Dist(f0) + p.Dist(f1)) / 2
	c := f0.Dist(f1) / 2
	b := math.Sqrt(math.Max(0, a*a-c*c))
	d := f1.Sub(f0)
	return NewEllipse(f0.Lerp(f1, 0.5), geom.Pt(a, b), math.Atan2(d.Y, d.X))
}

func placement(center geom.Point, angle float64) geom.Affine {
	if angle == 0 {
		return geom.Translate(center)
	}
	return geom.Translate(center).Mul(geom.Rotate(angle))
}

// Bounds returns the box spanned by the two end points.
func (l Line) Bounds() geom.AABB {
	return geom.NewAABB(l.Start, l.End)
}

// Bounds returns the box around the transformed corners.
func (r Rectangle) Bounds() geom.AABB {
	return r.Transform.TransformAABB(geom.FromHalfExtents(geom.Point{}, r.HalfExtents))
}

// Outline returns the four corners in scene coordinates, counter-clockwise
// in local coordinates starting at the top left.
func (r Rectangle) Outline() [4]geom.Point {
	he := r.HalfExtents
	return [4]geom.Point{
		r.Transform.Apply(geom.Pt(-he.X, -he.Y)),
		r.Transform.Apply(geom.Pt(he.X, -he.Y)),
		r.Transform.Apply(geom.Pt(he.X, he.Y)),
		r.Transform.Apply(geom.Pt(-he.X, he.Y)),
	}
}

// Bounds is exact for any affine transform: the extent along x of the mapped
// ellipse is the length of the first row of the linear part scaled by the
// radii, and likewise for y.
func (e Ellipse) Bounds() geom.AABB {
	t := e.Transform
	hx := math.Hypot(t[0]*e.Radii.X, t[1]*e.Radii.Y)
	hy := math.Hypot(t[3]*e.Radii.X, t[4]*e.Radii.Y)
	return geom.FromHalfExtents(t.Offset(), geom.Pt(hx, hy))
}

// Bounds is exact: it covers the end points and the interior extrema.
func (q QuadraticBezier) Bounds() geom.AABB {
	b := geom.NewAABB(q.Start, q.End)
	for _, t := range quadExtrema(q.Start, q.Cp, q.End) {
		b = b.Extend(q.Eval(t))
	}
	return b
}

// Eval returns the point at parameter t in [0, 1].
func (q QuadraticBezier) Eval(t float64) geom.Point {
	mt := 1 - t
	return q.Start.Mul(mt * mt).Add(q.Cp.Mul(2 * mt * t)).Add(q.End.Mul(t * t))
}

// Bounds is exact: it covers the end points and the interior extrema.
func (c CubicBezier) Bounds() geom.AABB {
	b := geom.NewAABB(c.Start, c.End)
	for _, t := range cubicExtrema(c.Start, c.Cp1, c.Cp2, c.End) {
		b = b.Extend(c.Eval(t))
	}
	return b
}

// Eval returns the point at parameter t in [0, 1].
func (c CubicBezier) Eval(t float64) geom.Point {
	mt := 1 - t
	return c.Start.Mul(mt * mt * mt).
		Add(c.Cp1.Mul(3 * mt * mt * t)).
		Add(c.Cp2.Mul(3 * mt * t * t)).
		Add(c.End.Mul(t * t * t))
}
