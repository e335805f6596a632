package geom

import (
	"math"

	"golang.org/x/image/math/f64"
)

// Affine is a 2x3 affine transform in the row-major layout of f64.Aff3:
//
//	x' = A[0]*x + A[1]*y + A[2]
//	y' = A[3]*x + A[4]*y + A[5]
type Affine f64.Aff3

// Identity returns the identity transform.
func Identity() Affine {
	return Affine{1, 0, 0, 0, 1, 0}
}

// Translate returns a translation by d.
func Translate(d Point) Affine {
	return Affine{1, 0, d.X, 0, 1, d.Y}
}

// Rotate returns a counter-clockwise rotation by rad radians around the origin.
func Rotate(rad float64) Affine {
	sin, cos := math.Sincos(rad)
	return Affine{cos, -sin, 0, sin, cos, 0}
}

// Scale returns a scaling by s.X and s.Y.
func Scale(s Point) Affine {
	return Affine{s.X, 0, 0, 0, s.Y, 0}
}

// Mul returns the transform that applies o first and then a.
func (a Affine) Mul(o Affine) Affine {
	return Affine{
		a[0]*o[0] + a[1]*o[3],
		a[0]*o[1] + a[1]*o[4],
		a[0]*o[2] + a[1]*o[5] + a[2],
		a[3]*o[0] + a[4]*o[3],
		a[3]*o[1] + a[4]*o[4],
		a[3]*o[2] + a[4]*o[5] + a[5],
	}
}

// Apply transforms p.
func (a Affine) Apply(p Point) Point {
	return Point{
		X: a[0]*p.X + a[1]*p.Y + a[2],
		Y: a[3]*p.X + a[4]*p.Y + a[5],
	}
}

// Offset returns the translation component of a.
func (a Affine) Offset() Point {
	return Point{X: a[2], Y: a[5]}
}

// Det returns the determinant of the linear part of a.
func (a Affine) Det() float64 {
	return a[0]*a[4] - a[1]*a[3]
}

// ScaleFactor returns the geometric mean scale of a, used to carry stroke
// widths through a transform.
func (a Affine) ScaleFactor() float64 {
	return math.Sqrt(math.Abs(a.Det()))
}

// Norm returns the largest factor by which a stretches any vector, the
// spectral norm of its linear part.
func (a Affine) Norm() float64 {
	f := a[0]*a[0] + a[1]*a[1] + a[3]*a[3] + a[4]*a[4]
	det := a.Det()
	return math.Sqrt((f + math.Sqrt(max(0, f*f-4*det*det))) / 2)
}

// IsIdentity reports whether a is exactly the identity transform.
func (a Affine) IsIdentity() bool {
	return a == Identity()
}

// TransformAABB returns the bounds of the four transformed corners of b.
func (a Affine) TransformAABB(b AABB) AABB {
	return FromPoints(
		a.Apply(b.Min),
		a.Apply(Point{X: b.Max.X, Y: b.Min.Y}),
		a.Apply(b.Max),
		a.Apply(Point{X: b.Min.X, Y: b.Max.Y}),
	)
}
