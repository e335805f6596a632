package bezpath

import (
	"math"

	"github.com/matzehuels/sketchy/pkg/geom"
)

const (
	minCubicSteps = 4
	maxCubicSteps = 64
)

// Flatten converts p into polylines, one per sub-path. Cubic segments are
// subdivided so that no chord is longer than tol (in path units). Closed
// sub-paths end with a copy of their first point.
func (p Path) Flatten(tol float64) [][]geom.Point {
	if tol <= 0 {
		tol = 0.5
	}
	var (
		out  [][]geom.Point
		cur  []geom.Point
		pen  geom.Point
		head geom.Point
	)
	flush := func() {
		if len(cur) > 0 {
			out = append(out, cur)
		}
		cur = nil
	}
	for _, c := range p.cmds {
		switch c.Verb {
		case MoveTo:
			flush()
			pen, head = c.Pts[0], c.Pts[0]
			cur = append(cur, pen)
		case LineTo:
			if len(cur) == 0 {
				cur = append(cur, pen)
			}
			pen = c.Pts[0]
			cur = append(cur, pen)
		case CubicTo:
			if len(cur) == 0 {
				cur = append(cur, pen)
			}
			hull := pen.Dist(c.Pts[0]) + c.Pts[0].Dist(c.Pts[1]) + c.Pts[1].Dist(c.Pts[2])
			n := int(math.Ceil(hull / tol))
			n = max(minCubicSteps, min(n, maxCubicSteps))
			for i := 1; i <= n; i++ {
				cur = append(cur, CubicPoint(pen, c.Pts[0], c.Pts[1], c.Pts[2], float64(i)/float64(n)))
			}
			pen = c.Pts[2]
		case Close:
			if len(cur) > 0 {
				cur = append(cur, head)
			}
			pen = head
			flush()
		}
	}
	flush()
	return out
}

// CubicPoint evaluates the cubic Bézier p0,p1,p2,p3 at t.
func CubicPoint(p0, p1, p2, p3 geom.Point, t float64) geom.Point {
	mt := 1 - t
	a := mt * mt * mt
	b := 3 * mt * mt * t
	c := 3 * mt * t * t
	d := t * t * t
	return geom.Point{
		X: a*p0.X + b*p1.X + c*p2.X + d*p3.X,
		Y: a*p0.Y + b*p1.Y + c*p2.Y + d*p3.Y,
	}
}

// QuadPoint evaluates the quadratic Bézier p0,p1,p2 at t.
func QuadPoint(p0, p1, p2 geom.Point, t float64) geom.Point {
	mt := 1 - t
	a := mt * mt
	b := 2 * mt * t
	c := t * t
	return geom.Point{
		X: a*p0.X + b*p1.X + c*p2.X,
		Y: a*p0.Y + b*p1.Y + c*p2.Y,
	}
}
