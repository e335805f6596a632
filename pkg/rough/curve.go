package rough

import (
	"math"

	"github.com/matzehuels/sketchy/pkg/bezpath"
	"github.com/matzehuels/sketchy/pkg/geom"
)

const (
	minCurveChords = 3
	maxCurveChords = 96
	// overlayCurveOffset widens the control point jitter of the second pass.
	overlayCurveOffset = 0.3
)

// QuadraticBezier returns a sketchy rendition of the quadratic Bézier
// start, cp, end. Each pass jitters the control point and the end point,
// then draws the curve as a chain of rough chords.
func QuadraticBezier(start, cp, end geom.Point, o *Options, rng *RNG) bezpath.Path {
	return curve([]geom.Point{start, cp, end}, o, rng)
}

// CubicBezier is QuadraticBezier for cubic curves.
func CubicBezier(start, cp1, cp2, end geom.Point, o *Options, rng *RNG) bezpath.Path {
	return curve([]geom.Point{start, cp1, cp2, end}, o, rng)
}

// curve roughens a Bézier given by its control polygon (3 or 4 points).
func curve(ctrl []geom.Point, o *Options, rng *RNG) bezpath.Path {
	var hull float64
	for i := 1; i < len(ctrl); i++ {
		hull += ctrl[i-1].Dist(ctrl[i])
	}
	n := int(math.Ceil(o.CurveStepCount * math.Sqrt(hull/200)))
	n = max(minCurveChords, min(n, maxCurveChords))

	var p bezpath.Path
	q := make([]geom.Point, len(ctrl))
	last := len(ctrl) - 1
	for pass := 0; pass < o.passes(); pass++ {
		ro := o.MaxRandomnessOffset
		if pass > 0 {
			ro += overlayCurveOffset
		}
		ro = smallOffset(ro, hull)
		jitter := func(pt geom.Point) geom.Point {
			x := pt.X + rng.offsetOpt(ro, o, 1)
			y := pt.Y + rng.offsetOpt(ro, o, 1)
			return geom.Pt(x, y)
		}

		q[0] = ctrl[0]
		if pass > 0 && !o.PreserveVertices {
			q[0] = jitter(ctrl[0])
		}
		for i := 1; i < last; i++ {
			q[i] = jitter(ctrl[i])
		}
		q[last] = ctrl[last]
		if !o.PreserveVertices {
			q[last] = jitter(ctrl[last])
		}

		prev := q[0]
		p.MoveTo(prev)
		for k := 1; k <= n; k++ {
			next := evalBezier(q, float64(k)/float64(n))
			line(&p, prev, next, false, pass > 0, o, rng)
			prev = next
		}
	}
	return p
}

func evalBezier(q []geom.Point, t float64) geom.Point {
	if len(q) == 3 {
		return bezpath.QuadPoint(q[0], q[1], q[2], t)
	}
	return bezpath.CubicPoint(q[0], q[1], q[2], q[3], t)
}
