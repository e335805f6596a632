package rough

import (
	"math"

	"github.com/matzehuels/sketchy/pkg/bezpath"
	"github.com/matzehuels/sketchy/pkg/geom"
)

const (
	minEllipseSteps = 12
	maxEllipseSteps = 360
)

// EllipseResult is the output of [Ellipse].
type EllipseResult struct {
	// Path is the closed sketchy outline, one sub-path per pass.
	Path bezpath.Path
	// EstimatedPoints are the perturbed samples of the first pass, in order,
	// for use as the fill polygon.
	EstimatedPoints []geom.Point
}

// Ellipse returns a sketchy axis-aligned ellipse around center.
//
// The sample count grows with the larger radius and is clamped to
// [12, 360]. With zero roughness the ellipse is sampled four times denser
// and drawn in a single exact pass.
func Ellipse(center geom.Point, rx, ry float64, o *Options, rng *RNG) EllipseResult {
	rx, ry = math.Abs(rx), math.Abs(ry)
	inc := ellipseIncrement(rx, ry, o)

	fit := 1 - o.CurveFitting
	rx += rng.offsetOpt(rx*fit, o, 1)
	ry += rng.offsetOpt(ry*fit, o, 1)
	e := ellipseParams{center: center, rx: rx, ry: ry, inc: inc, size: max(rx, ry)}

	overlap := inc * rng.offset(0.1, rng.offset(0.4, 1, o, 1), o, 1)
	all, core := e.points(1, overlap, o, rng)
	res := EllipseResult{
		Path:            catmullRom(all, o),
		EstimatedPoints: core,
	}
	if o.Multistroke() && o.Roughness != 0 {
		all2, _ := e.points(1.5, 0, o, rng)
		res.Path.Extend(catmullRom(all2, o))
	}
	return res
}

// ellipseIncrement is the angular step between samples.
func ellipseIncrement(rx, ry float64, o *Options) float64 {
	psq := math.Sqrt(2 * math.Pi * max(rx, ry))
	steps := math.Ceil(max(o.CurveStepCount, o.CurveStepCount/math.Sqrt(200)*psq))
	steps = math.Max(minEllipseSteps, math.Min(steps, maxEllipseSteps))
	return 2 * math.Pi / steps
}

type ellipseParams struct {
	center geom.Point
	rx, ry float64
	inc    float64
	size   float64
}

func (e ellipseParams) at(angle, scale float64) geom.Point {
	return geom.Pt(
		e.center.X+scale*e.rx*math.Cos(angle),
		e.center.Y+scale*e.ry*math.Sin(angle),
	)
}

// points samples one pass. all carries the extra lead-in and closing points
// the curve fit needs; core holds the samples on the ellipse itself.
func (e ellipseParams) points(offset, overlap float64, o *Options, rng *RNG) (all, core []geom.Point) {
	if o.Roughness == 0 {
		inc := e.inc / 4
		n := int(math.Round(2 * math.Pi / inc))
		all = append(all, e.at(-inc, 1))
		for k := 0; k <= n; k++ {
			pt := e.at(float64(k)*inc, 1)
			core = append(core, pt)
			all = append(all, pt)
		}
		all = append(all, e.at(0, 1), e.at(inc, 1))
		return all, core
	}

	offset = smallOffset(offset, e.size)
	jittered := func(angle, scale float64) geom.Point {
		dx := rng.offsetOpt(offset, o, 1)
		dy := rng.offsetOpt(offset, o, 1)
		return e.at(angle, scale).Add(geom.Pt(dx, dy))
	}

	rad := rng.offsetOpt(0.5, o, 1) - math.Pi/2
	all = append(all, jittered(rad-e.inc, 0.9))
	for k := 0; float64(k)*e.inc < 2*math.Pi-0.01; k++ {
		pt := jittered(rad+float64(k)*e.inc, 1)
		core = append(core, pt)
		all = append(all, pt)
	}
	all = append(all,
		jittered(rad+2*math.Pi+overlap*0.5, 1),
		jittered(rad+overlap, 0.98),
		jittered(rad+overlap*0.5, 0.9),
	)
	return all, core
}

// catmullRom fits a cubic spline through pts, skipping the first and last
// point which only steer the tangents.
func catmullRom(pts []geom.Point, o *Options) bezpath.Path {
	var p bezpath.Path
	switch n := len(pts); {
	case n > 3:
		s := 1 - o.CurveTightness
		p.MoveTo(pts[1])
		for i := 1; i+2 < n; i++ {
			b1 := pts[i].Add(pts[i+1].Sub(pts[i-1]).Mul(s / 6))
			b2 := pts[i+1].Add(pts[i].Sub(pts[i+2]).Mul(s / 6))
			p.CubicTo(b1, b2, pts[i+1])
		}
	case n == 3:
		p.MoveTo(pts[1])
		p.CubicTo(pts[1], pts[2], pts[2])
	case n == 2:
		p.MoveTo(pts[0])
		p.LineTo(pts[1])
	}
	return p
}
