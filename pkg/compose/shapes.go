package compose

import (
	"math"

	"github.com/matzehuels/sketchy/pkg/bezpath"
	"github.com/matzehuels/sketchy/pkg/geom"
	"github.com/matzehuels/sketchy/pkg/rough"
	"github.com/matzehuels/sketchy/pkg/shapes"
)

// Bounds returns the exact bounds of s loosened by half the stroke width and
// the jitter margin for s, which is never less than [rough.RoughBoundsMargin].
func Bounds(s shapes.Shape, o *rough.Options) geom.AABB {
	return s.Bounds().Loosened(o.StrokeWidth*0.5 + max(rough.RoughBoundsMargin, jitterMargin(s, o)))
}

// jitterMargin bounds how far Draw strays from the exact geometry of s.
// Rectangles and ellipses are drawn in local coordinates, so their margin
// is stretched by the transform.
func jitterMargin(s shapes.Shape, o *rough.Options) float64 {
	switch s := s.(type) {
	case shapes.Line:
		return rough.LineMargin(s.Start.Dist(s.End), o)
	case shapes.Rectangle:
		he := s.HalfExtents
		return s.Transform.Norm() * rough.LineMargin(2*math.Hypot(he.X, he.Y), o)
	case shapes.Ellipse:
		return s.Transform.Norm() * rough.EllipseMargin(s.Radii.X, s.Radii.Y, o)
	case shapes.QuadraticBezier:
		return rough.CurveMargin([]geom.Point{s.Start, s.Cp, s.End}, o)
	case shapes.CubicBezier:
		return rough.CurveMargin([]geom.Point{s.Start, s.Cp1, s.Cp2, s.End}, o)
	}
	return 0
}

// Draw renders s onto r with the sketchy style o.
func Draw(r Renderer, s shapes.Shape, o *rough.Options) {
	switch s := s.(type) {
	case shapes.Line:
		drawLine(r, s, o)
	case shapes.Rectangle:
		WithTransform(r, s.Transform, func() { drawRectangle(r, s.HalfExtents, o) })
	case shapes.Ellipse:
		WithTransform(r, s.Transform, func() { drawEllipse(r, s.Radii, o) })
	case shapes.QuadraticBezier:
		stroke(r, rough.QuadraticBezier(s.Start, s.Cp, s.End, o, rough.NewRNG(o.Seed)), o)
	case shapes.CubicBezier:
		stroke(r, rough.CubicBezier(s.Start, s.Cp1, s.Cp2, s.End, o, rough.NewRNG(o.Seed)), o)
	}
}

func drawLine(r Renderer, l shapes.Line, o *rough.Options) {
	rng := rough.NewRNG(o.Seed)
	var p bezpath.Path
	if o.Multistroke() {
		p = rough.DoubleLine(l.Start, l.End, o, rng)
	} else {
		p = rough.Line(l.Start, l.End, true, false, o, rng)
	}
	stroke(r, p, o)
}

// drawRectangle draws the box around the local origin edge by edge.
func drawRectangle(r Renderer, he geom.Point, o *rough.Options) {
	rng := rough.NewRNG(o.Seed)
	corners := []geom.Point{
		geom.Pt(-he.X, -he.Y),
		geom.Pt(he.X, -he.Y),
		geom.Pt(he.X, he.Y),
		geom.Pt(-he.X, he.Y),
	}
	var outline bezpath.Path
	for i, a := range corners {
		b := corners[(i+1)%len(corners)]
		if o.Multistroke() {
			outline.Extend(rough.DoubleLine(a, b, o, rng))
		} else {
			outline.Extend(rough.Line(a, b, true, false, o, rng))
		}
	}
	fill(r, corners, o)
	stroke(r, outline, o)
}

func drawEllipse(r Renderer, radii geom.Point, o *rough.Options) {
	res := rough.Ellipse(geom.Point{}, radii.X, radii.Y, o, rough.NewRNG(o.Seed))
	fill(r, res.EstimatedPoints, o)
	stroke(r, res.Path, o)
}

func fill(r Renderer, vertices []geom.Point, o *rough.Options) {
	if o.FillColor == nil {
		return
	}
	fp := rough.FillPolygon(vertices, o, rough.NewRNG(o.Seed))
	r.Fill(fp, FillStyle{Color: *o.FillColor, Width: o.EffectiveFillWeight()})
}

func stroke(r Renderer, p bezpath.Path, o *rough.Options) {
	if o.StrokeColor == nil {
		return
	}
	r.Stroke(p, StrokeStyle{Color: *o.StrokeColor, Width: o.StrokeWidth})
}
