package sink

import (
	"github.com/matzehuels/sketchy/pkg/bezpath"
	"github.com/matzehuels/sketchy/pkg/geom"
)

// kappa places cubic control points for a quarter circle.
const kappa = 0.5522847498

func circlePath(c geom.Point, r float64) bezpath.Path {
	k := r * kappa
	var p bezpath.Path
	p.MoveTo(geom.Pt(c.X+r, c.Y))
	p.CubicTo(geom.Pt(c.X+r, c.Y+k), geom.Pt(c.X+k, c.Y+r), geom.Pt(c.X, c.Y+r))
	p.CubicTo(geom.Pt(c.X-k, c.Y+r), geom.Pt(c.X-r, c.Y+k), geom.Pt(c.X-r, c.Y))
	p.CubicTo(geom.Pt(c.X-r, c.Y-k), geom.Pt(c.X-k, c.Y-r), geom.Pt(c.X, c.Y-r))
	p.CubicTo(geom.Pt(c.X+k, c.Y-r), geom.Pt(c.X+r, c.Y-k), geom.Pt(c.X+r, c.Y))
	p.Close()
	return p
}
