package rough

import (
	"math"
	"slices"

	"github.com/matzehuels/sketchy/pkg/bezpath"
	"github.com/matzehuels/sketchy/pkg/geom"
)

const (
	minHachureGap   = 0.1
	maxHachureLines = 10000
	// spanEpsilon merges scanline intersections closer than this.
	spanEpsilon = 1e-9
)

// FillPath is the output of [FillPolygon].
type FillPath struct {
	Path bezpath.Path
	// Sketch is true when Path is a set of strokes to be drawn with the fill
	// weight, and false when Path is an area to be filled.
	Sketch bool
}

// FillPolygon fills the simple polygon given by vertices (convex or not)
// according to o.FillStyle. Fewer than three vertices yield an empty path.
func FillPolygon(vertices []geom.Point, o *Options, rng *RNG) FillPath {
	if len(vertices) < 3 {
		return FillPath{Sketch: o.FillStyle != FillSolid}
	}
	switch o.FillStyle {
	case FillSolid:
		return FillPath{Path: solidFill(vertices, o, rng)}
	case FillCrossHatch:
		p := hachure(vertices, o.HachureAngle, o, rng)
		p.Extend(hachure(vertices, o.HachureAngle+90, o, rng))
		return FillPath{Path: p, Sketch: true}
	default:
		return FillPath{Path: hachure(vertices, o.HachureAngle, o, rng), Sketch: true}
	}
}

func solidFill(vertices []geom.Point, o *Options, rng *RNG) bezpath.Path {
	var p bezpath.Path
	for i, v := range vertices {
		x := v.X + rng.offsetOpt(o.MaxRandomnessOffset, o, 1)
		y := v.Y + rng.offsetOpt(o.MaxRandomnessOffset, o, 1)
		if i == 0 {
			p.MoveTo(geom.Pt(x, y))
		} else {
			p.LineTo(geom.Pt(x, y))
		}
	}
	p.Close()
	return p
}

// hachure draws parallel fill strokes at angle degrees. The polygon is
// rotated so the strokes become horizontal scanlines, clipped there, and the
// resulting spans are rotated back.
func hachure(vertices []geom.Point, angle float64, o *Options, rng *RNG) bezpath.Path {
	rot := geom.Rotate((angle + 90) * math.Pi / 180)
	back := geom.Rotate(-(angle + 90) * math.Pi / 180)

	pts := make([]geom.Point, len(vertices))
	for i, v := range vertices {
		pts[i] = rot.Apply(v)
	}
	b := geom.FromPoints(pts...)

	gap := max(o.EffectiveHachureGap(), minHachureGap)
	if h := b.Max.Y - b.Min.Y; h/gap > maxHachureLines {
		gap = h / maxHachureLines
	}

	var p bezpath.Path
	for _, s := range scanSpans(pts, b.Min.Y, b.Max.Y, gap) {
		fillLine(&p, back.Apply(s[0]), back.Apply(s[1]), o, rng)
	}
	return p
}

// scanSpans intersects the polygon with horizontal lines from y0 up to y1
// every gap units and returns the interior spans, top to bottom and left to
// right. Edges count on the half-open range [ymin, ymax), so a line through
// a vertex where the boundary continues is hit once, and a line touching a
// local extremum is hit twice at the same x; such coincident pairs are
// dropped.
func scanSpans(pts []geom.Point, y0, y1, gap float64) [][2]geom.Point {
	var (
		spans [][2]geom.Point
		xs    []float64
	)
	for k := 0; ; k++ {
		y := y0 + float64(k)*gap
		if y > y1 {
			break
		}
		xs = xs[:0]
		for i := range pts {
			a, c := pts[i], pts[(i+1)%len(pts)]
			if a.Y == c.Y {
				continue
			}
			lo, hi := math.Min(a.Y, c.Y), math.Max(a.Y, c.Y)
			if y < lo || y >= hi {
				continue
			}
			xs = append(xs, a.X+(y-a.Y)*(c.X-a.X)/(c.Y-a.Y))
		}
		slices.Sort(xs)
		xs = dropCoincident(xs)
		for i := 0; i+1 < len(xs); i += 2 {
			if xs[i+1]-xs[i] <= spanEpsilon {
				continue
			}
			spans = append(spans, [2]geom.Point{geom.Pt(xs[i], y), geom.Pt(xs[i+1], y)})
		}
	}
	return spans
}

// dropCoincident removes pairs of sorted intersections that coincide.
func dropCoincident(xs []float64) []float64 {
	out := xs[:0]
	for i := 0; i < len(xs); i++ {
		if i+1 < len(xs) && xs[i+1]-xs[i] <= spanEpsilon {
			i++
			continue
		}
		out = append(out, xs[i])
	}
	return out
}
