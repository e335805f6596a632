package compose

import (
	"github.com/matzehuels/sketchy/pkg/builders"
	"github.com/matzehuels/sketchy/pkg/geom"
	"github.com/matzehuels/sketchy/pkg/rough"
)

const indicatorMargin = PosIndicatorRadius + PosIndicatorOutlineWidth

// BuilderBounds returns a box containing everything DrawBuilder emits for b.
// States that preview a shape use that shape's bounds; states that only show
// handles use their known points.
func BuilderBounds(b builders.State, o *rough.Options) geom.AABB {
	handles := o.StrokeWidth + indicatorMargin
	switch b := b.(type) {
	case builders.FociEllipseFirst:
		return geom.FromHalfExtents(b.First, geom.Pt(handles, handles))
	case builders.QuadBezStart:
		return geom.FromHalfExtents(b.Start, geom.Pt(handles, handles))
	case builders.CubBezStart:
		return geom.FromHalfExtents(b.Start, geom.Pt(handles, handles))
	case builders.FociEllipseFoci:
		return geom.NewAABB(b.Foci[0], b.Foci[1]).Loosened(handles)
	case builders.QuadBezCp:
		return geom.NewAABB(b.Start, b.Cp).Loosened(handles)
	case builders.CubBezCp1:
		return geom.NewAABB(b.Start, b.Cp1).Loosened(handles)
	}
	s, ok := b.Shape()
	if !ok {
		return geom.FromPoints(b.Points()...).Loosened(handles)
	}
	return Bounds(s, o).Loosened(indicatorMargin)
}

// DrawBuilder renders the preview shape of b, if any, onto r and its handles
// onto ind.
func DrawBuilder(r Renderer, ind Indicators, b builders.State, o *rough.Options) {
	if s, ok := b.Shape(); ok {
		Draw(r, s, o)
	}
	switch b := b.(type) {
	case builders.Line:
		startCurrent(ind, b.Start, b.Current)
	case builders.Rectangle:
		startCurrent(ind, b.Start, b.Current)
	case builders.Ellipse:
		startCurrent(ind, b.Start, b.Current)

	case builders.FociEllipseFirst:
		ind.PosIndicator(PenDown, b.First)
	case builders.FociEllipseFoci:
		ind.PosIndicator(PenUp, b.Foci[0])
		ind.PosIndicator(PenUp, b.Foci[1])
	case builders.FociEllipseFociAndPoint:
		ind.VecIndicator(PenDown, b.Foci[0], b.Point)
		ind.VecIndicator(PenDown, b.Foci[1], b.Point)
		ind.PosIndicator(PenUp, b.Foci[0])
		ind.PosIndicator(PenUp, b.Foci[1])
		ind.PosIndicator(PenDown, b.Point)

	case builders.QuadBezStart:
		ind.PosIndicator(PenDown, b.Start)
	case builders.QuadBezCp:
		ind.VecIndicator(PenDown, b.Start, b.Cp)
		ind.PosIndicator(PenUp, b.Start)
		ind.PosIndicator(PenDown, b.Cp)
	case builders.QuadBezEnd:
		ind.VecIndicator(PenDown, b.Start, b.Cp)
		ind.PosIndicator(PenUp, b.Start)
		ind.PosIndicator(PenUp, b.Cp)
		ind.PosIndicator(PenDown, b.End)

	case builders.CubBezStart:
		ind.PosIndicator(PenDown, b.Start)
	case builders.CubBezCp1:
		ind.VecIndicator(PenDown, b.Start, b.Cp1)
		ind.PosIndicator(PenUp, b.Start)
		ind.PosIndicator(PenDown, b.Cp1)
	case builders.CubBezCp2:
		ind.VecIndicator(PenDown, b.Start, b.Cp1)
		ind.PosIndicator(PenUp, b.Start)
		ind.PosIndicator(PenUp, b.Cp1)
		ind.PosIndicator(PenDown, b.Cp2)
	case builders.CubBezEnd:
		ind.VecIndicator(PenDown, b.Start, b.Cp1)
		ind.VecIndicator(PenDown, b.Cp2, b.End)
		ind.PosIndicator(PenUp, b.Start)
		ind.PosIndicator(PenUp, b.Cp1)
		ind.PosIndicator(PenUp, b.Cp2)
		ind.PosIndicator(PenDown, b.End)
	}
}

func startCurrent(ind Indicators, start, current geom.Point) {
	ind.PosIndicator(PenUp, start)
	ind.PosIndicator(PenDown, current)
}
