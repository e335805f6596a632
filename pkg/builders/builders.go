package builders

import (
	"fmt"

	"github.com/matzehuels/sketchy/pkg/geom"
	"github.com/matzehuels/sketchy/pkg/shapes"
)

// State is implemented by every builder stage of this package.
type State interface {
	// Shape returns the primitive previewed by the state. ok is false for
	// stages that only show handles.
	Shape() (s shapes.Shape, ok bool)
	// Points returns the known points in input order.
	Points() []geom.Point
	// Kind returns the builder name used in scene files.
	Kind() string
	state()
}

// Line is an in-progress line from Start to the pointer.
type Line struct{ Start, Current geom.Point }

// Rectangle is an in-progress rectangle spanned by Start and the pointer.
type Rectangle struct{ Start, Current geom.Point }

// Ellipse is an in-progress ellipse centered at Start whose radii reach the
// pointer.
type Ellipse struct{ Start, Current geom.Point }

// FociEllipseFirst knows the first focus only.
type FociEllipseFirst struct{ First geom.Point }

// FociEllipseFoci knows both foci.
type FociEllipseFoci struct{ Foci [2]geom.Point }

// FociEllipseFociAndPoint knows both foci and a point on the ellipse.
type FociEllipseFociAndPoint struct {
	Foci  [2]geom.Point
	Point geom.Point
}

// QuadBezStart knows the start point.
type QuadBezStart struct{ Start geom.Point }
// QuadBezCp knows the start and control points.
type QuadBezCp struct{ Start, Cp geom.Point }
// QuadBezEnd knows every point of the quadratic curve.
type QuadBezEnd struct{ Start, Cp, End geom.Point }

// CubBezStart knows the start point.
type CubBezStart struct{ Start geom.Point }
// CubBezCp1 knows the start and first control points.
type CubBezCp1 struct{ Start, Cp1 geom.Point }
// CubBezCp2 knows the start and both control points.
type CubBezCp2 struct{ Start, Cp1, Cp2 geom.Point }
// CubBezEnd knows every point of the cubic curve.
type CubBezEnd struct{ Start, Cp1, Cp2, End geom.Point }

func (Line) state()                    {}
func (Rectangle) state()               {}
func (Ellipse) state()                 {}
func (FociEllipseFirst) state()        {}
func (FociEllipseFoci) state()         {}
func (FociEllipseFociAndPoint) state() {}
func (QuadBezStart) state()            {}
func (QuadBezCp) state()               {}
func (QuadBezEnd) state()              {}
func (CubBezStart) state()             {}
func (CubBezCp1) state()               {}
func (CubBezCp2) state()               {}
func (CubBezEnd) state()               {}

const (
	KindLine        = "line"
	KindRectangle   = "rectangle"
	KindEllipse     = "ellipse"
	KindFociEllipse = "foci-ellipse"
	KindQuadBez     = "quadbez"
	KindCubBez      = "cubbez"
)

func (Line) Kind() string                    { return KindLine }
func (Rectangle) Kind() string               { return KindRectangle }
func (Ellipse) Kind() string                 { return KindEllipse }
func (FociEllipseFirst) Kind() string        { return KindFociEllipse }
func (FociEllipseFoci) Kind() string         { return KindFociEllipse }
func (FociEllipseFociAndPoint) Kind() string { return KindFociEllipse }
func (QuadBezStart) Kind() string            { return KindQuadBez }
func (QuadBezCp) Kind() string               { return KindQuadBez }
func (QuadBezEnd) Kind() string              { return KindQuadBez }
func (CubBezStart) Kind() string             { return KindCubBez }
func (CubBezCp1) Kind() string               { return KindCubBez }
func (CubBezCp2) Kind() string               { return KindCubBez }
func (CubBezEnd) Kind() string               { return KindCubBez }

func (b Line) Shape() (shapes.Shape, bool) {
	return shapes.Line{Start: b.Start, End: b.Current}, true
}

func (b Rectangle) Shape() (shapes.Shape, bool) {
	return shapes.RectangleFromCorners(b.Start, b.Current), true
}

func (b Ellipse) Shape() (shapes.Shape, bool) {
	return shapes.NewEllipse(b.Start, b.Current.Sub(b.Start).Abs(), 0), true
}

func (FociEllipseFirst) Shape() (shapes.Shape, bool) { return nil, false }
func (FociEllipseFoci) Shape() (shapes.Shape, bool)  { return nil, false }

func (b FociEllipseFociAndPoint) Shape() (shapes.Shape, bool) {
	return shapes.EllipseFromFociAndPoint(b.Foci[0], b.Foci[1], b.Point), true
}

func (QuadBezStart) Shape() (shapes.Shape, bool) { return nil, false }
func (QuadBezCp) Shape() (shapes.Shape, bool)    { return nil, false }

func (b QuadBezEnd) Shape() (shapes.Shape, bool) {
	return shapes.QuadraticBezier{Start: b.Start, Cp: b.Cp, End: b.End}, true
}

func (CubBezStart) Shape() (shapes.Shape, bool) { return nil, false }
func (CubBezCp1) Shape() (shapes.Shape, bool)   { return nil, false }

// Shape previews the curve as a quadratic through the known points until the
// end point is placed.
func (b CubBezCp2) Shape() (shapes.Shape, bool) {
	return shapes.QuadraticBezier{Start: b.Start, Cp: b.Cp1, End: b.Cp2}, true
}

func (b CubBezEnd) Shape() (shapes.Shape, bool) {
	return shapes.CubicBezier{Start: b.Start, Cp1: b.Cp1, Cp2: b.Cp2, End: b.End}, true
}

func (b Line) Points() []geom.Point             { return []geom.Point{b.Start, b.Current} }
func (b Rectangle) Points() []geom.Point        { return []geom.Point{b.Start, b.Current} }
func (b Ellipse) Points() []geom.Point          { return []geom.Point{b.Start, b.Current} }
func (b FociEllipseFirst) Points() []geom.Point { return []geom.Point{b.First} }
func (b FociEllipseFoci) Points() []geom.Point  { return b.Foci[:] }
func (b FociEllipseFociAndPoint) Points() []geom.Point {
	return []geom.Point{b.Foci[0], b.Foci[1], b.Point}
}
func (b QuadBezStart) Points() []geom.Point { return []geom.Point{b.Start} }
func (b QuadBezCp) Points() []geom.Point    { return []geom.Point{b.Start, b.Cp} }
func (b QuadBezEnd) Points() []geom.Point   { return []geom.Point{b.Start, b.Cp, b.End} }
func (b CubBezStart) Points() []geom.Point  { return []geom.Point{b.Start} }
func (b CubBezCp1) Points() []geom.Point    { return []geom.Point{b.Start, b.Cp1} }
func (b CubBezCp2) Points() []geom.Point    { return []geom.Point{b.Start, b.Cp1, b.Cp2} }
func (b CubBezEnd) Points() []geom.Point {
	return []geom.Point{b.Start, b.Cp1, b.Cp2, b.End}
}

// FromPoints returns the state of the named builder after pts were placed.
func FromPoints(kind string, pts []geom.Point) (State, error) {
	n := len(pts)
	bad := func(want string) error {
		return fmt.Errorf("%s builder needs %s points, got %d", kind, want, n)
	}
	switch kind {
	case KindLine, KindRectangle, KindEllipse:
		if n != 2 {
			return nil, bad("2")
		}
		switch kind {
		case KindLine:
			return Line{Start: pts[0], Current: pts[1]}, nil
		case KindRectangle:
			return Rectangle{Start: pts[0], Current: pts[1]}, nil
		}
		return Ellipse{Start: pts[0], Current: pts[1]}, nil
	case KindFociEllipse:
		switch n {
		case 1:
			return FociEllipseFirst{First: pts[0]}, nil
		case 2:
			return FociEllipseFoci{Foci: [2]geom.Point{pts[0], pts[1]}}, nil
		case 3:
			return FociEllipseFociAndPoint{Foci: [2]geom.Point{pts[0], pts[1]}, Point: pts[2]}, nil
		}
		return nil, bad("1 to 3")
	case KindQuadBez:
		switch n {
		case 1:
			return QuadBezStart{Start: pts[0]}, nil
		case 2:
			return QuadBezCp{Start: pts[0], Cp: pts[1]}, nil
		case 3:
			return QuadBezEnd{Start: pts[0], Cp: pts[1], End: pts[2]}, nil
		}
		return nil, bad("1 to 3")
	case KindCubBez:
		switch n {
		case 1:
			return CubBezStart{Start: pts[0]}, nil
		case 2:
			return CubBezCp1{Start: pts[0], Cp1: pts[1]}, nil
		case 3:
			return CubBezCp2{Start: pts[0], Cp1: pts[1], Cp2: pts[2]}, nil
		case 4:
			return CubBezEnd{Start: pts[0], Cp1: pts[1], Cp2: pts[2], End: pts[3]}, nil
		}
		return nil, bad("1 to 4")
	}
	return nil, fmt.Errorf("unknown builder kind %q", kind)
}
