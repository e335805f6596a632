package scene

import (
	"image/color"
	"math"

	"github.com/matzehuels/sketchy/pkg/builders"
	"github.com/matzehuels/sketchy/pkg/errors"
	"github.com/matzehuels/sketchy/pkg/geom"
	"github.com/matzehuels/sketchy/pkg/rough"
	"github.com/matzehuels/sketchy/pkg/shapes"
)

// Plan is a scene resolved into drawable values.
type Plan struct {
	Width, Height float64
	Background    *color.NRGBA
	Shapes        []PlannedShape
	Builders      []PlannedBuilder
}

// PlannedShape is a finished shape with its effective options.
type PlannedShape struct {
	Shape   shapes.Shape
	Options rough.Options
}

// PlannedBuilder is a builder state with its effective options.
type PlannedBuilder struct {
	State   builders.State
	Options rough.Options
}

// Plan resolves styles, seeds and geometry. Errors name the first offending
// item by position.
func (s *Scene) Plan() (*Plan, error) {
	bg, err := ParseColor(s.Background)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidScene, err, "background")
	}
	base, err := s.Options.Apply(rough.DefaultOptions())
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidOptions, err, "options")
	}

	p := &Plan{
		Width:      s.Width,
		Height:     s.Height,
		Background: bg,
		Shapes:     make([]PlannedShape, 0, len(s.Shapes)),
		Builders:   make([]PlannedBuilder, 0, len(s.Builders)),
	}
	for i, sh := range s.Shapes {
		o, err := itemOptions(base, sh.Options, i)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidOptions, err, "shape %d", i)
		}
		shape, err := sh.resolve()
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidShape, err, "shape %d (%s)", i, sh.Kind)
		}
		p.Shapes = append(p.Shapes, PlannedShape{Shape: shape, Options: o})
	}
	for i, b := range s.Builders {
		o, err := itemOptions(base, b.Options, len(s.Shapes)+i)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidOptions, err, "builder %d", i)
		}
		state, err := b.resolve()
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidShape, err, "builder %d (%s)", i, b.Kind)
		}
		p.Builders = append(p.Builders, PlannedBuilder{State: state, Options: o})
	}
	return p, nil
}

// itemOptions derives the options of the item at position idx. The scene
// seed is offset by idx unless the item sets its own seed.
func itemOptions(base rough.Options, st *Style, idx int) (rough.Options, error) {
	if base.Seed != nil {
		base = base.WithSeed(*base.Seed + uint64(idx))
	}
	return st.Apply(base)
}

func (sh Shape) resolve() (shapes.Shape, error) {
	need := func(name string, v *Vec) (geom.Point, error) {
		if v == nil {
			return geom.Point{}, errors.New(errors.ErrCodeInvalidShape, "missing %s", name)
		}
		p := v.Point()
		if err := errors.ValidatePoint(p); err != nil {
			return p, errors.Wrap(errors.ErrCodeInvalidShape, err, "%s", name)
		}
		return p, nil
	}
	if math.IsNaN(sh.Angle) || math.IsInf(sh.Angle, 0) {
		return nil, errors.New(errors.ErrCodeInvalidShape, "angle must be finite")
	}
	angle := sh.Angle * math.Pi / 180

	var pts [4]geom.Point
	fields := func(names []string, vs ...*Vec) error {
		for i, v := range vs {
			p, err := need(names[i], v)
			if err != nil {
				return err
			}
			pts[i] = p
		}
		return nil
	}

	switch sh.Kind {
	case builders.KindLine:
		if err := fields([]string{"start", "end"}, sh.Start, sh.End); err != nil {
			return nil, err
		}
		return shapes.Line{Start: pts[0], End: pts[1]}, nil
	case builders.KindRectangle:
		if err := fields([]string{"center", "half_extents"}, sh.Center, sh.HalfExtents); err != nil {
			return nil, err
		}
		return shapes.NewRectangle(pts[0], pts[1], angle), nil
	case builders.KindEllipse:
		if err := fields([]string{"center", "radii"}, sh.Center, sh.Radii); err != nil {
			return nil, err
		}
		return shapes.NewEllipse(pts[0], pts[1], angle), nil
	case builders.KindFociEllipse:
		if len(sh.Foci) != 2 {
			return nil, errors.New(errors.ErrCodeInvalidShape, "foci needs 2 points, got %d", len(sh.Foci))
		}
		if err := fields([]string{"foci[0]", "foci[1]", "point"}, &sh.Foci[0], &sh.Foci[1], sh.Point); err != nil {
			return nil, err
		}
		return shapes.EllipseFromFociAndPoint(pts[0], pts[1], pts[2]), nil
	case builders.KindQuadBez:
		if err := fields([]string{"start", "cp", "end"}, sh.Start, sh.Cp, sh.End); err != nil {
			return nil, err
		}
		return shapes.QuadraticBezier{Start: pts[0], Cp: pts[1], End: pts[2]}, nil
	case builders.KindCubBez:
		if err := fields([]string{"start", "cp1", "cp2", "end"}, sh.Start, sh.Cp1, sh.Cp2, sh.End); err != nil {
			return nil, err
		}
		return shapes.CubicBezier{Start: pts[0], Cp1: pts[1], Cp2: pts[2], End: pts[3]}, nil
	case "":
		return nil, errors.New(errors.ErrCodeInvalidShape, "missing kind")
	}
	return nil, errors.New(errors.ErrCodeInvalidShape, "unknown kind %q", sh.Kind)
}

func (b Builder) resolve() (builders.State, error) {
	pts := make([]geom.Point, len(b.Points))
	for i, v := range b.Points {
		pts[i] = v.Point()
		if err := errors.ValidatePoint(pts[i]); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidShape, err, "points[%d]", i)
		}
	}
	state, err := builders.FromPoints(b.Kind, pts)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidShape, err, "points")
	}
	return state, nil
}
