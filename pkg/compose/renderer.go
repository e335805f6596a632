package compose

import (
	"image/color"

	"github.com/matzehuels/sketchy/pkg/bezpath"
	"github.com/matzehuels/sketchy/pkg/geom"
	"github.com/matzehuels/sketchy/pkg/rough"
)

// Handle sizes used by builder states, in path units.
const (
	PosIndicatorRadius       = 3.0
	PosIndicatorOutlineWidth = 1.5
)

// StrokeStyle describes how an outline is stroked.
type StrokeStyle struct {
	Color color.NRGBA
	Width float64
}

// FillStyle describes how a fill path is painted. Width is the stroke width
// used for sketch fills and is ignored for area fills.
type FillStyle struct {
	Color color.NRGBA
	Width float64
}

// Renderer is the drawing surface the composer emits to. Transforms nest:
// PushTransform composes t onto the current transform until the matching
// PopTransform.
type Renderer interface {
	Fill(p rough.FillPath, style FillStyle)
	Stroke(p bezpath.Path, style StrokeStyle)
	PushTransform(t geom.Affine)
	PopTransform()
}

// PenState selects the look of a handle.
type PenState int

const (
	PenUp PenState = iota
	PenDown
)

func (s PenState) String() string {
	if s == PenDown {
		return "down"
	}
	return "up"
}

// Indicators draws builder handles.
type Indicators interface {
	// PosIndicator marks a placed point.
	PosIndicator(state PenState, pos geom.Point)
	// VecIndicator draws a guide from one point to another.
	VecIndicator(state PenState, from, to geom.Point)
}

// WithTransform runs fn with t pushed onto r and pops it again however fn
// returns.
func WithTransform(r Renderer, t geom.Affine, fn func()) {
	r.PushTransform(t)
	defer r.PopTransform()
	fn()
}
