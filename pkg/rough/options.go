package rough

import "image/color"

// RoughBoundsMargin is the least margin added around exact bounds to contain
// jitter overshoot. Large or very rough shapes get more, see [LineMargin].
const RoughBoundsMargin = 20.0

// FillStyle selects how FillPolygon covers a polygon.
type FillStyle string

const (
	// FillHachure draws parallel sketchy lines.
	FillHachure FillStyle = "hachure"
	// FillCrossHatch draws two hachure passes at right angles.
	FillCrossHatch FillStyle = "cross-hatch"
	// FillSolid fills a jittered outline of the polygon.
	FillSolid FillStyle = "solid"
)

// Valid reports whether s names a known fill style.
func (s FillStyle) Valid() bool {
	switch s {
	case FillHachure, FillCrossHatch, FillSolid:
		return true
	}
	return false
}

// Options configures the rough generators. Options are read-only during a
// draw call.
type Options struct {
	// Seed makes output reproducible. Nil draws a fresh stream per call.
	Seed *uint64

	StrokeWidth float64
	// StrokeColor enables the outline pass when set.
	StrokeColor *color.NRGBA
	// FillColor enables the fill pass when set.
	FillColor *color.NRGBA
	FillStyle FillStyle

	// MaxRandomnessOffset is the base jitter amplitude in path units.
	MaxRandomnessOffset float64
	// Roughness scales every random offset. Zero draws exact geometry.
	Roughness float64
	// Bowing scales how far straight segments bend away from the ideal line.
	Bowing float64
	// CurveFitting in [0, 1] is how closely ellipses keep their radii.
	CurveFitting float64
	// CurveTightness in [0, 1] flattens the fitted ellipse curve.
	CurveTightness float64
	// CurveStepCount is the base number of samples for curves and ellipses.
	CurveStepCount float64

	// HachureAngle is the fill line angle in degrees.
	HachureAngle float64
	// HachureGap is the distance between fill lines; negative means 4*StrokeWidth.
	HachureGap float64
	// FillWeight is the stroke width of fill lines; negative means StrokeWidth/2.
	FillWeight float64

	DisableMultistroke     bool
	DisableMultistrokeFill bool
	// PreserveVertices keeps segment and curve endpoints exact.
	PreserveVertices bool
}

// DefaultOptions returns the standard sketch style: black outline, no fill.
func DefaultOptions() Options {
	black := color.NRGBA{A: 0xff}
	return Options{
		StrokeWidth:         2,
		StrokeColor:         &black,
		FillStyle:           FillHachure,
		MaxRandomnessOffset: 2,
		Roughness:           1,
		Bowing:              1,
		CurveFitting:        0.95,
		CurveTightness:      0,
		CurveStepCount:      9,
		HachureAngle:        -41,
		HachureGap:          -1,
		FillWeight:          -1,
	}
}

// Multistroke reports whether outlines are drawn as two overlaid passes.
func (o *Options) Multistroke() bool {
	return !o.DisableMultistroke
}

// passes returns the number of outline passes for curves.
func (o *Options) passes() int {
	if o.Multistroke() {
		return 2
	}
	return 1
}

// EffectiveHachureGap resolves the negative "auto" gap.
func (o *Options) EffectiveHachureGap() float64 {
	if o.HachureGap < 0 {
		return o.StrokeWidth * 4
	}
	return o.HachureGap
}

// EffectiveFillWeight resolves the negative "auto" fill weight.
func (o *Options) EffectiveFillWeight() float64 {
	if o.FillWeight < 0 {
		return o.StrokeWidth / 2
	}
	return o.FillWeight
}

// WithSeed returns a copy of o seeded with s.
func (o Options) WithSeed(s uint64) Options {
	o.Seed = &s
	return o
}
