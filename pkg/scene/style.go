package scene

import (
	"github.com/matzehuels/sketchy/pkg/errors"
	"github.com/matzehuels/sketchy/pkg/rough"
)

// Style is a partial set of rough options. Unset fields inherit from the
// enclosing style.
type Style struct {
	Seed        *uint64  `toml:"seed,omitempty" json:"seed,omitempty"`
	StrokeWidth *float64 `toml:"stroke_width,omitempty" json:"stroke_width,omitempty"`
	StrokeColor *string  `toml:"stroke_color,omitempty" json:"stroke_color,omitempty"`
	FillColor   *string  `toml:"fill_color,omitempty" json:"fill_color,omitempty"`
	FillStyle   string   `toml:"fill_style,omitempty" json:"fill_style,omitempty"`

	MaxRandomnessOffset *float64 `toml:"max_randomness_offset,omitempty" json:"max_randomness_offset,omitempty"`
	Roughness           *float64 `toml:"roughness,omitempty" json:"roughness,omitempty"`
	Bowing              *float64 `toml:"bowing,omitempty" json:"bowing,omitempty"`
	CurveFitting        *float64 `toml:"curve_fitting,omitempty" json:"curve_fitting,omitempty"`
	CurveTightness      *float64 `toml:"curve_tightness,omitempty" json:"curve_tightness,omitempty"`
	CurveStepCount      *float64 `toml:"curve_step_count,omitempty" json:"curve_step_count,omitempty"`
	HachureAngle        *float64 `toml:"hachure_angle,omitempty" json:"hachure_angle,omitempty"`
	HachureGap          *float64 `toml:"hachure_gap,omitempty" json:"hachure_gap,omitempty"`
	FillWeight          *float64 `toml:"fill_weight,omitempty" json:"fill_weight,omitempty"`

	DisableMultistroke     *bool `toml:"disable_multistroke,omitempty" json:"disable_multistroke,omitempty"`
	DisableMultistrokeFill *bool `toml:"disable_multistroke_fill,omitempty" json:"disable_multistroke_fill,omitempty"`
	PreserveVertices       *bool `toml:"preserve_vertices,omitempty" json:"preserve_vertices,omitempty"`
}

// Apply returns base with every set field of s written over it.
// The result is validated with [errors.ValidateOptions].
func (s *Style) Apply(base rough.Options) (rough.Options, error) {
	if s == nil {
		return base, errors.ValidateOptions(base)
	}
	o := base
	if s.Seed != nil {
		seed := *s.Seed
		o.Seed = &seed
	}
	if s.StrokeColor != nil {
		c, err := ParseColor(*s.StrokeColor)
		if err != nil {
			return o, err
		}
		o.StrokeColor = c
	}
	if s.FillColor != nil {
		c, err := ParseColor(*s.FillColor)
		if err != nil {
			return o, err
		}
		o.FillColor = c
	}
	if s.FillStyle != "" {
		o.FillStyle = rough.FillStyle(s.FillStyle)
	}

	floats := []struct {
		src *float64
		dst *float64
	}{
		{s.StrokeWidth, &o.StrokeWidth},
		{s.MaxRandomnessOffset, &o.MaxRandomnessOffset},
		{s.Roughness, &o.Roughness},
		{s.Bowing, &o.Bowing},
		{s.CurveFitting, &o.CurveFitting},
		{s.CurveTightness, &o.CurveTightness},
		{s.CurveStepCount, &o.CurveStepCount},
		{s.HachureAngle, &o.HachureAngle},
		{s.HachureGap, &o.HachureGap},
		{s.FillWeight, &o.FillWeight},
	}
	for _, f := range floats {
		if f.src != nil {
			*f.dst = *f.src
		}
	}
	bools := []struct {
		src *bool
		dst *bool
	}{
		{s.DisableMultistroke, &o.DisableMultistroke},
		{s.DisableMultistrokeFill, &o.DisableMultistrokeFill},
		{s.PreserveVertices, &o.PreserveVertices},
	}
	for _, b := range bools {
		if b.src != nil {
			*b.dst = *b.src
		}
	}

	return o, errors.ValidateOptions(o)
}

// Merge returns s with every set field of over written on top.
func (s Style) Merge(over *Style) Style {
	if over == nil {
		return s
	}
	out := s
	setPtr(&out.Seed, over.Seed)
	setPtr(&out.StrokeWidth, over.StrokeWidth)
	setPtr(&out.StrokeColor, over.StrokeColor)
	setPtr(&out.FillColor, over.FillColor)
	if over.FillStyle != "" {
		out.FillStyle = over.FillStyle
	}
	setPtr(&out.MaxRandomnessOffset, over.MaxRandomnessOffset)
	setPtr(&out.Roughness, over.Roughness)
	setPtr(&out.Bowing, over.Bowing)
	setPtr(&out.CurveFitting, over.CurveFitting)
	setPtr(&out.CurveTightness, over.CurveTightness)
	setPtr(&out.CurveStepCount, over.CurveStepCount)
	setPtr(&out.HachureAngle, over.HachureAngle)
	setPtr(&out.HachureGap, over.HachureGap)
	setPtr(&out.FillWeight, over.FillWeight)
	setPtr(&out.DisableMultistroke, over.DisableMultistroke)
	setPtr(&out.DisableMultistrokeFill, over.DisableMultistrokeFill)
	setPtr(&out.PreserveVertices, over.PreserveVertices)
	return out
}

func setPtr[T any](dst **T, src *T) {
	if src != nil {
		v := *src
		*dst = &v
	}
}
