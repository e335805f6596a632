package errors

import (
	"math"
	"slices"
	"strings"

	"github.com/matzehuels/sketchy/pkg/geom"
	"github.com/matzehuels/sketchy/pkg/rough"
)

// Output formats understood by the renderers.
var Formats = []string{"svg", "png", "json"}

// ValidateFormat checks that format names a supported output format.
func ValidateFormat(format string) error {
	if format == "" {
		return New(ErrCodeInvalidFormat, "format cannot be empty")
	}
	if !slices.Contains(Formats, format) {
		return New(ErrCodeInvalidFormat, "unsupported format %q (want one of %s)", format, strings.Join(Formats, ", "))
	}
	return nil
}

// ValidateFormats checks a non-empty list of formats without duplicates.
func ValidateFormats(formats []string) error {
	if len(formats) == 0 {
		return New(ErrCodeInvalidFormat, "at least one format is required")
	}
	seen := make(map[string]bool, len(formats))
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
		if seen[f] {
			return New(ErrCodeInvalidFormat, "format %q listed twice", f)
		}
		seen[f] = true
	}
	return nil
}

// ValidatePoint checks that p has finite coordinates.
func ValidatePoint(p geom.Point) error {
	if !p.Finite() {
		return New(ErrCodeInvalidShape, "point (%v, %v) is not finite", p.X, p.Y)
	}
	return nil
}

// ValidateOptions checks the numeric style knobs of o.
//
// Rules:
//   - every knob must be finite
//   - stroke width, randomness offset and roughness must not be negative
//   - curve fitting and curve tightness must lie in [0, 1]
//   - curve step count must be at least 1
//   - hachure gap and fill weight may be negative to select their defaults
func ValidateOptions(o rough.Options) error {
	knobs := []struct {
		name string
		v    float64
	}{
		{"stroke_width", o.StrokeWidth},
		{"max_randomness_offset", o.MaxRandomnessOffset},
		{"roughness", o.Roughness},
		{"bowing", o.Bowing},
		{"curve_fitting", o.CurveFitting},
		{"curve_tightness", o.CurveTightness},
		{"curve_step_count", o.CurveStepCount},
		{"hachure_angle", o.HachureAngle},
		{"hachure_gap", o.HachureGap},
		{"fill_weight", o.FillWeight},
	}
	for _, k := range knobs {
		if math.IsNaN(k.v) || math.IsInf(k.v, 0) {
			return New(ErrCodeInvalidOptions, "%s must be finite", k.name)
		}
	}

	switch {
	case o.StrokeWidth < 0:
		return New(ErrCodeInvalidOptions, "stroke_width cannot be negative")
	case o.MaxRandomnessOffset < 0:
		return New(ErrCodeInvalidOptions, "max_randomness_offset cannot be negative")
	case o.Roughness < 0:
		return New(ErrCodeInvalidOptions, "roughness cannot be negative")
	case o.CurveFitting < 0 || o.CurveFitting > 1:
		return New(ErrCodeInvalidOptions, "curve_fitting must be in [0, 1]")
	case o.CurveTightness < 0 || o.CurveTightness > 1:
		return New(ErrCodeInvalidOptions, "curve_tightness must be in [0, 1]")
	case o.CurveStepCount < 1:
		return New(ErrCodeInvalidOptions, "curve_step_count must be at least 1")
	case !o.FillStyle.Valid():
		return New(ErrCodeInvalidOptions, "unknown fill_style %q", o.FillStyle)
	}
	return nil
}
