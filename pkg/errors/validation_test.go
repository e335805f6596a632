package errors

import (
	"math"
	"testing"

	"github.com/matzehuels/sketchy/pkg/geom"
	"github.com/matzehuels/sketchy/pkg/rough"
)

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"svg", "svg", false},
		{"png", "png", false},
		{"json", "json", false},

		{"empty", "", true},
		{"pdf", "pdf", true},
		{"upper case", "SVG", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFormat(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateFormat(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidFormat) {
				t.Errorf("ValidateFormat(%q) code = %v, want %v", tt.input, GetCode(err), ErrCodeInvalidFormat)
			}
		})
	}
}

func TestValidateFormats(t *testing.T) {
	tests := []struct {
		name    string
		input   []string
		wantErr bool
	}{
		{"single", []string{"svg"}, false},
		{"all", []string{"svg", "png", "json"}, false},

		{"none", nil, true},
		{"duplicate", []string{"svg", "svg"}, true},
		{"one bad", []string{"svg", "gif"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := ValidateFormats(tt.input); (err != nil) != tt.wantErr {
				t.Errorf("ValidateFormats(%v) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidatePoint(t *testing.T) {
	if err := ValidatePoint(geom.Pt(1, -2)); err != nil {
		t.Errorf("ValidatePoint(finite) = %v", err)
	}
	for _, p := range []geom.Point{geom.Pt(math.NaN(), 0), geom.Pt(0, math.Inf(1))} {
		if err := ValidatePoint(p); !Is(err, ErrCodeInvalidShape) {
			t.Errorf("ValidatePoint(%v) = %v, want %v", p, err, ErrCodeInvalidShape)
		}
	}
}

func TestValidateOptions(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(o *rough.Options)
		wantErr bool
	}{
		{"defaults", func(o *rough.Options) {}, false},
		{"zero roughness", func(o *rough.Options) { o.Roughness = 0 }, false},
		{"auto gap", func(o *rough.Options) { o.HachureGap = -1 }, false},
		{"solid", func(o *rough.Options) { o.FillStyle = rough.FillSolid }, false},

		{"negative width", func(o *rough.Options) { o.StrokeWidth = -1 }, true},
		{"negative roughness", func(o *rough.Options) { o.Roughness = -0.5 }, true},
		{"negative offset", func(o *rough.Options) { o.MaxRandomnessOffset = -2 }, true},
		{"fitting above one", func(o *rough.Options) { o.CurveFitting = 1.5 }, true},
		{"tightness below zero", func(o *rough.Options) { o.CurveTightness = -0.1 }, true},
		{"no steps", func(o *rough.Options) { o.CurveStepCount = 0 }, true},
		{"nan bowing", func(o *rough.Options) { o.Bowing = math.NaN() }, true},
		{"infinite angle", func(o *rough.Options) { o.HachureAngle = math.Inf(-1) }, true},
		{"unknown fill style", func(o *rough.Options) { o.FillStyle = "zigzag" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := rough.DefaultOptions()
			tt.mutate(&o)
			err := ValidateOptions(o)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateOptions() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidOptions) {
				t.Errorf("ValidateOptions() code = %v, want %v", GetCode(err), ErrCodeInvalidOptions)
			}
		})
	}
}
