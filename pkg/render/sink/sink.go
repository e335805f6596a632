package sink

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/matzehuels/sketchy/pkg/compose"
	"github.com/matzehuels/sketchy/pkg/errors"
	"github.com/matzehuels/sketchy/pkg/geom"
)

// Canvas is a drawing surface that can be encoded once drawing is done.
type Canvas interface {
	compose.Renderer
	compose.Indicators
	// Encode finishes the drawing and returns the encoded output. The canvas
	// must not be drawn on afterwards.
	Encode() ([]byte, error)
}

// Option configures a canvas.
type Option func(*config)

type config struct {
	background *color.NRGBA
	scale      float64
	indicators bool
}

// WithBackground fills the canvas with c before drawing.
func WithBackground(c color.NRGBA) Option {
	return func(cfg *config) { cfg.background = &c }
}

// WithScale sets the PNG pixel density (default 2.0 for 2x resolution).
func WithScale(s float64) Option {
	return func(cfg *config) {
		if s > 0 {
			cfg.scale = s
		}
	}
}

// WithoutIndicators drops position and vector handles.
func WithoutIndicators() Option {
	return func(cfg *config) { cfg.indicators = false }
}

func newConfig(opts []Option) config {
	cfg := config{scale: 2.0, indicators: true}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// New returns a canvas of the given scene size for format.
func New(format string, width, height float64, opts ...Option) (Canvas, error) {
	if err := errors.ValidateFormat(format); err != nil {
		return nil, err
	}
	if !(width > 0 && height > 0) {
		return nil, errors.New(errors.ErrCodeInvalidInput, "canvas size %vx%v must be positive", width, height)
	}
	switch format {
	case "png":
		return NewPNG(width, height, opts...), nil
	case "json":
		return NewJSON(width, height, opts...), nil
	default:
		return NewSVG(width, height, opts...), nil
	}
}

// ContentType returns the MIME type of format.
func ContentType(format string) string {
	switch format {
	case "png":
		return "image/png"
	case "json":
		return "application/json"
	default:
		return "image/svg+xml"
	}
}

// xforms is a transform stack whose top is the full current transform.
type xforms struct {
	stack []geom.Affine
}

func newXforms(base geom.Affine) xforms {
	return xforms{stack: []geom.Affine{base}}
}

func (x *xforms) top() geom.Affine {
	return x.stack[len(x.stack)-1]
}

func (x *xforms) push(t geom.Affine) {
	x.stack = append(x.stack, x.top().Mul(t))
}

func (x *xforms) pop() {
	if len(x.stack) > 1 {
		x.stack = x.stack[:len(x.stack)-1]
	}
}

// ============================================================================
// Colors and handles
// ============================================================================

var (
	indicatorOutline = nrgba(colorful.Hsv(210, 0.15, 0.35), 0xff)
	penUpFill        = nrgba(colorful.Hsv(210, 0.05, 0.98), 0xe0)
	penDownFill      = nrgba(colorful.Hsv(210, 0.55, 0.95), 0xe0)
	vecIndicator     = nrgba(colorful.Hsv(210, 0.15, 0.35), 0x99)
)

const vecIndicatorWidth = 1.0

func nrgba(c colorful.Color, a uint8) color.NRGBA {
	r, g, b := c.Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: a}
}

func hex(c color.NRGBA) string {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}.Hex()
}

func penFill(s compose.PenState) color.NRGBA {
	if s == compose.PenDown {
		return penDownFill
	}
	return penUpFill
}
