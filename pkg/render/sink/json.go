package sink

import (
	"encoding/json"

	"github.com/matzehuels/sketchy/pkg/bezpath"
	"github.com/matzehuels/sketchy/pkg/compose"
	"github.com/matzehuels/sketchy/pkg/errors"
	"github.com/matzehuels/sketchy/pkg/geom"
	"github.com/matzehuels/sketchy/pkg/rough"
)

// JSONCanvas records draw calls. Paths are stored in scene coordinates with
// every pushed transform already applied.
type JSONCanvas struct {
	doc JSONDocument
	xf  xforms
	cfg config
}

// JSONDocument is the output of [JSONCanvas].
type JSONDocument struct {
	Width      float64  `json:"width"`
	Height     float64  `json:"height"`
	Background string   `json:"background,omitempty"`
	Ops        []JSONOp `json:"ops"`
}

// JSONOp is one recorded draw call.
type JSONOp struct {
	Op     string        `json:"op"` // fill, stroke, pos or vec
	Path   *bezpath.Path `json:"path,omitempty"`
	Color  string        `json:"color,omitempty"`
	Alpha  float64       `json:"alpha,omitempty"`
	Width  float64       `json:"width,omitempty"`
	Sketch bool          `json:"sketch,omitempty"`
	Pen    string        `json:"pen,omitempty"`
	Points [][2]float64  `json:"points,omitempty"`
}

// NewJSON returns a recording canvas for a scene of the given size.
func NewJSON(width, height float64, opts ...Option) *JSONCanvas {
	c := &JSONCanvas{
		doc: JSONDocument{Width: width, Height: height, Ops: []JSONOp{}},
		xf:  newXforms(geom.Identity()),
		cfg: newConfig(opts),
	}
	if bg := c.cfg.background; bg != nil {
		c.doc.Background = hex(*bg)
	}
	return c
}

// Document returns the recorded calls.
func (c *JSONCanvas) Document() JSONDocument {
	return c.doc
}

func (c *JSONCanvas) Fill(p rough.FillPath, style compose.FillStyle) {
	t := c.xf.top()
	path := p.Path.Transform(t)
	op := JSONOp{Op: "fill", Path: &path, Color: hex(style.Color), Alpha: float64(style.Color.A) / 255, Sketch: p.Sketch}
	if p.Sketch {
		op.Width = style.Width * t.ScaleFactor()
	}
	c.doc.Ops = append(c.doc.Ops, op)
}

func (c *JSONCanvas) Stroke(p bezpath.Path, style compose.StrokeStyle) {
	t := c.xf.top()
	path := p.Transform(t)
	c.doc.Ops = append(c.doc.Ops, JSONOp{
		Op:    "stroke",
		Path:  &path,
		Color: hex(style.Color),
		Alpha: float64(style.Color.A) / 255,
		Width: style.Width * t.ScaleFactor(),
	})
}

func (c *JSONCanvas) PushTransform(t geom.Affine) { c.xf.push(t) }
func (c *JSONCanvas) PopTransform()               { c.xf.pop() }

func (c *JSONCanvas) PosIndicator(state compose.PenState, pos geom.Point) {
	if !c.cfg.indicators {
		return
	}
	c.doc.Ops = append(c.doc.Ops, JSONOp{Op: "pos", Pen: state.String(), Points: [][2]float64{{pos.X, pos.Y}}})
}

func (c *JSONCanvas) VecIndicator(state compose.PenState, from, to geom.Point) {
	if !c.cfg.indicators {
		return
	}
	c.doc.Ops = append(c.doc.Ops, JSONOp{
		Op:     "vec",
		Pen:    state.String(),
		Points: [][2]float64{{from.X, from.Y}, {to.X, to.Y}},
	})
}

// Encode returns the recorded document as indented JSON.
func (c *JSONCanvas) Encode() ([]byte, error) {
	data, err := json.MarshalIndent(c.doc, "", "  ")
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode json")
	}
	return data, nil
}
