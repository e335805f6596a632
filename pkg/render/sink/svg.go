package sink

import (
	"bytes"
	"fmt"
	"image/color"
	"math"
	"strconv"

	svg "github.com/ajstarks/svgo"

	"github.com/matzehuels/sketchy/pkg/bezpath"
	"github.com/matzehuels/sketchy/pkg/compose"
	"github.com/matzehuels/sketchy/pkg/geom"
	"github.com/matzehuels/sketchy/pkg/rough"
)

// SVGCanvas writes SVG markup.
type SVGCanvas struct {
	buf    bytes.Buffer
	canvas *svg.SVG
	cfg    config
	groups int
	done   bool
}

// NewSVG starts an SVG document of the given scene size. Sizes are rounded
// up to whole user units.
func NewSVG(width, height float64, opts ...Option) *SVGCanvas {
	c := &SVGCanvas{cfg: newConfig(opts)}
	c.canvas = svg.New(&c.buf)
	w, h := int(math.Ceil(width)), int(math.Ceil(height))
	c.canvas.Start(w, h, fmt.Sprintf(`viewBox="0 0 %d %d"`, w, h))
	if bg := c.cfg.background; bg != nil {
		c.canvas.Rect(0, 0, w, h, "fill:"+hex(*bg)+opacity("fill", *bg))
	}
	return c
}

func (c *SVGCanvas) Fill(p rough.FillPath, style compose.FillStyle) {
	if p.Path.IsEmpty() {
		return
	}
	if p.Sketch {
		c.canvas.Path(p.Path.SVG(), strokeCSS(style.Color, style.Width))
		return
	}
	c.canvas.Path(p.Path.SVG(), "fill:"+hex(style.Color)+opacity("fill", style.Color)+";stroke:none")
}

func (c *SVGCanvas) Stroke(p bezpath.Path, style compose.StrokeStyle) {
	if p.IsEmpty() {
		return
	}
	c.canvas.Path(p.SVG(), strokeCSS(style.Color, style.Width))
}

func (c *SVGCanvas) PushTransform(t geom.Affine) {
	c.canvas.Gtransform(matrix(t))
	c.groups++
}

func (c *SVGCanvas) PopTransform() {
	if c.groups == 0 {
		return
	}
	c.canvas.Gend()
	c.groups--
}

func (c *SVGCanvas) PosIndicator(state compose.PenState, pos geom.Point) {
	if !c.cfg.indicators {
		return
	}
	style := "fill:" + hex(penFill(state)) + opacity("fill", penFill(state)) + ";" +
		strokeCSS(indicatorOutline, compose.PosIndicatorOutlineWidth)
	c.canvas.Path(circlePath(pos, compose.PosIndicatorRadius).SVG(), style)
}

func (c *SVGCanvas) VecIndicator(_ compose.PenState, from, to geom.Point) {
	if !c.cfg.indicators {
		return
	}
	var p bezpath.Path
	p.MoveTo(from)
	p.LineTo(to)
	c.canvas.Path(p.SVG(), strokeCSS(vecIndicator, vecIndicatorWidth)+";stroke-dasharray:4 3")
}

// Encode closes any open groups and the document.
func (c *SVGCanvas) Encode() ([]byte, error) {
	if !c.done {
		for c.groups > 0 {
			c.PopTransform()
		}
		c.canvas.End()
		c.done = true
	}
	return c.buf.Bytes(), nil
}

func strokeCSS(c color.NRGBA, width float64) string {
	return "fill:none;stroke:" + hex(c) + opacity("stroke", c) +
		";stroke-width:" + num(width) + ";stroke-linecap:round;stroke-linejoin:round"
}

// matrix formats t as an SVG transform. SVG lists the linear part column by
// column.
func matrix(t geom.Affine) string {
	return "matrix(" + num(t[0]) + " " + num(t[3]) + " " + num(t[1]) + " " +
		num(t[4]) + " " + num(t[2]) + " " + num(t[5]) + ")"
}

func opacity(attr string, c color.NRGBA) string {
	if c.A == 0xff {
		return ""
	}
	return ";" + attr + "-opacity:" + num(float64(c.A)/255)
}

func num(v float64) string {
	return strconv.FormatFloat(math.Round(v*1000)/1000, 'f', -1, 64)
}
