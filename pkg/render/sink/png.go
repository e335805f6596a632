package sink

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"

	"golang.org/x/image/vector"

	"github.com/matzehuels/sketchy/pkg/bezpath"
	"github.com/matzehuels/sketchy/pkg/compose"
	"github.com/matzehuels/sketchy/pkg/errors"
	"github.com/matzehuels/sketchy/pkg/geom"
	"github.com/matzehuels/sketchy/pkg/rough"
)

// flattenTolerance is the maximum chord length in pixels.
const flattenTolerance = 0.5

// PNGCanvas rasterises onto an RGBA image.
type PNGCanvas struct {
	img *image.RGBA
	raz *vector.Rasterizer
	xf  xforms
	cfg config
}

// NewPNG returns a raster canvas for a scene of the given size. The image is
// scaled by the configured pixel density.
func NewPNG(width, height float64, opts ...Option) *PNGCanvas {
	cfg := newConfig(opts)
	w := int(math.Ceil(width * cfg.scale))
	h := int(math.Ceil(height * cfg.scale))
	c := &PNGCanvas{
		img: image.NewRGBA(image.Rect(0, 0, w, h)),
		raz: vector.NewRasterizer(w, h),
		xf:  newXforms(geom.Scale(geom.Pt(cfg.scale, cfg.scale))),
		cfg: cfg,
	}
	if bg := cfg.background; bg != nil {
		draw.Draw(c.img, c.img.Bounds(), image.NewUniform(*bg), image.Point{}, draw.Src)
	}
	return c
}

// Image returns the image drawn so far.
func (c *PNGCanvas) Image() *image.RGBA {
	return c.img
}

func (c *PNGCanvas) Fill(p rough.FillPath, style compose.FillStyle) {
	if p.Sketch {
		c.stroke(p.Path, style.Color, style.Width)
		return
	}
	c.begin()
	for _, poly := range p.Path.Transform(c.xf.top()).Flatten(flattenTolerance) {
		c.polygon(poly, false)
	}
	c.paint(style.Color)
}

func (c *PNGCanvas) Stroke(p bezpath.Path, style compose.StrokeStyle) {
	c.stroke(p, style.Color, style.Width)
}

func (c *PNGCanvas) PushTransform(t geom.Affine) { c.xf.push(t) }
func (c *PNGCanvas) PopTransform()               { c.xf.pop() }

func (c *PNGCanvas) PosIndicator(state compose.PenState, pos geom.Point) {
	if !c.cfg.indicators {
		return
	}
	circle := circlePath(pos, compose.PosIndicatorRadius)
	c.Fill(rough.FillPath{Path: circle}, compose.FillStyle{Color: penFill(state)})
	c.stroke(circle, indicatorOutline, compose.PosIndicatorOutlineWidth)
}

func (c *PNGCanvas) VecIndicator(_ compose.PenState, from, to geom.Point) {
	if !c.cfg.indicators {
		return
	}
	var p bezpath.Path
	p.MoveTo(from)
	p.LineTo(to)
	c.stroke(p, vecIndicator, vecIndicatorWidth)
}

// Encode returns the image as PNG.
func (c *PNGCanvas) Encode() ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, c.img); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode png")
	}
	return buf.Bytes(), nil
}

// stroke outlines p with round-ish joins: every flattened chord becomes a
// quad and every vertex an octagon, all wound the same way so overlaps add
// up instead of cancelling.
func (c *PNGCanvas) stroke(p bezpath.Path, col color.NRGBA, width float64) {
	t := c.xf.top()
	hw := width * t.ScaleFactor() / 2
	if p.IsEmpty() || hw <= 0 {
		return
	}
	c.begin()
	for _, line := range p.Transform(t).Flatten(flattenTolerance) {
		for i, v := range line {
			c.polygon(octagon(v, hw), true)
			if i == 0 {
				continue
			}
			if q, ok := segmentQuad(line[i-1], v, hw); ok {
				c.polygon(q[:], true)
			}
		}
	}
	c.paint(col)
}

func (c *PNGCanvas) begin() {
	b := c.img.Bounds()
	c.raz.Reset(b.Dx(), b.Dy())
}

func (c *PNGCanvas) paint(col color.NRGBA) {
	c.raz.Draw(c.img, c.img.Bounds(), image.NewUniform(col), image.Point{})
}

// polygon adds a closed outline to the rasteriser, reversed first if orient
// is set and the outline winds clockwise.
func (c *PNGCanvas) polygon(pts []geom.Point, orient bool) {
	if len(pts) < 3 {
		return
	}
	if orient && signedArea(pts) < 0 {
		rev := make([]geom.Point, len(pts))
		for i, p := range pts {
			rev[len(pts)-1-i] = p
		}
		pts = rev
	}
	c.raz.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, p := range pts[1:] {
		c.raz.LineTo(float32(p.X), float32(p.Y))
	}
	c.raz.ClosePath()
}

func segmentQuad(a, b geom.Point, hw float64) ([4]geom.Point, bool) {
	d := b.Sub(a)
	l := d.Len()
	if l == 0 {
		return [4]geom.Point{}, false
	}
	n := geom.Pt(-d.Y/l*hw, d.X/l*hw)
	return [4]geom.Point{a.Add(n), b.Add(n), b.Sub(n), a.Sub(n)}, true
}

func octagon(c geom.Point, r float64) []geom.Point {
	pts := make([]geom.Point, 8)
	for i := range pts {
		sin, cos := math.Sincos(float64(i) * math.Pi / 4)
		pts[i] = geom.Pt(c.X+r*cos, c.Y+r*sin)
	}
	return pts
}

func signedArea(pts []geom.Point) float64 {
	var a float64
	for i, p := range pts {
		q := pts[(i+1)%len(pts)]
		a += p.X*q.Y - q.X*p.Y
	}
	return a / 2
}
