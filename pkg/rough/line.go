package rough

import (
	"math"

	"github.com/matzehuels/sketchy/pkg/bezpath"
	"github.com/matzehuels/sketchy/pkg/geom"
)

// roughnessGain damps jitter on long segments: full below 200 units,
// 0.4 above 500, linear in between.
func roughnessGain(length float64) float64 {
	switch {
	case length < 200:
		return 1
	case length > 500:
		return 0.4
	default:
		return -0.0016668*length + 1.233334
	}
}

// smallOffset caps a jitter amplitude for shapes of the given size so short
// segments and tiny curves stay anchored. A zero size yields zero jitter.
func smallOffset(offset, size float64) float64 {
	if offset*offset*100 > size*size {
		return size / 10
	}
	return offset
}

// Line returns one perturbed pass from start to end, drawn as a single cubic.
//
// moveToFirst starts the result with a move command; pass false to append
// the segment to an existing sub-path. overlay halves the endpoint jitter,
// as used for the second pass of a double line.
func Line(start, end geom.Point, moveToFirst, overlay bool, o *Options, rng *RNG) bezpath.Path {
	var p bezpath.Path
	line(&p, start, end, moveToFirst, overlay, o, rng)
	return p
}

// DoubleLine returns two independently jittered passes from start to end,
// each beginning with its own move command.
func DoubleLine(start, end geom.Point, o *Options, rng *RNG) bezpath.Path {
	p := Line(start, end, true, false, o, rng)
	line(&p, start, end, true, true, o, rng)
	return p
}

// fillLine draws a fill stroke, doubled unless fill multistroke is disabled.
func fillLine(p *bezpath.Path, start, end geom.Point, o *Options, rng *RNG) {
	line(p, start, end, true, false, o, rng)
	if !o.DisableMultistrokeFill {
		line(p, start, end, true, true, o, rng)
	}
}

func line(p *bezpath.Path, start, end geom.Point, move, overlay bool, o *Options, rng *RNG) {
	d := end.Sub(start)
	length := math.Hypot(d.X, d.Y)
	gain := roughnessGain(length)

	offset := smallOffset(o.MaxRandomnessOffset, length)
	if overlay {
		offset /= 2
	}
	jitter := func() float64 {
		return rng.offsetOpt(offset, o, gain)
	}

	diverge := 0.2 + rng.Float64()*0.2
	bow := o.Bowing * o.MaxRandomnessOffset / 200
	midX := rng.offsetOpt(bow*d.Y, o, gain)
	midY := rng.offsetOpt(-bow*d.X, o, gain)

	if move {
		if o.PreserveVertices {
			p.MoveTo(start)
		} else {
			x := start.X + jitter()
			y := start.Y + jitter()
			p.MoveTo(geom.Pt(x, y))
		}
	}

	c1x := midX + start.X + d.X*diverge + jitter()
	c1y := midY + start.Y + d.Y*diverge + jitter()
	c2x := midX + start.X + 2*d.X*diverge + jitter()
	c2y := midY + start.Y + 2*d.Y*diverge + jitter()
	to := end
	if !o.PreserveVertices {
		x := end.X + jitter()
		y := end.Y + jitter()
		to = geom.Pt(x, y)
	}
	p.CubicTo(geom.Pt(c1x, c1y), geom.Pt(c2x, c2y), to)
}
