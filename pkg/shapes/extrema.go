package shapes

import (
	"math"

	"github.com/matzehuels/sketchy/pkg/geom"
)

const rootEpsilon = 1e-12

// quadExtrema returns the parameters in (0, 1) where the derivative of the
// quadratic p0,p1,p2 vanishes in x or y.
func quadExtrema(p0, p1, p2 geom.Point) []float64 {
	var ts []float64
	for _, axis := range [][3]float64{{p0.X, p1.X, p2.X}, {p0.Y, p1.Y, p2.Y}} {
		// B'(t)/2 = (p1-p0) + t(p0-2p1+p2)
		den := axis[0] - 2*axis[1] + axis[2]
		if math.Abs(den) < rootEpsilon {
			continue
		}
		ts = appendUnit(ts, (axis[0]-axis[1])/den)
	}
	return ts
}

// cubicExtrema is quadExtrema for cubics.
func cubicExtrema(p0, p1, p2, p3 geom.Point) []float64 {
	var ts []float64
	for _, axis := range [][4]float64{{p0.X, p1.X, p2.X, p3.X}, {p0.Y, p1.Y, p2.Y, p3.Y}} {
		// B'(t)/3 = a t^2 + b t + c
		a := -axis[0] + 3*axis[1] - 3*axis[2] + axis[3]
		b := 2 * (axis[0] - 2*axis[1] + axis[2])
		c := axis[1] - axis[0]
		if math.Abs(a) < rootEpsilon {
			if math.Abs(b) >= rootEpsilon {
				ts = appendUnit(ts, -c/b)
			}
			continue
		}
		disc := b*b - 4*a*c
		if disc < 0 {
			continue
		}
		sq := math.Sqrt(disc)
		ts = appendUnit(ts, (-b+sq)/(2*a))
		ts = appendUnit(ts, (-b-sq)/(2*a))
	}
	return ts
}

func appendUnit(ts []float64, t float64) []float64 {
	if t > 0 && t < 1 {
		return append(ts, t)
	}
	return ts
}
