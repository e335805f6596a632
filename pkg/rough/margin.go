package rough

import (
	"math"

	"github.com/matzehuels/sketchy/pkg/geom"
)

// The margins below bound how far a generator moves any emitted point, end
// or control, away from the exact geometry. They are Euclidean distances in
// the coordinates the generator draws in, so they hold under rotation.

// LineMargin bounds the displacement of [Line] and [DoubleLine] for a
// segment of the given length. It also bounds every fill stroke inside a
// polygon whose diameter is length.
func LineMargin(length float64, o *Options) float64 {
	r := math.Abs(o.Roughness)
	m := math.Abs(o.MaxRandomnessOffset)
	return r * (math.Sqrt2*m + math.Abs(o.Bowing)*m/200*bowReach(length))
}

// bowReach bounds l*roughnessGain(l) over all l <= length. The product
// peaks near 228 at l = 370 and grows as 0.4*l beyond 500.
func bowReach(length float64) float64 {
	return math.Min(length, math.Max(230, 0.4*length))
}

// CurveMargin bounds the displacement of [QuadraticBezier] and
// [CubicBezier] from the exact curve with control points ctrl.
func CurveMargin(ctrl []geom.Point, o *Options) float64 {
	var hull float64
	for i := 1; i < len(ctrl); i++ {
		hull += ctrl[i-1].Dist(ctrl[i])
	}
	// Control points move by at most shift, and so does every point on the
	// jittered curve. Chords are no longer than the jittered hull.
	shift := math.Sqrt2 * math.Abs(o.Roughness) * (math.Abs(o.MaxRandomnessOffset) + overlayCurveOffset)
	return shift + LineMargin(hull+2*shift*float64(len(ctrl)), o)
}

// EllipseMargin bounds the distance of the [Ellipse] outline and of its
// fill from the filled exact ellipse with radii rx and ry.
func EllipseMargin(rx, ry float64, o *Options) float64 {
	rx, ry = math.Abs(rx), math.Abs(ry)
	r := math.Abs(o.Roughness)
	size := max(rx, ry)
	inc := ellipseIncrement(rx, ry, o)

	spread := r * math.Abs(1-o.CurveFitting) * size
	reach := size + spread
	jitter := math.Sqrt2 * r * 1.5
	samples := spread + jitter

	// Neighbouring samples are at most 2*inc apart in angle, plus the
	// overlap at the seam, and differ in scale by at most 0.1.
	overlap := inc * r * max(0.1, r)
	chord := math.Min(reach*(2*inc+0.01+overlap+0.1), 2*reach) + 2*jitter
	outline := samples + chord*math.Abs(1-o.CurveTightness)/6

	fill := samples + LineMargin(2*(reach+jitter), o)
	return math.Max(outline, fill)
}
