// Package rough generates sketchy, hand-drawn looking paths from exact geometry.
//
// # Overview
//
// The generators in this package take a precise primitive (a segment, a cubic or
// quadratic Bézier, an ellipse or a polygon), an [Options] value and an [RNG],
// and return [bezpath.Path] data that wobbles around the ideal geometry:
//
//   - [Line] and [DoubleLine]: one or two perturbed passes of a segment
//   - [QuadraticBezier] and [CubicBezier]: jittered control points, subdivided
//     into chords that each run through the line engine
//   - [Ellipse]: parametric samples perturbed and fitted into a closed curve,
//     plus the raw sample points for filling
//   - [FillPolygon]: hachure, cross-hatch or solid fills for any simple polygon
//
// The approach follows Rough.js (https://roughjs.com).
//
// # Reproducible Randomness
//
// Every draw call creates one [RNG] with [NewRNG] and threads it through all
// generator calls in a fixed order. With a seed the whole output is a pure
// function of the seed, the options and the geometry:
//
//	seed := uint64(42)
//	opts := rough.DefaultOptions()
//	opts.Seed = &seed
//	rng := rough.NewRNG(opts.Seed)
//	p := rough.DoubleLine(geom.Pt(0, 0), geom.Pt(100, 0), &opts, rng)
//
// Without a seed the stream is drawn from runtime entropy.
//
// # Multistroke
//
// [Options.Multistroke] is the single switch between one and two overlaid
// passes. Curve and ellipse generators consult it themselves; for straight
// segments the caller picks [DoubleLine] or a single [Line].
package rough
