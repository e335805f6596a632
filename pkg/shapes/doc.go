// Package shapes defines the exact geometric primitives that sketchy renders.
//
// A [Shape] is one of [Line], [Rectangle], [Ellipse], [QuadraticBezier] or
// [CubicBezier]. The set is closed: code that needs per-shape behavior
// switches over the concrete types. Rectangles and ellipses are centered on
// the origin of their own coordinate system and carry an affine Transform
// that places them in the scene.
package shapes
