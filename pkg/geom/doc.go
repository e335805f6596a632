// Package geom provides the float64 planar geometry shared by the sketchy packages.
//
// # Types
//
//   - [Point]: a position or displacement in the plane
//   - [AABB]: an axis-aligned bounding box with loosening and union helpers
//   - [Affine]: a 2x3 affine transform backed by golang.org/x/image/math/f64
//
// All values are plain structs passed by value. Nothing in this package
// allocates beyond the slices it is handed.
package geom
