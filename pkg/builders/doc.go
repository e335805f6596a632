// Package builders models shapes that are still being drawn.
//
// Each builder kind is a small set of state types, one per stage, holding
// exactly the points known at that stage:
//
//	Line, Rectangle, Ellipse                   start and current pointer
//	FociEllipseFirst -> FociEllipseFoci -> FociEllipseFociAndPoint
//	QuadBezStart -> QuadBezCp -> QuadBezEnd
//	CubBezStart -> CubBezCp1 -> CubBezCp2 -> CubBezEnd
//
// [State.Shape] resolves a state to the primitive it currently previews, if
// any. [FromPoints] rebuilds a state from a kind name and its known points,
// the form used by scene files.
package builders
