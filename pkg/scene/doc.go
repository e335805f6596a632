// Package scene reads sketch documents: a canvas, a default style, finished
// shapes and in-progress builder states.
//
// # Format
//
// Scenes are written in TOML (or the equivalent JSON object):
//
//	width = 400
//	height = 300
//	background = "#ffffff"
//
//	[options]
//	seed = 42
//	stroke_color = "#1f2933"
//	fill_color = "#e63946"
//
//	[[shape]]
//	kind = "rectangle"
//	center = [100, 80]
//	half_extents = [60, 40]
//	angle = 10
//
//	[[builder]]
//	kind = "cubbez"
//	points = [[10, 10], [50, 90]]
//
// Shape kinds and their fields:
//
//   - line: start, end
//   - rectangle: center, half_extents, angle (degrees)
//   - ellipse: center, radii, angle (degrees)
//   - foci-ellipse: foci (two points), point
//   - quadbez: start, cp, end
//   - cubbez: start, cp1, cp2, end
//
// Builders use the same kind names and list the points placed so far; see
// [builders.FromPoints] for how many each kind accepts.
//
// Any shape or builder may carry an options table that overrides the scene
// style. Colours are "#rgb", "#rrggbb", "#rrggbbaa" or one of the names in
// [ParseColor]; "none" disables a stroke or fill pass.
//
// # Seeds
//
// An item without its own seed draws with the scene seed plus its position,
// shapes first and then builders, so identical shapes in one scene do not
// share jitter. A scene is reproducible when every item ends up seeded.
package scene
