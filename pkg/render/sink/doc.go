// Package sink provides drawing surfaces for composed sketches.
//
// # Overview
//
// A "sink" receives the fill and stroke calls emitted by package compose and
// turns them into a final output format. This package provides:
//
//   - SVG: vector output written with github.com/ajstarks/svgo
//   - PNG: raster output rasterised with golang.org/x/image/vector
//   - JSON: the recorded draw calls with paths in scene coordinates
//
// Every sink implements [Canvas], so callers draw once and encode:
//
//	c, err := sink.New("svg", 400, 300, sink.WithBackground(white))
//	if err != nil {
//	    return err
//	}
//	compose.Draw(c, shape, &opts)
//	data, err := c.Encode()
//
// # Options
//
//   - [WithBackground]: paint the canvas before drawing
//   - [WithScale]: pixel density of PNG output (default 2)
//   - [WithoutIndicators]: drop builder handles from the output
//
// # Transforms
//
// Rectangles and ellipses are drawn inside a pushed transform. The SVG sink
// emits the transform as a group so that stroke widths scale with the shape,
// matching the raster sink, which maps every point and scales widths by the
// transform's geometric mean scale.
package sink
