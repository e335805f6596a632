// Package render groups the output backends for composed sketches.
//
// The [sink] subpackage implements the canvases: SVG through svgo, PNG
// through golang.org/x/image/vector and a JSON recording of the draw calls.
// Pick one with [sink.New] and the format names "svg", "png" or "json".
//
//	c, err := sink.New("png", 320, 200, sink.WithScale(3))
//	if err != nil {
//	    return err
//	}
//	compose.Draw(c, shape, &opts)
//	png, err := c.Encode()
package render
