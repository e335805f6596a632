// Package pkg holds the libraries behind sketchy, a renderer that draws
// geometric shapes as if sketched by hand.
//
// # Overview
//
// The libraries are layered from plain geometry up to a cached rendering
// pipeline:
//
//  1. [geom], [bezpath] - points, affine transforms and Bézier paths
//  2. [rough] - the randomised stroke and fill generators
//  3. [shapes], [builders] - shape types and interactive shape builders
//  4. [compose] - turns shapes and builders into draw operations
//  5. [render/sink] - SVG, PNG and JSON canvases
//  6. [scene], [pipeline], [cache] - scene files, rendering and artifact caching
//
// # Architecture
//
//	scene file (TOML or JSON)
//	         ↓
//	    [scene] package (decode, validate, resolve options and seeds)
//	         ↓
//	    [compose] package (shape → rough paths → draw ops)
//	         ↓
//	    [render/sink] package (SVG, PNG, JSON)
//
// [pipeline.Runner] drives these steps and stores the artifacts of seeded
// scenes in a [cache.Cache].
//
// # Quick Start
//
//	s, err := scene.Load("house.toml")
//	if err != nil {
//	    return err
//	}
//	svg, err := pipeline.RenderScene(s, pipeline.FormatSVG, pipeline.Options{})
//
// Drawing a single shape without a scene:
//
//	opts := rough.DefaultOptions().WithSeed(7)
//	c, _ := sink.New("svg", 200, 120)
//	compose.Draw(c, shapes.NewEllipse(geom.Pt(100, 60), geom.Pt(80, 40), 0), &opts)
//	out, _ := c.Encode()
package pkg
