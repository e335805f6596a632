// Package compose connects the rough generators to a drawing surface.
//
// For every primitive in package shapes and every builder state in package
// builders it provides two operations:
//
//   - a bounds function ([Bounds], [BuilderBounds]) returning a box that
//     contains everything the draw function can emit
//   - a draw function ([Draw], [DrawBuilder]) that runs the generators and
//     hands the resulting paths to a [Renderer]
//
// Each draw call builds its own [rough.RNG] from [rough.Options.Seed], so
// shapes drawn with the same options and seed always look the same. Fills
// are drawn before outlines and use a separate stream from the same seed.
//
// Builder states additionally draw position and vector handles through an
// [Indicators] implementation.
package compose
