// Package space provides the embedding-space primitives for contrastive
// alignment runs.
//
//   - [Point]: coordinate in a fixed-dimensional real space
//   - [Space]: mapping from item identifier to [Point]
//   - [Category]: named group of items sharing a display color
//   - [Generator]: seeded producer of the image and text spaces
//
// # Example
//
//	gen := space.NewGenerator(42)
//	image, text := gen.Generate2D()
//	shared := image.Shared(text)
package space
