// Package imaging provides the pixel data model for the analysis engine and
// the narrow adapter that turns decoded image files into that model.
//
// The central type is PixelBuffer, an immutable width x height grid of 8-bit
// RGBA samples. All analysis stages downstream (classification, labeling,
// measurement) operate on PixelBuffer and never touch image.Image directly.
//
// # Coordinate System
//
// All pixel coordinates in this package are 0-based:
//   - X: horizontal position (0 = leftmost pixel)
//   - Y: vertical position (0 = topmost pixel)
//
// Samples are stored row-major with the origin at the top-left corner.
//
// # Thread Safety
//
// The BufferCache type is safe for concurrent use. PixelBuffer is immutable
// after construction and may be shared freely between goroutines; each
// analysis run reads it without synchronization.
//
// # Decoding
//
// This package registers decoders for PNG, JPEG, GIF, BMP, TIFF and WebP.
// Decoding stops at producing a PixelBuffer; any richer format handling is
// out of scope. Optional normalization (downscaling oversized inputs,
// Gaussian denoise) is applied at load time so the analysis core always sees
// a plain 8-bit RGBA grid.
package imaging
