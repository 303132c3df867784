package imaging

import (
	"errors"
	"fmt"
	"image"
)

// ErrInvalidInput reports input that fails validation before any analysis
// work starts: nil images, zero or negative dimensions, empty buffers.
// Wrapped errors can be tested with errors.Is.
var ErrInvalidInput = errors.New("invalid input")

// PixelBuffer is an immutable width x height grid of 8-bit RGBA samples.
//
// Samples are stored row-major with the origin at the top-left corner.
// Dimensions are always at least 1x1; construction fails otherwise.
// A PixelBuffer is never mutated after construction and is safe to share
// across concurrent analysis runs.
type PixelBuffer struct {
	width  int
	height int
	pix    []uint8 // RGBA interleaved, 4 bytes per sample, row-major
}

// FromImage converts a decoded image into a PixelBuffer.
//
// The native color model is converted to 8-bit RGBA; 16-bit samples are
// scaled down by right-shifting 8 bits. The image's bounds offset is
// discarded, so buffer coordinate (0,0) always maps to the image's top-left
// pixel regardless of its Bounds().Min.
//
// Returns ErrInvalidInput (wrapped) if img is nil or has a zero-area bounds.
func FromImage(img image.Image) (*PixelBuffer, error) {
	if img == nil {
		return nil, fmt.Errorf("%w: nil image", ErrInvalidInput)
	}
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%w: image dimensions %dx%d, need at least 1x1", ErrInvalidInput, width, height)
	}

	buf := &PixelBuffer{
		width:  width,
		height: height,
		pix:    make([]uint8, width*height*4),
	}

	// Fast path for the most common decode result
	if rgba, ok := img.(*image.RGBA); ok && bounds.Min.X == 0 && bounds.Min.Y == 0 && rgba.Stride == width*4 {
		copy(buf.pix, rgba.Pix)
		return buf, nil
	}

	i := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, a := img.At(x, y).RGBA()
			buf.pix[i] = uint8(r >> 8)
			buf.pix[i+1] = uint8(g >> 8)
			buf.pix[i+2] = uint8(b >> 8)
			buf.pix[i+3] = uint8(a >> 8)
			i += 4
		}
	}
	return buf, nil
}

// Width returns the buffer width in pixels.
func (b *PixelBuffer) Width() int { return b.width }

// Height returns the buffer height in pixels.
func (b *PixelBuffer) Height() int { return b.height }

// RGBA returns the 8-bit components of the sample at (x, y).
//
// No bounds checking is performed; callers must keep coordinates within
// [0, Width) x [0, Height). This keeps the per-pixel hot path free of
// branches during classification.
func (b *PixelBuffer) RGBA(x, y int) (r, g, bl, a uint8) {
	i := (y*b.width + x) * 4
	return b.pix[i], b.pix[i+1], b.pix[i+2], b.pix[i+3]
}
