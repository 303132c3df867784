package classify

import (
	"context"
	"fmt"
	"runtime"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/sync/errgroup"

	"github.com/huescan/huescan/internal/imaging"
)

// Grid is a width x height grid of categories, one per pixel, with the same
// dimensions as the buffer it was derived from. A Grid is never mutated
// after Classify returns it.
type Grid struct {
	width  int
	height int
	cells  []Category // row-major
}

// NewGrid builds a grid from a row-major cell slice. The slice is copied.
// Returns an error if len(cells) does not equal width*height.
func NewGrid(width, height int, cells []Category) (*Grid, error) {
	if len(cells) != width*height {
		return nil, fmt.Errorf("grid cells length %d does not match %dx%d", len(cells), width, height)
	}
	g := &Grid{width: width, height: height, cells: make([]Category, len(cells))}
	copy(g.cells, cells)
	return g, nil
}

// Width returns the grid width in cells.
func (g *Grid) Width() int { return g.width }

// Height returns the grid height in cells.
func (g *Grid) Height() int { return g.height }

// At returns the category at (x, y). No bounds checking is performed;
// callers must keep coordinates within [0, Width) x [0, Height).
func (g *Grid) At(x, y int) Category {
	return g.cells[y*g.width+x]
}

// Classify maps every pixel of buf to a category under cfg.
//
// Rows are partitioned across up to GOMAXPROCS workers; each worker writes a
// disjoint row range of the output, so the result is bit-identical
// regardless of scheduling. The context is checked once per row, never
// mid-pixel. The config is assumed valid; the pipeline validates it before
// any pixel work.
func Classify(ctx context.Context, buf *imaging.PixelBuffer, cfg Config) (*Grid, error) {
	width, height := buf.Width(), buf.Height()
	grid := &Grid{
		width:  width,
		height: height,
		cells:  make([]Category, width*height),
	}

	workers := runtime.GOMAXPROCS(0)
	if workers > height {
		workers = height
	}
	rowsPerWorker := (height + workers - 1) / workers

	g, ctx := errgroup.WithContext(ctx)
	for start := 0; start < height; start += rowsPerWorker {
		end := start + rowsPerWorker
		if end > height {
			end = height
		}
		g.Go(func() error {
			for y := start; y < end; y++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				row := grid.cells[y*width : (y+1)*width]
				for x := 0; x < width; x++ {
					row[x] = classifyPixel(buf, x, y, cfg)
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("classification aborted: %w", err)
	}
	return grid, nil
}

// classifyPixel applies the hue/saturation/value rule to a single pixel.
//
// Red is tested before Blue; together with the validated non-overlap of the
// two ranges this guarantees exactly one category per pixel.
func classifyPixel(buf *imaging.PixelBuffer, x, y int, cfg Config) Category {
	r, g, b, a := buf.RGBA(x, y)
	if a == 0 {
		return None
	}

	c := colorful.Color{
		R: float64(r) / 255.0,
		G: float64(g) / 255.0,
		B: float64(b) / 255.0,
	}
	h, s, v := c.Hsv()

	// Hue is undefined for achromatic pixels
	if s == 0 {
		return None
	}
	if s < cfg.MinSaturation || v < cfg.MinValue {
		return None
	}

	switch {
	case cfg.RedHue.Contains(h):
		return Red
	case cfg.BlueHue.Contains(h):
		return Blue
	}
	return None
}
