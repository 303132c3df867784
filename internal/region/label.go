package region

import (
	"context"
	"fmt"

	"github.com/huescan/huescan/internal/classify"
)

// Cell is a single grid coordinate.
type Cell struct {
	X int `json:"x"` // Horizontal position (0 = leftmost)
	Y int `json:"y"` // Vertical position (0 = topmost)
}

// Bounds is the axis-aligned bounding box of a region.
//
// All four edges are inclusive: a single-cell region at (3,5) has
// X1=X2=3 and Y1=Y2=5.
type Bounds struct {
	X1 int `json:"x1"` // Left edge (inclusive)
	Y1 int `json:"y1"` // Top edge (inclusive)
	X2 int `json:"x2"` // Right edge (inclusive)
	Y2 int `json:"y2"` // Bottom edge (inclusive)
}

// Region is a maximal 4-connected set of same-category cells, with its
// measured geometry. Regions are produced once per analysis run and are not
// mutated afterwards.
type Region struct {
	// Category is the shared category of every member cell. Never None.
	Category classify.Category

	// Cells lists the member coordinates in deterministic discovery order.
	Cells []Cell

	// Bounds is the bounding box enclosing all member cells.
	Bounds Bounds

	// Area is the number of member cells.
	Area int

	// Perimeter is the number of exposed cell edges (see package doc).
	Perimeter int
}

// Label finds every connected region of categorized cells in the grid.
//
// The grid is scanned row-major from (0,0); each unvisited non-None cell
// seeds a flood fill that collects its 4-connected component. Regions of
// different categories never merge, and diagonal-only contact never merges.
// An all-None grid yields zero regions.
//
// The context is checked once per scan row. On cancellation no partial
// result is returned.
func Label(ctx context.Context, grid *classify.Grid) ([]Region, error) {
	width, height := grid.Width(), grid.Height()
	seen := make([]bool, width*height)
	regions := []Region{}

	for y := 0; y < height; y++ {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("labeling aborted: %w", err)
		}
		for x := 0; x < width; x++ {
			if seen[y*width+x] {
				continue
			}
			cat := grid.At(x, y)
			if cat == classify.None {
				seen[y*width+x] = true
				continue
			}

			r := Region{
				Category: cat,
				Cells:    flood(grid, seen, x, y, cat),
			}
			r.Bounds = boundsOf(r.Cells)
			r.Area, r.Perimeter = Measure(&r)
			regions = append(regions, r)
		}
	}
	return regions, nil
}

// flood collects the 4-connected component of cells with category cat
// reachable from (startX, startY).
//
// The queue is grown in place and iterated by index, so cell order is a
// deterministic breadth-first traversal from the seed. Only member cells
// are marked seen; cells of other categories stay available for their own
// components.
func flood(grid *classify.Grid, seen []bool, startX, startY int, cat classify.Category) []Cell {
	width, height := grid.Width(), grid.Height()
	cells := []Cell{{X: startX, Y: startY}}
	seen[startY*width+startX] = true

	for k := 0; k < len(cells); k++ {
		c := cells[k]
		// Edge-sharing neighbors only; diagonal contact never merges
		for _, n := range [4]Cell{
			{c.X, c.Y - 1},
			{c.X - 1, c.Y},
			{c.X + 1, c.Y},
			{c.X, c.Y + 1},
		} {
			if n.X < 0 || n.X >= width || n.Y < 0 || n.Y >= height {
				continue
			}
			idx := n.Y*width + n.X
			if seen[idx] || grid.At(n.X, n.Y) != cat {
				continue
			}
			seen[idx] = true
			cells = append(cells, n)
		}
	}
	return cells
}

// boundsOf computes the inclusive bounding box of a non-empty cell list.
func boundsOf(cells []Cell) Bounds {
	b := Bounds{X1: cells[0].X, Y1: cells[0].Y, X2: cells[0].X, Y2: cells[0].Y}
	for _, c := range cells[1:] {
		if c.X < b.X1 {
			b.X1 = c.X
		}
		if c.X > b.X2 {
			b.X2 = c.X
		}
		if c.Y < b.Y1 {
			b.Y1 = c.Y
		}
		if c.Y > b.Y2 {
			b.Y2 = c.Y
		}
	}
	return b
}
