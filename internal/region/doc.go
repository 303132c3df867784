// Package region groups classified grid cells into connected regions and
// measures their geometry.
//
// A region is a maximal 4-connected set of cells sharing the same non-None
// category: only cells sharing an edge are merged, never diagonal contact.
// The 4-connectivity choice is fixed because the perimeter definition
// (exposed edge count) is only consistent with the area count under
// edge-sharing adjacency.
//
// # Determinism
//
// The labeler scans the grid row-major from (0,0), so regions are always
// enumerated in the order their topmost-leftmost cell appears. Within a
// region, cells are listed in breadth-first discovery order from that seed.
// Identical grids always produce identical region sequences.
//
// # Geometry
//
// Area is the cell count. Perimeter is the number of cell edges exposed to
// a non-member: for each member cell, each of its 4 edge-neighbors that is
// not part of the region contributes 1, and neighbors outside the grid
// always count as non-members. Under this definition a single cell has
// perimeter 4, and joining two regions along k shared edges reduces the
// total perimeter by exactly 2k.
package region
