package region

// Measure computes the area and perimeter of a region from its cell list.
//
// Area is the cell count. Perimeter counts, over all member cells, the
// 4 edge-neighbors that are not members themselves; a neighbor beyond the
// grid boundary is never a member and therefore always contributes. This
// exposed-edge definition is exactly consistent with the area count under
// 4-connectivity: a single cell measures (1, 4), and each edge shared by
// two member cells removes 2 from the perimeter sum.
func Measure(r *Region) (area, perimeter int) {
	member := make(map[Cell]struct{}, len(r.Cells))
	for _, c := range r.Cells {
		member[c] = struct{}{}
	}

	area = len(r.Cells)
	for _, c := range r.Cells {
		for _, n := range [4]Cell{
			{c.X, c.Y - 1},
			{c.X - 1, c.Y},
			{c.X + 1, c.Y},
			{c.X, c.Y + 1},
		} {
			if _, ok := member[n]; !ok {
				perimeter++
			}
		}
	}
	return area, perimeter
}
