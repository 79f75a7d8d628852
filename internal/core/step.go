package core

// Point identifies a cell by its grid coordinates.
type Point struct {
	X, Y int
}

// Advance computes the next generation in place and returns the cells
// whose state changed.
//
// The update runs in two phases so every neighbor count reflects the
// incoming generation: first all counts are snapshotted into the scratch
// buffer, then the rule is applied from the snapshot. A live cell with a
// count outside {2, 3} dies; a dead cell with a count of exactly 3 is
// born; everything else is unchanged.
func (g *Grid) Advance() []Point {
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			g.counts[g.Index(x, y)] = uint8(g.LiveNeighbors(x, y))
		}
	}

	var changed []Point
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			i := g.Index(x, y)
			n := g.counts[i]
			alive := g.cells[i] != 0
			if alive && n != 2 && n != 3 {
				g.cells[i] = 0
				changed = append(changed, Point{X: x, Y: y})
			} else if !alive && n == 3 {
				g.cells[i] = 1
				changed = append(changed, Point{X: x, Y: y})
			}
		}
	}
	return changed
}
