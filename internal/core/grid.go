package core

// Grid stores the alive/dead state of a W×H toroidal cell field in
// row-major order, together with the neighbor topology and the scratch
// buffer used while advancing a generation.
type Grid struct {
	W, H int
	// cells holds 1 for a live cell and 0 for a dead one.
	cells []uint8
	// neighbors holds 8 precomputed cell indices per cell, stride 8.
	// Computed once at construction and never touched again.
	neighbors []int
	// counts is valid only between the two phases of Advance.
	counts []uint8
}

// NewGrid allocates an all-dead grid and precomputes each cell's 8
// toroidal neighbor indices. Dimensions below 3 would alias neighbors,
// so they are clamped.
func NewGrid(w, h int) *Grid {
	if w < 3 {
		w = 3
	}
	if h < 3 {
		h = 3
	}
	g := &Grid{
		W:         w,
		H:         h,
		cells:     make([]uint8, w*h),
		neighbors: make([]int, 8*w*h),
		counts:    make([]uint8, w*h),
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			n := g.Index(x, y) * 8
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if dx == 0 && dy == 0 {
						continue
					}
					nx, ny := g.Wrap(x+dx, y+dy)
					g.neighbors[n] = g.Index(nx, ny)
					n++
				}
			}
		}
	}
	return g
}

// Cells exposes the backing state slice so callers can read values directly.
func (g *Grid) Cells() []uint8 { return g.cells }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid) Index(x, y int) int { return y*g.W + x }

// Wrap applies toroidal wrapping to the provided coordinates.
func (g *Grid) Wrap(x, y int) (int, int) {
	x = (x%g.W + g.W) % g.W
	y = (y%g.H + g.H) % g.H
	return x, y
}

// Neighbors returns the 8 neighbor indices of the cell at linear index i.
func (g *Grid) Neighbors(i int) []int {
	return g.neighbors[i*8 : i*8+8]
}

// LiveNeighbors counts the live cells among the 8 neighbors of (x, y).
func (g *Grid) LiveNeighbors(x, y int) int {
	n := 0
	for _, ni := range g.Neighbors(g.Index(x, y)) {
		n += int(g.cells[ni])
	}
	return n
}

// Alive reports whether the cell at (x, y) is live.
func (g *Grid) Alive(x, y int) bool { return g.cells[g.Index(x, y)] != 0 }

// Set forces the cell at (x, y) to the given state.
func (g *Grid) Set(x, y int, alive bool) {
	if alive {
		g.cells[g.Index(x, y)] = 1
		return
	}
	g.cells[g.Index(x, y)] = 0
}

// Toggle flips the state of the cell at (x, y) and reports the new state.
func (g *Grid) Toggle(x, y int) bool {
	i := g.Index(x, y)
	g.cells[i] ^= 1
	return g.cells[i] != 0
}

// Clear sets every cell to dead.
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = 0
	}
}
