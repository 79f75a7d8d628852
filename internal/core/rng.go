package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Bool returns a random boolean value.
func (r *RNG) Bool() bool {
	return r.r.IntN(2) == 1
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }

// Randomize fills the grid, making each cell live with probability density.
func (g *Grid) Randomize(rng *RNG, density float64) {
	if density <= 0 {
		g.Clear()
		return
	}
	if density > 1 {
		density = 1
	}
	src := rng.Source()
	for i := range g.cells {
		if src.Float64() < density {
			g.cells[i] = 1
		} else {
			g.cells[i] = 0
		}
	}
}
