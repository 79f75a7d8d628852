// Package save persists a single board snapshot to a byte-addressed
// store. The record layout is one presence byte followed by one byte per
// cell, 'L' for live and 'D' for dead, written column by column so the
// byte at address 1 + x*H + y holds cell (x, y).
package save

import "lifepad/internal/core"

// Marker is the presence byte written at address 0 when a snapshot exists.
const Marker = 's'

const (
	liveByte = 'L'
	deadByte = 'D'
)

// RecordSize returns the snapshot size in bytes for a w×h board.
func RecordSize(w, h int) int { return 1 + w*h }

// Store is a byte-addressed storage region. The medium is read-only
// except inside WithWriteAccess, which enables writes before body runs
// and disables them again on every exit path. Writes issued outside the
// access window are ignored.
type Store interface {
	ReadByte(addr int) byte
	WriteByte(addr int, b byte)
	WithWriteAccess(body func()) error
}

// Save writes the presence marker and every cell state to the store.
// The returned error is the store's flush result.
func Save(st Store, g *core.Grid) error {
	return st.WithWriteAccess(func() {
		st.WriteByte(0, Marker)
		addr := 1
		for x := 0; x < g.W; x++ {
			for y := 0; y < g.H; y++ {
				if g.Alive(x, y) {
					st.WriteByte(addr, liveByte)
				} else {
					st.WriteByte(addr, deadByte)
				}
				addr++
			}
		}
	})
}

// Load restores cell states from the store. It reports false and leaves
// the grid untouched when no snapshot is present. Decoding is permissive:
// any byte other than 'L' counts as dead.
func Load(st Store, g *core.Grid) bool {
	if st.ReadByte(0) != Marker {
		return false
	}
	addr := 1
	for x := 0; x < g.W; x++ {
		for y := 0; y < g.H; y++ {
			g.Set(x, y, st.ReadByte(addr) == liveByte)
			addr++
		}
	}
	return true
}
