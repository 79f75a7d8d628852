package core

// Cursor is an editing position on a grid. Movement wraps at the edges,
// so the position is always in-bounds by construction.
type Cursor struct {
	X, Y int
}

// Move shifts the cursor by (dx, dy) within a w×h grid, wrapping each
// axis toroidally. A zero delta leaves that axis untouched.
func (c *Cursor) Move(dx, dy, w, h int) {
	c.X = ((c.X+dx)%w + w) % w
	c.Y = ((c.Y+dy)%h + h) % h
}
