// Package session owns the editing/running state machine that ties the
// grid, cursor and save store together. The machine is driven by Tick,
// which takes one input snapshot per frame and returns the display
// commands that frame produced, so the whole loop is testable without a
// window.
package session

import (
	"lifepad/internal/core"
	"lifepad/internal/save"
)

// Reference board dimensions. The rule set and board size are fixed at
// compile time.
const (
	GridWidth  = 20
	GridHeight = 18
)

// Buttons is a bitmask of the eight logical pad buttons. Bit positions
// follow the classic joypad register layout.
type Buttons uint8

const (
	BtnA Buttons = 1 << iota
	BtnB
	BtnSelect
	BtnStart
	BtnRight
	BtnLeft
	BtnUp
	BtnDown
)

// Has reports whether every button in b is set.
func (bs Buttons) Has(b Buttons) bool { return bs&b == b }

// CommandKind discriminates display commands emitted by Tick.
type CommandKind uint8

const (
	// CmdDrawCell redraws one cell with its current state.
	CmdDrawCell CommandKind = iota
	// CmdClearGrid resets the whole board view to dead.
	CmdClearGrid
	// CmdMoveMarker repositions the cursor marker to a cell.
	CmdMoveMarker
	// CmdShowMarker makes the cursor marker visible.
	CmdShowMarker
	// CmdHideMarker hides the cursor marker.
	CmdHideMarker
	// CmdSavedIndicator asks the display to flash the saved notice.
	CmdSavedIndicator
)

// Command is one display request. X, Y and Alive are meaningful for
// CmdDrawCell; X and Y for CmdMoveMarker.
type Command struct {
	Kind  CommandKind
	X, Y  int
	Alive bool
}

// Session is the per-run state: the board, the editing cursor, the
// run/pause mode and the input snapshots used for edge detection.
type Session struct {
	grid   *core.Grid
	cursor core.Cursor

	running bool
	prev    Buttons
	cur     Buttons

	store  save.Store
	loaded bool
}

// New builds a session over the given store. A saved board is restored
// when the store holds one; otherwise the board starts all dead. The
// session always starts paused, with the cursor at the board center.
func New(st save.Store) *Session {
	s := &Session{
		grid:  core.NewGrid(GridWidth, GridHeight),
		store: st,
		cursor: core.Cursor{
			X: GridWidth/2 - 1,
			Y: GridHeight/2 - 1,
		},
	}
	s.loaded = save.Load(st, s.grid)
	return s
}

// Grid exposes the board.
func (s *Session) Grid() *core.Grid { return s.grid }

// Cursor returns the current editing position.
func (s *Session) Cursor() core.Cursor { return s.cursor }

// Running reports whether the simulation is advancing.
func (s *Session) Running() bool { return s.running }

// Loaded reports whether New restored a saved board.
func (s *Session) Loaded() bool { return s.loaded }

// Tick processes one frame of input and returns the display commands it
// produced. The input snapshots are rotated exactly once per call,
// before any dispatch, so each physical press fires its action on
// exactly one frame.
func (s *Session) Tick(input Buttons) []Command {
	s.prev = s.cur
	s.cur = input
	pressed := s.cur &^ s.prev

	if s.running {
		return s.tickRunning(pressed)
	}
	return s.tickEditing(pressed)
}

func (s *Session) tickEditing(pressed Buttons) []Command {
	// Switching to the simulation consumes the whole frame.
	if pressed.Has(BtnB) {
		s.running = true
		return []Command{{Kind: CmdHideMarker}}
	}

	var cmds []Command

	if pressed.Has(BtnSelect) {
		s.grid.Clear()
		cmds = append(cmds, Command{Kind: CmdClearGrid})
	}
	if pressed.Has(BtnStart) {
		if err := save.Save(s.store, s.grid); err == nil {
			cmds = append(cmds, Command{Kind: CmdSavedIndicator})
		}
	}
	if pressed.Has(BtnA) {
		alive := s.grid.Toggle(s.cursor.X, s.cursor.Y)
		cmds = append(cmds, Command{Kind: CmdDrawCell, X: s.cursor.X, Y: s.cursor.Y, Alive: alive})
	}

	// The four directions are checked independently, so two edges on
	// different axes in the same frame move diagonally.
	dx, dy := 0, 0
	if pressed.Has(BtnUp) {
		dy = -1
	}
	if pressed.Has(BtnDown) {
		dy = 1
	}
	if pressed.Has(BtnLeft) {
		dx = -1
	}
	if pressed.Has(BtnRight) {
		dx = 1
	}
	if dx != 0 || dy != 0 {
		s.cursor.Move(dx, dy, s.grid.W, s.grid.H)
		cmds = append(cmds, Command{Kind: CmdMoveMarker, X: s.cursor.X, Y: s.cursor.Y})
	}
	return cmds
}

func (s *Session) tickRunning(pressed Buttons) []Command {
	if pressed.Has(BtnB) {
		s.running = false
		return []Command{
			{Kind: CmdShowMarker},
			{Kind: CmdMoveMarker, X: s.cursor.X, Y: s.cursor.Y},
		}
	}

	var cmds []Command
	for _, p := range s.grid.Advance() {
		cmds = append(cmds, Command{Kind: CmdDrawCell, X: p.X, Y: p.Y, Alive: s.grid.Alive(p.X, p.Y)})
	}
	return cmds
}
