package session

import (
	"slices"
	"testing"

	"lifepad/internal/save"
)

func newTestSession() *Session {
	return New(save.NewMemStore(save.RecordSize(GridWidth, GridHeight)))
}

func hasKind(cmds []Command, k CommandKind) bool {
	for _, c := range cmds {
		if c.Kind == k {
			return true
		}
	}
	return false
}

func TestStartsEditingCentered(t *testing.T) {
	s := newTestSession()
	if s.Running() {
		t.Fatal("session must start paused")
	}
	if c := s.Cursor(); c.X != GridWidth/2-1 || c.Y != GridHeight/2-1 {
		t.Fatalf("cursor starts at (%d,%d), expected board center", c.X, c.Y)
	}
	for i, cell := range s.Grid().Cells() {
		if cell != 0 {
			t.Fatalf("cell %d live on a fresh session", i)
		}
	}
}

func TestEdgeTriggeredToggle(t *testing.T) {
	s := newTestSession()
	cx, cy := s.Cursor().X, s.Cursor().Y

	s.Tick(BtnA)
	if !s.Grid().Alive(cx, cy) {
		t.Fatal("press edge should toggle the cell under the cursor")
	}

	// Holding across frames must not fire again.
	for i := 0; i < 5; i++ {
		s.Tick(BtnA)
	}
	if !s.Grid().Alive(cx, cy) {
		t.Fatal("held button fired more than once")
	}

	s.Tick(0)
	s.Tick(BtnA)
	if s.Grid().Alive(cx, cy) {
		t.Fatal("release and re-press should fire again")
	}
}

func TestToggleEmitsDrawCell(t *testing.T) {
	s := newTestSession()
	cx, cy := s.Cursor().X, s.Cursor().Y

	cmds := s.Tick(BtnA)
	want := Command{Kind: CmdDrawCell, X: cx, Y: cy, Alive: true}
	if len(cmds) != 1 || cmds[0] != want {
		t.Fatalf("Tick(A) = %v, expected [%v]", cmds, want)
	}
}

func TestCursorMovementAndDiagonal(t *testing.T) {
	s := newTestSession()
	start := s.Cursor()

	cmds := s.Tick(BtnRight)
	if c := s.Cursor(); c.X != start.X+1 || c.Y != start.Y {
		t.Fatalf("cursor at (%d,%d) after right, expected (%d,%d)", c.X, c.Y, start.X+1, start.Y)
	}
	if !hasKind(cmds, CmdMoveMarker) {
		t.Fatal("movement must emit a marker reposition")
	}

	s.Tick(0)
	s.Tick(BtnUp | BtnLeft)
	if c := s.Cursor(); c.X != start.X || c.Y != start.Y-1 {
		t.Fatalf("two direction edges in one frame should move both axes, cursor at (%d,%d)", c.X, c.Y)
	}

	// Held direction does not keep scrolling.
	s.Tick(BtnUp | BtnLeft)
	if c := s.Cursor(); c.X != start.X || c.Y != start.Y-1 {
		t.Fatal("held direction moved the cursor again")
	}
}

func TestModeTransitionsConsumeFrame(t *testing.T) {
	s := newTestSession()

	// B with A on the same frame: the transition wins, no toggle.
	cmds := s.Tick(BtnB | BtnA)
	if !s.Running() {
		t.Fatal("B edge should start the simulation")
	}
	if !hasKind(cmds, CmdHideMarker) {
		t.Fatal("entering the simulation should hide the marker")
	}
	if hasKind(cmds, CmdDrawCell) {
		t.Fatal("transition frame must skip remaining dispatch")
	}

	s.Tick(0)
	cmds = s.Tick(BtnB)
	if s.Running() {
		t.Fatal("B edge should pause the simulation")
	}
	if !hasKind(cmds, CmdShowMarker) || !hasKind(cmds, CmdMoveMarker) {
		t.Fatal("leaving the simulation should show and reposition the marker")
	}
}

func TestRunningAdvancesEachTick(t *testing.T) {
	s := newTestSession()
	// A blinker away from the cursor.
	s.Grid().Set(5, 4, true)
	s.Grid().Set(5, 5, true)
	s.Grid().Set(5, 6, true)

	s.Tick(BtnB)
	cmds := s.Tick(0)

	if !s.Grid().Alive(4, 5) || !s.Grid().Alive(6, 5) {
		t.Fatal("simulation did not advance while running")
	}
	if !hasKind(cmds, CmdDrawCell) {
		t.Fatal("advancing must emit cell redraws")
	}
}

func TestModeIsolation(t *testing.T) {
	st := save.NewMemStore(save.RecordSize(GridWidth, GridHeight))
	s := New(st)
	// A blinker would oscillate if anything advanced the board.
	s.Grid().Set(5, 4, true)
	s.Grid().Set(5, 5, true)
	s.Grid().Set(5, 6, true)
	before := append([]uint8(nil), s.Grid().Cells()...)

	// Editing mode never advances the simulation.
	for i := 0; i < 10; i++ {
		s.Tick(0)
	}
	if !slices.Equal(before, s.Grid().Cells()) {
		t.Fatal("board advanced while paused")
	}

	// Running mode ignores edit actions.
	s.Tick(BtnB)
	start := s.Cursor()
	s.Tick(BtnA | BtnRight | BtnSelect | BtnStart)
	if c := s.Cursor(); c != start {
		t.Fatal("cursor moved while running")
	}
	if st.ReadByte(0) == save.Marker {
		t.Fatal("unexpected save while running")
	}
}

func TestClearAction(t *testing.T) {
	s := newTestSession()
	s.Grid().Set(1, 1, true)
	s.Grid().Set(2, 2, true)

	cmds := s.Tick(BtnSelect)
	for i, cell := range s.Grid().Cells() {
		if cell != 0 {
			t.Fatalf("cell %d live after clear", i)
		}
	}
	if !hasKind(cmds, CmdClearGrid) {
		t.Fatal("clear must reset the board view")
	}
}

func TestSaveAndReload(t *testing.T) {
	st := save.NewMemStore(save.RecordSize(GridWidth, GridHeight))
	s := New(st)
	if s.Loaded() {
		t.Fatal("fresh store reported a snapshot")
	}

	s.Grid().Set(0, 0, true)
	s.Grid().Set(19, 17, true)
	cmds := s.Tick(BtnStart)
	if !hasKind(cmds, CmdSavedIndicator) {
		t.Fatal("successful save must flash the indicator")
	}

	// A new session over the same store restores the board.
	s2 := New(st)
	if !s2.Loaded() {
		t.Fatal("second session did not find the snapshot")
	}
	if !slices.Equal(s.Grid().Cells(), s2.Grid().Cells()) {
		t.Fatal("restored board differs from the saved one")
	}
	if s2.Running() {
		t.Fatal("mode must reset to paused on every start")
	}
	if c := s2.Cursor(); c.X != GridWidth/2-1 || c.Y != GridHeight/2-1 {
		t.Fatal("cursor must reset to the center on every start")
	}
}
