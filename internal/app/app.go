//go:build ebiten

package app

import (
	"image/color"

	"lifepad/internal/render"
	"lifepad/internal/session"
	"lifepad/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// How many ticks the SAVED notice stays on screen.
const savedFlashTicks = 90

// Game adapts a session to the ebiten.Game interface.
type Game struct {
	sess    *session.Session
	painter *render.GridPainter
	marker  *render.Marker
	status  *ui.Status

	liveColor color.Color
	deadColor color.Color

	scale int

	markerVisible    bool
	markerX, markerY int
	savedTicks       int
}

// New constructs a Game for the provided session.
func New(sess *session.Session, scale int) *Game {
	grid := sess.Grid()
	cur := sess.Cursor()
	return &Game{
		sess:          sess,
		painter:       render.NewGridPainter(grid.W, grid.H),
		marker:        render.NewMarker(color.RGBA{R: 230, G: 70, B: 70, A: 255}),
		status:        ui.NewStatus(),
		liveColor:     color.White,
		deadColor:     color.Black,
		scale:         scale,
		markerVisible: !sess.Running(),
		markerX:       cur.X,
		markerY:       cur.Y,
	}
}

// Update polls the pad once, drives the session one frame forward and
// applies the display commands that frame produced.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	for _, cmd := range g.sess.Tick(pollButtons()) {
		switch cmd.Kind {
		case session.CmdMoveMarker:
			g.markerX, g.markerY = cmd.X, cmd.Y
		case session.CmdShowMarker:
			g.markerVisible = true
		case session.CmdHideMarker:
			g.markerVisible = false
		case session.CmdSavedIndicator:
			g.savedTicks = savedFlashTicks
		}
		// CmdDrawCell and CmdClearGrid need no bookkeeping here: Draw
		// blits the whole board every frame.
	}

	if g.savedTicks > 0 {
		g.savedTicks--
	}
	return nil
}

// Draw renders the board, the cursor marker and the status overlay.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sess.Grid().Cells(), g.liveColor, g.deadColor, g.scale)
	if g.markerVisible {
		g.marker.Draw(screen, g.markerX, g.markerY, g.scale)
	}
	mode := "EDIT"
	if g.sess.Running() {
		mode = "RUN"
	}
	g.status.Draw(screen, mode, g.savedTicks > 0)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	grid := g.sess.Grid()
	return grid.W * g.scale, grid.H * g.scale
}

// pollButtons snapshots the pad state once per frame. Edge detection is
// the session's job, so this reads levels, not presses.
func pollButtons() session.Buttons {
	var b session.Buttons
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		b |= session.BtnUp
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		b |= session.BtnDown
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		b |= session.BtnLeft
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		b |= session.BtnRight
	}
	if ebiten.IsKeyPressed(ebiten.KeyZ) {
		b |= session.BtnA
	}
	if ebiten.IsKeyPressed(ebiten.KeyX) || ebiten.IsKeyPressed(ebiten.KeySpace) {
		b |= session.BtnB
	}
	if ebiten.IsKeyPressed(ebiten.KeyEnter) {
		b |= session.BtnStart
	}
	if ebiten.IsKeyPressed(ebiten.KeyBackspace) || ebiten.IsKeyPressed(ebiten.KeyShiftRight) {
		b |= session.BtnSelect
	}
	return b
}
