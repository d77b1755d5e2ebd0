// Package render draws session snapshots onto a tcell screen
package render

import (
	"fmt"
	"sync/atomic"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/engine/status"
	"github.com/lixenwraith/vi-snake/entity"
)

const (
	glyphBlock = '█'
	glyphBall  = '●'
)

// arrow glyphs in entity.Direction order
var arrows = [...]rune{'↑', '→', '↓', '←'}

// TerminalRenderer maps the virtual pixel field onto terminal cells
// One column spans colPx pixels, one row spans rowPx pixels
type TerminalRenderer struct {
	screen tcell.Screen
	colPx  int
	rowPx  int

	// Cached metric pointers (zero-lock reads)
	statGames *atomic.Int64
	statBalls *atomic.Int64
}

// NewTerminalRenderer creates a renderer; non-positive mappings use the defaults
func NewTerminalRenderer(screen tcell.Screen, colPx, rowPx int, reg *status.Registry) *TerminalRenderer {
	if colPx < 1 {
		colPx = constants.PixelsPerColumn
	}
	if rowPx < 1 {
		rowPx = constants.PixelsPerRow
	}
	if reg == nil {
		reg = status.NewRegistry()
	}
	return &TerminalRenderer{
		screen:    screen,
		colPx:     colPx,
		rowPx:     rowPx,
		statGames: reg.Ints.Get("engine.games"),
		statBalls: reg.Ints.Get("engine.balls"),
	}
}

// Viewport converts the current screen size to the play field in virtual pixels
// The status bar rows are excluded
func (r *TerminalRenderer) Viewport() (width, height float64) {
	cols, rows := r.screen.Size()
	return ViewportFor(cols, rows, r.colPx, r.rowPx)
}

// ViewportFor converts a terminal size to virtual pixels
func ViewportFor(cols, rows, colPx, rowPx int) (width, height float64) {
	rows -= constants.StatusBarRows
	if rows < 0 {
		rows = 0
	}
	if cols < 0 {
		cols = 0
	}
	return float64(cols * colPx), float64(rows * rowPx)
}

// RenderFrame renders the entire frame for one snapshot
func (r *TerminalRenderer) RenderFrame(snap engine.Snapshot) {
	r.screen.Clear()
	defaultStyle := tcell.StyleDefault.Background(RgbBackground)

	r.drawField(snap, defaultStyle)

	if snap.HasBall && snap.Phase != engine.PhaseIdle {
		ballStyle := defaultStyle.Foreground(RgbBall)
		r.fillSquare(snap.Ball.X, snap.Ball.Y, snap.Ball.Size, glyphBall, ballStyle)
	}

	r.drawSnake(snap, defaultStyle)
	r.drawStatusBar(snap, defaultStyle)
	r.drawOverlay(snap)

	r.screen.Show()
}

// fieldRows is the number of terminal rows available to the play field
func (r *TerminalRenderer) fieldRows() int {
	_, h := r.screen.Size()
	rows := h - constants.StatusBarRows
	if rows < 0 {
		return 0
	}
	return rows
}

// drawField paints the field background and marks columns/rows outside the geometry
func (r *TerminalRenderer) drawField(snap engine.Snapshot, defaultStyle tcell.Style) {
	w, _ := r.screen.Size()
	rows := r.fieldRows()
	edgeStyle := tcell.StyleDefault.Background(RgbFieldEdge)

	maxCol := int(snap.Geometry.Width) / r.colPx
	maxRow := int(snap.Geometry.Height) / r.rowPx

	for y := 0; y < rows; y++ {
		for x := 0; x < w; x++ {
			style := defaultStyle
			if x >= maxCol || y >= maxRow {
				style = edgeStyle
			}
			r.screen.SetContent(x, y, ' ', nil, style)
		}
	}
}

func (r *TerminalRenderer) drawSnake(snap engine.Snapshot, defaultStyle tcell.Style) {
	if len(snap.Snake) == 0 {
		return
	}
	cell := snap.Geometry.CellSize

	bodyColor, headColor := RgbSnakeBody, RgbSnakeHead
	if snap.Phase == engine.PhaseGameOver {
		bodyColor, headColor = RgbSnakeDead, RgbSnakeDead
	}

	// Tail first so the head wins on shared terminal cells
	for i := len(snap.Snake) - 1; i > 0; i-- {
		c := snap.Snake[i]
		r.fillSquare(c.X, c.Y, cell, glyphBlock, defaultStyle.Foreground(bodyColor))
	}
	head := snap.Snake[0]
	r.fillSquare(head.X, head.Y, cell, glyphBlock, defaultStyle.Foreground(headColor).Bold(true))
}

// fillSquare fills every terminal cell a size-pixel square at (x, y) touches
func (r *TerminalRenderer) fillSquare(x, y, size int, ch rune, style tcell.Style) {
	if size < 1 {
		size = 1
	}
	w, _ := r.screen.Size()
	rows := r.fieldRows()

	c0, c1 := floorDiv(x, r.colPx), floorDiv(x+size-1, r.colPx)
	r0, r1 := floorDiv(y, r.rowPx), floorDiv(y+size-1, r.rowPx)

	for row := max(r0, 0); row <= r1 && row < rows; row++ {
		for col := max(c0, 0); col <= c1 && col < w; col++ {
			r.screen.SetContent(col, row, ch, nil, style)
		}
	}
}

// CellAt maps a pixel coordinate to its terminal cell
func (r *TerminalRenderer) CellAt(p entity.Cell) (col, row int) {
	return floorDiv(p.X, r.colPx), floorDiv(p.Y, r.rowPx)
}

// drawStatusBar draws phase, score, speed and the direction indicator on the bottom row
func (r *TerminalRenderer) drawStatusBar(snap engine.Snapshot, defaultStyle tcell.Style) {
	w, h := r.screen.Size()
	y := h - 1
	if y < 0 {
		return
	}

	barStyle := defaultStyle.Foreground(RgbStatusBar)
	for x := 0; x < w; x++ {
		r.screen.SetContent(x, y, ' ', nil, barStyle)
	}

	phaseStyle := tcell.StyleDefault.Foreground(RgbStatusText).Background(PhaseBackground(snap.Phase))
	x := r.drawText(0, y, PhaseText(snap.Phase), phaseStyle)

	score := snap.Score
	if snap.Phase == engine.PhaseGameOver {
		score = snap.FinalScore
	}
	x = r.drawText(x, y, fmt.Sprintf(" Score: %d ", score), barStyle)
	if snap.Phase != engine.PhaseIdle {
		x = r.drawText(x, y, fmt.Sprintf(" Speed: %dms ", snap.Speed.Milliseconds()), barStyle)
	}

	// Queued heading highlighted, committed heading bold
	if snap.Phase == engine.PhaseRunning || snap.Phase == engine.PhasePaused {
		x = r.drawText(x, y, " ", barStyle)
		for d, glyph := range arrows {
			style := barStyle.Foreground(RgbDirectionIdle)
			if entity.Direction(d) == snap.Direction {
				style = barStyle.Bold(true)
			}
			if entity.Direction(d) == snap.Pending {
				style = style.Foreground(RgbDirectionOn).Reverse(true)
			}
			r.screen.SetContent(x, y, glyph, nil, style)
			x++
		}
	}

	games := fmt.Sprintf(" Games: %d  Balls: %d ", r.statGames.Load(), r.statBalls.Load())
	if start := w - len(games); start > x {
		r.drawText(start, y, games, barStyle)
	}
}

// drawOverlay centres the pause, game over or idle message on the field
func (r *TerminalRenderer) drawOverlay(snap engine.Snapshot) {
	var lines []string
	switch snap.Phase {
	case engine.PhaseIdle:
		lines = []string{"VI-SNAKE", "ENTER TO START"}
	case engine.PhasePaused:
		switch {
		case snap.Settling:
			lines = []string{"RESIZING"}
		case snap.VisibilityPaused:
			lines = []string{"PAUSED", "WELCOME BACK - SPACE TO RESUME"}
		default:
			lines = []string{"PAUSED", "SPACE TO RESUME"}
		}
	case engine.PhaseGameOver:
		lines = []string{
			"GAME OVER",
			fmt.Sprintf("FINAL SCORE: %d", snap.FinalScore),
			"ENTER TO RESTART",
		}
	default:
		return
	}

	w, _ := r.screen.Size()
	rows := r.fieldRows()
	style := tcell.StyleDefault.Foreground(RgbOverlayText).Background(RgbOverlayBg).Bold(true)

	top := (rows - len(lines)) / 2
	for i, line := range lines {
		text := " " + line + " "
		y := top + i
		if y < 0 || y >= rows {
			continue
		}
		x := (w - len([]rune(text))) / 2
		if x < 0 {
			x = 0
		}
		r.drawText(x, y, text, style)
	}
}

// drawText writes s starting at (x, y), clipped to the screen width; returns the next column
func (r *TerminalRenderer) drawText(x, y int, s string, style tcell.Style) int {
	w, _ := r.screen.Size()
	for _, ch := range s {
		if x >= w {
			break
		}
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
	return x
}

// PhaseText returns the status label for a phase
func PhaseText(p engine.Phase) string {
	switch p {
	case engine.PhaseRunning:
		return constants.TextRunning
	case engine.PhasePaused:
		return constants.TextPaused
	case engine.PhaseGameOver:
		return constants.TextGameOver
	default:
		return constants.TextIdle
	}
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
