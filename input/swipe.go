package input

import (
	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/entity"
)

// SwipeTracker turns a mouse drag into direction changes
// Positions are terminal cells; the threshold is in virtual pixels
type SwipeTracker struct {
	threshold int
	colPx     int
	rowPx     int

	active           bool
	anchorX, anchorY int
}

// NewSwipeTracker creates a tracker with the given threshold and cell-to-pixel mapping
// Non-positive values fall back to the defaults
func NewSwipeTracker(threshold, colPx, rowPx int) *SwipeTracker {
	if threshold < 1 {
		threshold = constants.SwipeThreshold
	}
	if colPx < 1 {
		colPx = constants.PixelsPerColumn
	}
	if rowPx < 1 {
		rowPx = constants.PixelsPerRow
	}
	return &SwipeTracker{threshold: threshold, colPx: colPx, rowPx: rowPx}
}

// Active reports whether a drag is in progress
func (s *SwipeTracker) Active() bool {
	return s.active
}

// Press anchors a new drag at cell (x, y)
func (s *SwipeTracker) Press(x, y int) {
	s.active = true
	s.anchorX, s.anchorY = x*s.colPx, y*s.rowPx
}

// Move reports a direction once the drag passes the threshold on either axis
// The dominant axis wins, ties go vertical; the anchor then moves to the current point
func (s *SwipeTracker) Move(x, y int) (entity.Direction, bool) {
	if !s.active {
		return 0, false
	}

	px, py := x*s.colPx, y*s.rowPx
	dx, dy := px-s.anchorX, py-s.anchorY
	adx, ady := abs(dx), abs(dy)

	if adx <= s.threshold && ady <= s.threshold {
		return 0, false
	}

	var d entity.Direction
	switch {
	case adx > ady && dx > 0:
		d = entity.DirRight
	case adx > ady:
		d = entity.DirLeft
	case dy > 0:
		d = entity.DirDown
	default:
		d = entity.DirUp
	}

	s.anchorX, s.anchorY = px, py
	return d, true
}

// Release ends the drag
func (s *SwipeTracker) Release() {
	s.active = false
	s.anchorX, s.anchorY = 0, 0
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
