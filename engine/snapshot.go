package engine

import (
	"time"

	"github.com/lixenwraith/vi-snake/entity"
	"github.com/lixenwraith/vi-snake/geometry"
)

// Snapshot is a read-only copy of session state for renderers and tests
type Snapshot struct {
	SessionID string
	Phase     Phase
	Geometry  geometry.Geometry

	Snake   []entity.Cell
	Ball    entity.Ball
	HasBall bool

	Direction entity.Direction
	Pending   entity.Direction

	Score      int
	FinalScore int
	Speed      time.Duration
	Cause      Cause
	Ticks      uint64

	// VisibilityPaused is set while a pause caused by backgrounding is in effect
	VisibilityPaused bool
	// Settling is set while a resize is waiting to recompute geometry
	Settling bool
}

// Head returns the head cell, zero value when there is no snake
func (s Snapshot) Head() entity.Cell {
	if len(s.Snake) == 0 {
		return entity.Cell{}
	}
	return s.Snake[0]
}

// Observer receives a snapshot after every state-changing operation
// Called with the session lock held: it must not call back into the Session synchronously
type Observer func(Snapshot)
