package engine

import (
	"math"
	"time"

	"github.com/lixenwraith/vi-snake/entity"
	"github.com/lixenwraith/vi-snake/geometry"
)

// BallSpawner places a new ball clear of the snake
// Implemented by *spawn.Spawner
type BallSpawner interface {
	Spawn(geo geometry.Geometry, snake *entity.Snake) (entity.Ball, bool)
}

// Outcome classifies a tick
type Outcome uint8

const (
	OutcomeMoved Outcome = iota
	OutcomeGrew
	OutcomeDied
)

func (o Outcome) String() string {
	switch o {
	case OutcomeMoved:
		return "moved"
	case OutcomeGrew:
		return "grew"
	case OutcomeDied:
		return "died"
	default:
		return "unknown"
	}
}

// StepResult reports what one tick did
type StepResult struct {
	Outcome Outcome
	Cause   Cause
	// Head is the candidate head, also set when the tick was fatal
	Head entity.Cell
	// SpeedChanged is set when feeding shortened the tick interval
	SpeedChanged bool
	// Fallback is set when the respawned ball used the fallback position
	Fallback bool
}

// Step advances a running session by one tick
// On a fatal move the state is frozen: snake, ball and score keep their pre-tick values
func Step(st *State, spawner BallSpawner, settings Settings) StepResult {
	st.Direction = st.Pending
	st.Ticks++

	cell := st.Geometry.CellSize
	head := st.Snake.Head().Step(st.Direction, cell)
	res := StepResult{Head: head}

	if !st.Geometry.Contains(head.X, head.Y) {
		return die(st, res, CauseWall)
	}

	// The tail is still part of the body here: moving onto the cell it is about to vacate is fatal
	if st.Snake.Occupies(head) {
		return die(st, res, CauseSelf)
	}

	eaten := st.HasBall && feeds(head, cell, st.Ball)

	st.Snake.Push(head)

	if !eaten {
		st.Snake.DropTail()
		res.Outcome = OutcomeMoved
		return res
	}

	st.Score++
	st.Ball, res.Fallback = spawner.Spawn(st.Geometry, &st.Snake)
	st.HasBall = true

	next := rampSpeed(st.Speed, settings)
	res.SpeedChanged = next != st.Speed
	st.Speed = next
	res.Outcome = OutcomeGrew
	return res
}

func die(st *State, res StepResult, cause Cause) StepResult {
	st.Phase = PhaseGameOver
	st.FinalScore = st.Score
	st.Cause = cause
	res.Outcome = OutcomeDied
	res.Cause = cause
	return res
}

// feeds reports circular overlap between the head square and the ball square
func feeds(head entity.Cell, cellSize int, ball entity.Ball) bool {
	hx, hy := head.Center(float64(cellSize))
	bx, by := ball.Center(float64(ball.Size))
	dist := math.Hypot(bx-hx, by-hy)
	return dist < float64(cellSize)/2+float64(ball.Size)/2
}

// rampSpeed shortens the interval by one step, floored at the minimum
func rampSpeed(current time.Duration, s Settings) time.Duration {
	if current <= s.MinSpeed {
		return current
	}
	next := current - s.SpeedStep
	if next < s.MinSpeed {
		next = s.MinSpeed
	}
	return next
}
