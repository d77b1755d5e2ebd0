package engine

import (
	"time"

	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/entity"
	"github.com/lixenwraith/vi-snake/geometry"
)

// Phase is the session lifecycle state
type Phase uint8

const (
	PhaseIdle Phase = iota
	PhaseRunning
	PhasePaused
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "Idle"
	case PhaseRunning:
		return "Running"
	case PhasePaused:
		return "Paused"
	case PhaseGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// validTransitions is the complete lifecycle graph
// GameOver -> Running is a restart: Start resets the aggregate before entering Running
var validTransitions = map[Phase][]Phase{
	PhaseIdle:     {PhaseRunning},
	PhaseRunning:  {PhasePaused, PhaseGameOver, PhaseIdle},
	PhasePaused:   {PhaseRunning, PhaseIdle},
	PhaseGameOver: {PhaseRunning},
}

// CanTransition checks if a phase transition is valid
func CanTransition(from, to Phase) bool {
	for _, p := range validTransitions[from] {
		if p == to {
			return true
		}
	}
	return false
}

// Cause records why a session ended
type Cause uint8

const (
	CauseNone Cause = iota
	CauseWall
	CauseSelf
)

func (c Cause) String() string {
	switch c {
	case CauseWall:
		return "wall"
	case CauseSelf:
		return "self"
	default:
		return "none"
	}
}

// Settings are the tunables of a session, read-only after construction
type Settings struct {
	GridDivisor   int
	InitialSpeed  time.Duration
	MinSpeed      time.Duration
	SpeedStep     time.Duration
	InitialLength int
	SettleDelay   time.Duration
}

// DefaultSettings returns the stock game tuning
func DefaultSettings() Settings {
	return Settings{
		GridDivisor:   constants.GridDivisor,
		InitialSpeed:  constants.InitialSpeed,
		MinSpeed:      constants.MinSpeed,
		SpeedStep:     constants.SpeedStep,
		InitialLength: constants.InitialSnakeLength,
		SettleDelay:   constants.ResizeSettleDelay,
	}
}

// State is the session aggregate mutated by Step and Session
type State struct {
	Phase    Phase
	Geometry geometry.Geometry

	Snake   entity.Snake
	Ball    entity.Ball
	HasBall bool

	// Direction is committed at the start of each tick from Pending
	Direction entity.Direction
	Pending   entity.Direction

	Score      int
	FinalScore int
	Speed      time.Duration
	Cause      Cause
	Ticks      uint64
}

// RequestDirection applies the reversal filter against the committed direction
// Returns false when d is invalid or reverses the current heading
func (st *State) RequestDirection(d entity.Direction) bool {
	if !d.Valid() || d == st.Direction.Opposite() {
		return false
	}
	st.Pending = d
	return true
}
