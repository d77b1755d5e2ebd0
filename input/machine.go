package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/entity"
)

// Machine parses tcell events into intents
type Machine struct {
	keyTable *KeyTable
	swipe    *SwipeTracker
}

// NewMachine creates a machine; nil arguments use the defaults
func NewMachine(kt *KeyTable, swipe *SwipeTracker) *Machine {
	if kt == nil {
		kt = DefaultKeyTable()
	}
	if swipe == nil {
		swipe = NewSwipeTracker(0, 0, 0)
	}
	return &Machine{keyTable: kt, swipe: swipe}
}

// Process parses a terminal event and returns an Intent
// Returns nil if the event carries no action
func (m *Machine) Process(ev tcell.Event) *Intent {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if in, ok := m.keyTable.Lookup(ev); ok {
			return &in
		}
	case *tcell.EventMouse:
		return m.processMouse(ev)
	case *tcell.EventResize:
		return &Intent{Type: IntentResize}
	case *tcell.EventFocus:
		if ev.Focused {
			return &Intent{Type: IntentForeground}
		}
		return &Intent{Type: IntentBackground}
	}
	return nil
}

func (m *Machine) processMouse(ev *tcell.EventMouse) *Intent {
	x, y := ev.Position()

	if ev.Buttons()&tcell.Button1 == 0 {
		m.swipe.Release()
		return nil
	}
	if !m.swipe.Active() {
		m.swipe.Press(x, y)
		return nil
	}
	if d, ok := m.swipe.Move(x, y); ok {
		return &Intent{Type: IntentDirection, Direction: d}
	}
	return nil
}

// Commander is the subset of *engine.Session driven by input
type Commander interface {
	Phase() engine.Phase
	Start() bool
	Stop() bool
	Pause() bool
	Resume() bool
	RequestDirection(d entity.Direction) bool
	SetBackground(hidden bool) bool
}

// Apply routes an intent to the session
// Returns true when the session accepted the command
func Apply(s Commander, in Intent) bool {
	switch in.Type {
	case IntentDirection:
		return s.RequestDirection(in.Direction)

	case IntentStartStop:
		switch s.Phase() {
		case engine.PhaseRunning, engine.PhasePaused:
			return s.Stop()
		default:
			return s.Start()
		}

	case IntentPauseToggle:
		if s.Phase() == engine.PhasePaused {
			return s.Resume()
		}
		return s.Pause()

	case IntentBackground:
		return s.SetBackground(true)

	case IntentForeground:
		return s.SetBackground(false)
	}
	return false
}
