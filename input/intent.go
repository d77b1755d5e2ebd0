// Package input translates tcell events into session commands
package input

import "github.com/lixenwraith/vi-snake/entity"

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	IntentQuit        // Ctrl+C, q
	IntentDirection   // arrows, hjkl, wasd, mouse swipe
	IntentStartStop   // Enter: start from Idle/GameOver, stop while Running/Paused
	IntentPauseToggle // Space
	IntentResize      // Terminal resize event
	IntentBackground  // Terminal lost focus
	IntentForeground  // Terminal regained focus
)

func (t IntentType) String() string {
	switch t {
	case IntentQuit:
		return "quit"
	case IntentDirection:
		return "direction"
	case IntentStartStop:
		return "start"
	case IntentPauseToggle:
		return "pause"
	case IntentResize:
		return "resize"
	case IntentBackground:
		return "background"
	case IntentForeground:
		return "foreground"
	default:
		return "none"
	}
}

// Intent is a parsed input action
type Intent struct {
	Type      IntentType
	Direction entity.Direction // IntentDirection only
}
