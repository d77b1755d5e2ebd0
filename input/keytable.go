package input

import (
	"maps"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-snake/entity"
)

// KeyTable maps keys to intents
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, Enter)
	SpecialKeys map[tcell.Key]Intent

	// Printable rune bindings
	Runes map[rune]Intent
}

func dir(d entity.Direction) Intent {
	return Intent{Type: IntentDirection, Direction: d}
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]Intent{
			tcell.KeyCtrlC: {Type: IntentQuit},
			tcell.KeyCtrlQ: {Type: IntentQuit},
			tcell.KeyEnter: {Type: IntentStartStop},
			tcell.KeyUp:    dir(entity.DirUp),
			tcell.KeyDown:  dir(entity.DirDown),
			tcell.KeyLeft:  dir(entity.DirLeft),
			tcell.KeyRight: dir(entity.DirRight),
		},

		Runes: map[rune]Intent{
			' ': {Type: IntentPauseToggle},
			'p': {Type: IntentPauseToggle},
			'q': {Type: IntentQuit},

			// vi motions
			'h': dir(entity.DirLeft),
			'j': dir(entity.DirDown),
			'k': dir(entity.DirUp),
			'l': dir(entity.DirRight),

			'w': dir(entity.DirUp),
			'a': dir(entity.DirLeft),
			's': dir(entity.DirDown),
			'd': dir(entity.DirRight),
		},
	}
}

// Clone returns a deep copy of the key table
func (kt *KeyTable) Clone() *KeyTable {
	return &KeyTable{
		SpecialKeys: maps.Clone(kt.SpecialKeys),
		Runes:       maps.Clone(kt.Runes),
	}
}

// Lookup resolves a key event
func (kt *KeyTable) Lookup(ev *tcell.EventKey) (Intent, bool) {
	return kt.LookupKey(ev.Key(), ev.Rune())
}

// LookupKey resolves a key code, using the rune map for tcell.KeyRune
func (kt *KeyTable) LookupKey(k tcell.Key, r rune) (Intent, bool) {
	if k == tcell.KeyRune {
		in, ok := kt.Runes[r]
		return in, ok
	}
	in, ok := kt.SpecialKeys[k]
	return in, ok
}
