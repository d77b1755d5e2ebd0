package input

import (
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-snake/entity"
)

// actionRegistry maps canonical action names to intents
// Used by the keymap loader to resolve YAML action strings to bindings
var actionRegistry = map[string]Intent{
	// Unbind sentinel
	"none": {},

	"quit":  {Type: IntentQuit},
	"start": {Type: IntentStartStop},
	"pause": {Type: IntentPauseToggle},

	"move_up":    dir(entity.DirUp),
	"move_down":  dir(entity.DirDown),
	"move_left":  dir(entity.DirLeft),
	"move_right": dir(entity.DirRight),
}

// ActionEntry looks up an action by name
func ActionEntry(name string) (Intent, bool) {
	in, ok := actionRegistry[name]
	return in, ok
}

// keyNames is the reverse of tcell.KeyNames, lowercased
var keyNames = func() map[string]tcell.Key {
	m := make(map[string]tcell.Key, len(tcell.KeyNames))
	for k, name := range tcell.KeyNames {
		m[strings.ToLower(name)] = k
	}
	return m
}()

// KeyByName resolves a tcell key name such as "Up", "Enter" or "Ctrl-C"
func KeyByName(name string) (tcell.Key, bool) {
	k, ok := keyNames[strings.ToLower(name)]
	return k, ok
}
