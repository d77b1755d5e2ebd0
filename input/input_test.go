package input

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/entity"
	"github.com/lixenwraith/vi-snake/spawn"
)

func TestDefaultKeyTable(t *testing.T) {
	kt := DefaultKeyTable()

	tests := []struct {
		name string
		key  tcell.Key
		r    rune
		want Intent
	}{
		{"arrow up", tcell.KeyUp, 0, Intent{Type: IntentDirection, Direction: entity.DirUp}},
		{"arrow left", tcell.KeyLeft, 0, Intent{Type: IntentDirection, Direction: entity.DirLeft}},
		{"vi j", tcell.KeyRune, 'j', Intent{Type: IntentDirection, Direction: entity.DirDown}},
		{"vi l", tcell.KeyRune, 'l', Intent{Type: IntentDirection, Direction: entity.DirRight}},
		{"wasd a", tcell.KeyRune, 'a', Intent{Type: IntentDirection, Direction: entity.DirLeft}},
		{"space", tcell.KeyRune, ' ', Intent{Type: IntentPauseToggle}},
		{"enter", tcell.KeyEnter, 0, Intent{Type: IntentStartStop}},
		{"ctrl-c", tcell.KeyCtrlC, 0, Intent{Type: IntentQuit}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := kt.LookupKey(tt.key, tt.r)
			if !ok || got != tt.want {
				t.Errorf("LookupKey = %+v (%v), want %+v", got, ok, tt.want)
			}
		})
	}

	if _, ok := kt.LookupKey(tcell.KeyRune, 'z'); ok {
		t.Error("Unbound rune resolved")
	}
}

func TestLoadKeyConfig(t *testing.T) {
	data := []byte(`
runes:
  i: move_up
  space: start
  h: none
keys:
  Esc: pause
`)
	override, err := LoadKeyConfig(data)
	if err != nil {
		t.Fatalf("LoadKeyConfig error: %v", err)
	}
	kt := MergeKeyTable(DefaultKeyTable(), override)

	if in, _ := kt.LookupKey(tcell.KeyRune, 'i'); in.Direction != entity.DirUp || in.Type != IntentDirection {
		t.Errorf("'i' = %+v, want move_up", in)
	}
	if in, _ := kt.LookupKey(tcell.KeyRune, ' '); in.Type != IntentStartStop {
		t.Errorf("space = %+v, want start", in)
	}
	if _, ok := kt.LookupKey(tcell.KeyRune, 'h'); ok {
		t.Error("'h' should be unbound by none")
	}
	if in, _ := kt.LookupKey(tcell.KeyEscape, 0); in.Type != IntentPauseToggle {
		t.Errorf("Esc = %+v, want pause", in)
	}
	// Untouched defaults survive the merge
	if in, _ := kt.LookupKey(tcell.KeyUp, 0); in.Direction != entity.DirUp {
		t.Error("Arrow binding lost in merge")
	}
	// Base is not mutated
	if _, ok := DefaultKeyTable().LookupKey(tcell.KeyRune, 'i'); ok {
		t.Error("Merge mutated the defaults")
	}
}

func TestLoadKeyConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantSub string
	}{
		{"bad yaml", "runes: [", "keymap parse"},
		{"unknown action", "runes:\n  x: fly\n", "unknown action"},
		{"long rune", "runes:\n  xy: quit\n", "invalid rune key"},
		{"unknown key", "keys:\n  Hyper-Z: quit\n", "unknown key name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadKeyConfig([]byte(tt.data))
			if err == nil || !strings.Contains(err.Error(), tt.wantSub) {
				t.Errorf("Error = %v, want %q", err, tt.wantSub)
			}
		})
	}
}

func TestLoadKeyFile(t *testing.T) {
	kt, err := LoadKeyFile("")
	if err != nil || kt == nil {
		t.Fatalf("Empty path: %v", err)
	}

	path := filepath.Join(t.TempDir(), "keys.yaml")
	if err := os.WriteFile(path, []byte("runes:\n  x: quit\n"), 0644); err != nil {
		t.Fatal(err)
	}
	kt, err = LoadKeyFile(path)
	if err != nil {
		t.Fatalf("LoadKeyFile error: %v", err)
	}
	if in, _ := kt.LookupKey(tcell.KeyRune, 'x'); in.Type != IntentQuit {
		t.Errorf("'x' = %+v, want quit", in)
	}

	if _, err := LoadKeyFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Missing keymap should fail")
	}
}

func TestSwipeTracker(t *testing.T) {
	// 10px columns, 20px rows, 30px threshold
	tests := []struct {
		name   string
		moveX  int
		moveY  int
		want   entity.Direction
		report bool
	}{
		{"right past threshold", 14, 10, entity.DirRight, true},
		{"left past threshold", 6, 10, entity.DirLeft, true},
		{"exactly threshold", 13, 10, 0, false},
		{"down two rows", 10, 12, entity.DirDown, true},
		{"up two rows", 10, 8, entity.DirUp, true},
		{"one row is below threshold", 10, 11, 0, false},
		{"tie goes vertical", 14, 12, entity.DirDown, true},
		{"horizontal dominant", 15, 12, entity.DirRight, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSwipeTracker(30, 10, 20)
			s.Press(10, 10)
			d, ok := s.Move(tt.moveX, tt.moveY)
			if ok != tt.report || (ok && d != tt.want) {
				t.Errorf("Move = %v,%v want %v,%v", d, ok, tt.want, tt.report)
			}
		})
	}
}

func TestSwipeTrackerReanchors(t *testing.T) {
	s := NewSwipeTracker(30, 10, 20)
	s.Press(0, 0)

	if d, ok := s.Move(4, 0); !ok || d != entity.DirRight {
		t.Fatalf("First swipe = %v,%v", d, ok)
	}
	// 20px from the new anchor does not trigger
	if _, ok := s.Move(6, 0); ok {
		t.Error("Swipe measured from the original anchor")
	}
	if d, ok := s.Move(6, 2); !ok || d != entity.DirDown {
		t.Errorf("Continued swipe = %v,%v, want down", d, ok)
	}

	s.Release()
	if _, ok := s.Move(50, 50); ok {
		t.Error("Move after release reported a swipe")
	}
}

func TestMachineMouseSwipe(t *testing.T) {
	m := NewMachine(nil, NewSwipeTracker(30, 10, 20))

	if in := m.Process(tcell.NewEventMouse(5, 5, tcell.Button1, tcell.ModNone)); in != nil {
		t.Errorf("Press produced %+v", in)
	}
	if in := m.Process(tcell.NewEventMouse(6, 5, tcell.Button1, tcell.ModNone)); in != nil {
		t.Errorf("Small drag produced %+v", in)
	}
	in := m.Process(tcell.NewEventMouse(5, 3, tcell.Button1, tcell.ModNone))
	if in == nil || in.Type != IntentDirection || in.Direction != entity.DirUp {
		t.Fatalf("Drag up produced %+v", in)
	}
	m.Process(tcell.NewEventMouse(5, 3, tcell.ButtonNone, tcell.ModNone))
	if in := m.Process(tcell.NewEventMouse(40, 3, tcell.Button1, tcell.ModNone)); in != nil {
		t.Errorf("New press after release produced %+v", in)
	}
}

func TestMachineSystemEvents(t *testing.T) {
	m := NewMachine(nil, nil)

	if in := m.Process(tcell.NewEventResize(80, 24)); in == nil || in.Type != IntentResize {
		t.Errorf("Resize produced %+v", in)
	}
	if in := m.Process(tcell.NewEventFocus(false)); in == nil || in.Type != IntentBackground {
		t.Errorf("Focus lost produced %+v", in)
	}
	if in := m.Process(tcell.NewEventFocus(true)); in == nil || in.Type != IntentForeground {
		t.Errorf("Focus gained produced %+v", in)
	}
}

func newSession() (*engine.Session, *engine.ManualClock) {
	clock := engine.NewManualClock()
	s := engine.NewSession(clock, spawn.NewSeeded(1), engine.WithViewport(500, 500))
	return s, clock
}

func TestApplyStartStopToggle(t *testing.T) {
	s, clock := newSession()
	start := Intent{Type: IntentStartStop}

	if !Apply(s, start) || s.Phase() != engine.PhaseRunning {
		t.Fatalf("Start from Idle: phase %v", s.Phase())
	}
	if !Apply(s, start) || s.Phase() != engine.PhaseIdle {
		t.Fatalf("Stop while Running: phase %v", s.Phase())
	}

	Apply(s, start)
	Apply(s, Intent{Type: IntentPauseToggle})
	if !Apply(s, start) || s.Phase() != engine.PhaseIdle {
		t.Fatalf("Stop while Paused: phase %v", s.Phase())
	}

	// Run into the right wall, then restart
	Apply(s, start)
	clock.Advance(time.Minute)
	if s.Phase() != engine.PhaseGameOver {
		t.Fatalf("Expected GameOver, got %v", s.Phase())
	}
	if !Apply(s, start) || s.Phase() != engine.PhaseRunning {
		t.Errorf("Restart from GameOver: phase %v", s.Phase())
	}
}

func TestApplyPauseToggle(t *testing.T) {
	s, _ := newSession()
	pause := Intent{Type: IntentPauseToggle}

	if Apply(s, pause) {
		t.Error("Pause toggle accepted while Idle")
	}
	s.Start()
	if !Apply(s, pause) || s.Phase() != engine.PhasePaused {
		t.Errorf("Pause: phase %v", s.Phase())
	}
	if !Apply(s, pause) || s.Phase() != engine.PhaseRunning {
		t.Errorf("Resume: phase %v", s.Phase())
	}
}

func TestApplyDirectionAndFocus(t *testing.T) {
	s, _ := newSession()
	s.Start()

	if Apply(s, Intent{Type: IntentDirection, Direction: entity.DirLeft}) {
		t.Error("Reverse direction accepted")
	}
	if !Apply(s, Intent{Type: IntentDirection, Direction: entity.DirUp}) {
		t.Error("Up rejected")
	}

	if !Apply(s, Intent{Type: IntentBackground}) || s.Phase() != engine.PhasePaused {
		t.Errorf("Background: phase %v", s.Phase())
	}
	if !Apply(s, Intent{Type: IntentForeground}) || s.Phase() != engine.PhasePaused {
		t.Errorf("Foreground must not resume: phase %v", s.Phase())
	}
	if Apply(s, Intent{Type: IntentQuit}) {
		t.Error("Quit is not a session command")
	}
}
