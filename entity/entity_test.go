package entity

import "testing"

func TestDirection(t *testing.T) {
	tests := []struct {
		dir      Direction
		name     string
		dx, dy   int
		opposite Direction
	}{
		{DirUp, "up", 0, -1, DirDown},
		{DirRight, "right", 1, 0, DirLeft},
		{DirDown, "down", 0, 1, DirUp},
		{DirLeft, "left", -1, 0, DirRight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.dir.String() != tt.name {
				t.Errorf("String() = %q, want %q", tt.dir.String(), tt.name)
			}
			dx, dy := tt.dir.Delta()
			if dx != tt.dx || dy != tt.dy {
				t.Errorf("Delta() = (%d,%d), want (%d,%d)", dx, dy, tt.dx, tt.dy)
			}
			if tt.dir.Opposite() != tt.opposite {
				t.Errorf("Opposite() = %v, want %v", tt.dir.Opposite(), tt.opposite)
			}
			parsed, err := ParseDirection(" " + tt.name + " ")
			if err != nil || parsed != tt.dir {
				t.Errorf("ParseDirection(%q) = %v, %v", tt.name, parsed, err)
			}
		})
	}

	if Direction(9).Valid() {
		t.Error("Direction(9) should be invalid")
	}
	if _, err := ParseDirection("sideways"); err == nil {
		t.Error("Expected error for unknown direction")
	}
}

func TestNewSnake(t *testing.T) {
	s := NewSnake(Cell{X: 100, Y: 100}, 3, 20, DirRight)
	want := []Cell{{100, 100}, {80, 100}, {60, 100}}

	if s.Len() != len(want) {
		t.Fatalf("Len() = %d, want %d", s.Len(), len(want))
	}
	for i, c := range want {
		if s.Body[i] != c {
			t.Errorf("Body[%d] = %v, want %v", i, s.Body[i], c)
		}
	}
	if s.Head() != want[0] || s.Tail() != want[2] {
		t.Errorf("Head/Tail = %v/%v", s.Head(), s.Tail())
	}
}

func TestSnakePushDropTail(t *testing.T) {
	s := NewSnake(Cell{X: 100, Y: 100}, 3, 20, DirRight)

	s.Push(Cell{X: 120, Y: 100})
	if s.Len() != 4 || s.Head() != (Cell{X: 120, Y: 100}) {
		t.Fatalf("Push failed: %v", s.Body)
	}
	if s.Body[1] != (Cell{X: 100, Y: 100}) {
		t.Errorf("Old head not shifted: %v", s.Body)
	}

	tail := s.DropTail()
	if tail != (Cell{X: 60, Y: 100}) || s.Len() != 3 {
		t.Errorf("DropTail = %v, body %v", tail, s.Body)
	}
}

func TestSnakeOccupancy(t *testing.T) {
	s := NewSnake(Cell{X: 100, Y: 100}, 3, 20, DirRight)

	if !s.Occupies(Cell{X: 60, Y: 100}) {
		t.Error("Tail should be occupied")
	}
	if s.Occupies(Cell{X: 120, Y: 100}) {
		t.Error("Cell ahead should be free")
	}

	if !s.Near(Cell{X: 110, Y: 115}, 20) {
		t.Error("Expected near hit within one cell on both axes")
	}
	if s.Near(Cell{X: 120, Y: 100}, 20) {
		t.Error("Exactly one cell away is not near")
	}
}

func TestSnakeCloneIsIndependent(t *testing.T) {
	s := NewSnake(Cell{X: 40, Y: 40}, 3, 20, DirDown)
	c := s.Clone()
	c.Body[0] = Cell{X: -1, Y: -1}
	if s.Body[0] == c.Body[0] {
		t.Error("Clone shares backing array")
	}
	if s.Body[1] != (Cell{X: 40, Y: 20}) {
		t.Errorf("Heading down should trail upward, got %v", s.Body)
	}
}

func TestCellStepAndCenter(t *testing.T) {
	c := Cell{X: 0, Y: 100}
	if got := c.Step(DirLeft, 20); got != (Cell{X: -20, Y: 100}) {
		t.Errorf("Step left = %v", got)
	}
	x, y := c.Center(20)
	if x != 10 || y != 110 {
		t.Errorf("Center = (%v,%v)", x, y)
	}
	if c.String() != "(0,100)" {
		t.Errorf("String = %q", c.String())
	}
}
