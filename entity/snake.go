package entity

// Snake is an ordered chain of cells, head at index 0
type Snake struct {
	Body []Cell
}

// NewSnake lays out length cells in a straight line from head, trailing away from heading
func NewSnake(head Cell, length, cellSize int, heading Direction) Snake {
	if length < 1 {
		length = 1
	}
	back := heading.Opposite()
	body := make([]Cell, 0, length)
	c := head
	for i := 0; i < length; i++ {
		body = append(body, c)
		c = c.Step(back, cellSize)
	}
	return Snake{Body: body}
}

func (s *Snake) Len() int {
	return len(s.Body)
}

func (s *Snake) Head() Cell {
	return s.Body[0]
}

func (s *Snake) Tail() Cell {
	return s.Body[len(s.Body)-1]
}

// Push prepends a new head
func (s *Snake) Push(head Cell) {
	s.Body = append(s.Body, Cell{})
	copy(s.Body[1:], s.Body)
	s.Body[0] = head
}

// DropTail removes and returns the last cell
func (s *Snake) DropTail() Cell {
	tail := s.Body[len(s.Body)-1]
	s.Body = s.Body[:len(s.Body)-1]
	return tail
}

// Occupies reports exact overlap with any cell, tail included
func (s *Snake) Occupies(c Cell) bool {
	for _, part := range s.Body {
		if part == c {
			return true
		}
	}
	return false
}

// Near reports whether c lies within dist of any cell on both axes
func (s *Snake) Near(c Cell, dist int) bool {
	for _, part := range s.Body {
		if abs(part.X-c.X) < dist && abs(part.Y-c.Y) < dist {
			return true
		}
	}
	return false
}

// Clone returns a deep copy safe to hand to readers
func (s *Snake) Clone() Snake {
	body := make([]Cell, len(s.Body))
	copy(body, s.Body)
	return Snake{Body: body}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
